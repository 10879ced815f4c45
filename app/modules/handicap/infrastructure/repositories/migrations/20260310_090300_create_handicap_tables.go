package handicapmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	handicapdb "github.com/fairway-links-club/greens-engine/app/modules/handicap/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating handicap_differentials table...")

		if _, err := db.NewCreateTable().Model((*handicapdb.DifferentialRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		// Window reads and trims scan per user in recency order.
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_handicap_differentials_window ON handicap_differentials (user_id, played_at DESC)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Handicap tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping handicap_differentials table...")

		if _, err := db.NewDropTable().Model((*handicapdb.DifferentialRecord)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Handicap tables dropped successfully!")
		return nil
	})
}
