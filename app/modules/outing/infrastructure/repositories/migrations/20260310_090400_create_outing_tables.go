package outingmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	outingdb "github.com/fairway-links-club/greens-engine/app/modules/outing/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating outings and outing_progress tables...")

		if _, err := db.NewCreateTable().Model((*outingdb.Outing)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*outingdb.OutingProgress)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS idx_outing_progress_player ON outing_progress (outing_id, player_id)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Outing tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping outings and outing_progress tables...")

		if _, err := db.NewDropTable().Model((*outingdb.OutingProgress)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*outingdb.Outing)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Outing tables dropped successfully!")
		return nil
	})
}
