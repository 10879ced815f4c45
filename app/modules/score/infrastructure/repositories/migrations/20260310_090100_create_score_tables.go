package scoremigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	scoredb "github.com/fairway-links-club/greens-engine/app/modules/score/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating score_ingestions table...")

		if _, err := db.NewCreateTable().Model((*scoredb.ScoreIngestion)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		// The periodic tier audit scans recent accepted ingestions.
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_score_ingestions_recent ON score_ingestions (received_at) WHERE status = 'accepted'").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_score_ingestions_user ON score_ingestions (user_id)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Score tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping score_ingestions table...")

		if _, err := db.NewDropTable().Model((*scoredb.ScoreIngestion)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Score tables dropped successfully!")
		return nil
	})
}
