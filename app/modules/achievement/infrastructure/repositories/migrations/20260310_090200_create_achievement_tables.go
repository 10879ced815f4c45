package achievementmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	achievementdb "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating course_badges and user_tiers tables...")

		if _, err := db.NewCreateTable().Model((*achievementdb.CourseBadge)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*achievementdb.UserTier)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		// Badge idempotency lives in these two partial unique indexes: one
		// lowman badge per (user, course), one hole-in-one badge per score
		// event.
		if _, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS idx_course_badges_lowman ON course_badges (user_id, course_id) WHERE badge_type = 'lowman'").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS idx_course_badges_ace_event ON course_badges (event_id) WHERE badge_type = 'hole_in_one'").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_course_badges_user ON course_badges (user_id)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Achievement tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping course_badges and user_tiers tables...")

		if _, err := db.NewDropTable().Model((*achievementdb.UserTier)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*achievementdb.CourseBadge)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Achievement tables dropped successfully!")
		return nil
	})
}
