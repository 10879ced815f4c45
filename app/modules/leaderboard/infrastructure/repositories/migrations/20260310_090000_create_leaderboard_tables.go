package leaderboardmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	leaderboarddb "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating course_leaderboards and leaderboard_submissions tables...")

		if _, err := db.NewCreateTable().Model((*leaderboarddb.CourseLeaderboard)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*leaderboarddb.Submission)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		// One board per (region, course); the create path relies on this
		// unique constraint to detect concurrent first writers.
		if _, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS idx_course_leaderboards_key ON course_leaderboards (region_key, course_id)").Exec(ctx); err != nil {
			return err
		}
		// Tier evaluation counts boards by current rank-1 holder.
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_course_leaderboards_leader ON course_leaderboards (leader_user_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_leaderboard_submissions_user ON leaderboard_submissions (user_id)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Leaderboard tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping course_leaderboards and leaderboard_submissions tables...")

		if _, err := db.NewDropTable().Model((*leaderboarddb.Submission)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*leaderboarddb.CourseLeaderboard)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Leaderboard tables dropped successfully!")
		return nil
	})
}
