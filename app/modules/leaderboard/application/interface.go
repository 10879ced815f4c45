package leaderboardservice

import (
	"context"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
	"github.com/fairway-links-club/greens-engine/internal/results"
)

// Service is the leaderboard module's application interface.
type Service interface {
	SubmitScore(ctx context.Context, cmd SubmitScoreCommand) (results.OperationResult[SubmitScoreResult, SubmitScoreFailure], error)
	GetLeaderboard(ctx context.Context, regionKey sharedtypes.RegionKey, courseID sharedtypes.CourseID) (*LeaderboardView, error)
	ListRegionLeaderboards(ctx context.Context, regionKey sharedtypes.RegionKey) ([]LeaderboardView, error)
}

var _ Service = (*LeaderboardService)(nil)
