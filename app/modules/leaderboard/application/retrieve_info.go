package leaderboardservice

import (
	"context"
	"fmt"

	leaderboarddb "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// GetLeaderboard returns the current leaderboard for a (region, course) key.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, regionKey sharedtypes.RegionKey, courseID sharedtypes.CourseID) (*LeaderboardView, error) {
	board, err := s.repo.GetByKey(ctx, s.db, regionKey, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	view := viewFrom(board)
	return &view, nil
}

// ListRegionLeaderboards returns every course leaderboard in a region.
func (s *LeaderboardService) ListRegionLeaderboards(ctx context.Context, regionKey sharedtypes.RegionKey) ([]LeaderboardView, error) {
	boards, err := s.repo.ListByRegion(ctx, s.db, regionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboards: %w", err)
	}

	views := make([]LeaderboardView, 0, len(boards))
	for i := range boards {
		views = append(views, viewFrom(&boards[i]))
	}
	return views, nil
}

func viewFrom(board *leaderboarddb.CourseLeaderboard) LeaderboardView {
	return LeaderboardView{
		RegionKey:       board.RegionKey,
		CourseID:        board.CourseID,
		CourseName:      board.CourseName,
		TopEntries:      board.TopEntries,
		LowNetScore:     board.LowNetScore,
		TotalScoreCount: board.TotalScoreCount,
		LastUpdated:     board.LastUpdated,
	}
}
