package achievementservice

import (
	"context"
	"errors"
	"fmt"

	achievementdomain "github.com/fairway-links-club/greens-engine/app/modules/achievement/domain"
	achievementdb "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// GetAchievements returns a user's badges and current tier for display.
func (s *AchievementService) GetAchievements(ctx context.Context, userID sharedtypes.UserID) (*AchievementView, error) {
	badges, err := s.repo.ListBadges(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievements for %s: %w", userID, err)
	}

	view := &AchievementView{
		UserID: userID,
		Tier:   achievementdomain.TierNone,
		Badges: make([]BadgeView, 0, len(badges)),
	}

	tier, err := s.repo.GetTier(ctx, s.db, userID)
	switch {
	case err == nil:
		view.Tier = tier.Tier
		view.LowmanCourseCount = tier.LowmanCourseCount
	case errors.Is(err, achievementdb.ErrTierNotFound):
		// Never evaluated; tier stays none.
	default:
		return nil, fmt.Errorf("failed to load tier for %s: %w", userID, err)
	}

	for _, b := range badges {
		view.Badges = append(view.Badges, BadgeView{
			BadgeType:  b.BadgeType,
			CourseID:   b.CourseID,
			Score:      b.Score,
			AchievedAt: b.AchievedAt,
		})
	}
	return view, nil
}
