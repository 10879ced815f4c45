package achievementservice

import (
	"context"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
	"github.com/fairway-links-club/greens-engine/internal/results"
)

// Service is the achievement surface consumed by the message handlers, the
// periodic audit job, and the read API.
type Service interface {
	ReevaluateTier(ctx context.Context, cmd ReevaluateTierCommand) (results.OperationResult[ReevaluateTierResult, ReevaluateTierFailure], error)
	AwardHoleInOne(ctx context.Context, cmd AwardHoleInOneCommand) (results.OperationResult[AwardHoleInOneResult, AwardHoleInOneFailure], error)
	AuditTiers(ctx context.Context) (results.OperationResult[AuditTiersResult, AuditTiersFailure], error)
	GetAchievements(ctx context.Context, userID sharedtypes.UserID) (*AchievementView, error)
}

var _ Service = (*AchievementService)(nil)
