package handicapservice

import (
	"context"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
	"github.com/fairway-links-club/greens-engine/internal/results"
)

// Service is the handicap surface consumed by the message handlers and the
// read API.
type Service interface {
	SubmitDifferential(ctx context.Context, cmd SubmitDifferentialCommand) (results.OperationResult[SubmitDifferentialResult, SubmitDifferentialFailure], error)
	GetWindow(ctx context.Context, userID sharedtypes.UserID) (*WindowView, error)
}

var _ Service = (*HandicapService)(nil)
