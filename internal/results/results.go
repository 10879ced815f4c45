// Package results defines the success/failure pair returned by every
// application-service operation. A failure payload describes a permanent,
// business-level outcome that downstream handlers turn into a failure
// message; a returned error is transient and triggers redelivery.
package results

// OperationResult carries at most one of a success or failure payload.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
	Error   error
}

func (r OperationResult[S, F]) IsSuccess() bool {
	return r.Success != nil
}

func (r OperationResult[S, F]) IsFailure() bool {
	return r.Failure != nil
}

// SuccessResult wraps a success payload.
func SuccessResult[S any, F any](payload S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &payload}
}

// FailureResult wraps a failure payload.
func FailureResult[S any, F any](payload F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &payload}
}
