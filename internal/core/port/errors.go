package port

import "github.com/cockroachdb/errors"

// Sentinel errors shared by the usecase and its adapters. Adapters match them
// with errors.Is; the usecase wraps them with context.
var (
	// ErrSchedulingBlocked means a high severity violation prevented a
	// command. The grid is unchanged.
	ErrSchedulingBlocked = errors.New("scheduling blocked")
	// ErrNotFound means a referenced assignment no longer exists.
	ErrNotFound = errors.New("not found")
	// ErrPartialFailure means a batch command applied only some items.
	ErrPartialFailure = errors.New("partial failure")

	ErrNothingToUndo         = errors.New("nothing to undo")
	ErrNothingToRedo         = errors.New("nothing to redo")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrInvalidSlot           = errors.New("invalid slot")
	ErrOutsidePlanningWindow = errors.New("outside planning window")
	ErrInvalidPolicy         = errors.New("invalid policy")
	ErrUnknownAudience       = errors.New("unknown audience")
	ErrUnknownTemplate       = errors.New("unknown template")
)
