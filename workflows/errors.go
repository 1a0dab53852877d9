package workflows

import "errors"

// Sentinel errors returned by workflow operations. Every one of these has
// already been surfaced to the person using the app by the time it is
// returned; callers use them for flow control, not display.
var (
	// ErrNotAuthenticated means the operation needs an active session.
	ErrNotAuthenticated = errors.New("workflows: no active session")
	// ErrValidation means the input failed client-side validation and no
	// network call was made.
	ErrValidation = errors.New("workflows: validation failed")
	// ErrNoSelection means the operation needs a selected caregiver or an
	// active chat and none exists.
	ErrNoSelection = errors.New("workflows: nothing selected")
	// ErrAlreadyRated guards the one-review-per-booking rule.
	ErrAlreadyRated = errors.New("workflows: booking already reviewed")
	// ErrAlreadyEnrolled guards duplicate training enrollment.
	ErrAlreadyEnrolled = errors.New("workflows: already enrolled")
)
