package apperrors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUnknownMethod      = errors.New("unknown payment method")
	ErrNoMethodSelected   = errors.New("no payment method selected")
	ErrInvalidAmount      = errors.New("invalid withdrawal amount")
	ErrSubmissionBlocked  = errors.New("withdrawal requirements not met")
	ErrSubmissionInFlight = errors.New("withdrawal already in progress")
	ErrAccountNotLoaded   = errors.New("account not loaded")
	ErrNetworkFailure     = errors.New("account service unreachable")
)

// RemoteRejection carries the backend's human-readable refusal verbatim.
// The message is shown to the user as-is, nothing else is inferred from it.
type RemoteRejection struct {
	Message string
}

func (e *RemoteRejection) Error() string {
	return e.Message
}
