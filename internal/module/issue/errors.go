package issue

import "errors"

var (
	// ErrIssueNotFound is returned when no issue matches the identifier.
	ErrIssueNotFound = errors.New("issue not found")
	// ErrInvalidKind is returned when the issue kind is unknown.
	ErrInvalidKind = errors.New("invalid issue kind")
	// ErrEmptyReason is returned when a resolution carries no reason.
	ErrEmptyReason = errors.New("resolution reason is required")
)
