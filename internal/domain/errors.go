package domain

import "errors"

// ErrorKind classifies every failure that crosses the use case boundary.
// The delivery layer maps each kind to exactly one HTTP status.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1 // missing or invalid field
	KindDuplicate                       // name already taken
	KindReference                       // referenced category missing
	KindNotFound                        // target entity missing
	KindEmpty                           // no rows for the requested page
	KindInternal                        // unexpected store failure
)

type Error struct {
	Kind    ErrorKind
	Details string
}

func (e *Error) Error() string { return e.Details }

func NewError(kind ErrorKind, details string) *Error {
	return &Error{Kind: kind, Details: details}
}

// KindOf extracts the kind from an error chain. Anything that is not a
// *Error counts as internal.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a repository miss, as opposed to a
// store failure.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
