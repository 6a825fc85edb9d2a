package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Reading submission errors
	ErrUnknownCard          = errors.New("one or more selected cards do not exist")
	ErrReadingNotFound      = errors.New("reading session not found")
	ErrNarrativeUnavailable = errors.New("narrative generation unavailable")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
