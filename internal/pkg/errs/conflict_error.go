package errs

import "errors"

// ConflictErrorType categorizes failures of the conflict-detection engine for
// callers deciding whether a retry can help.
type ConflictErrorType string

const (
	// ConflictErrorResource means the persistence collaborator could not be
	// reached or a lookup failed. Recoverable by caller retry.
	ConflictErrorResource ConflictErrorType = "resource"
	// ConflictErrorValidation means the input to the engine itself was
	// malformed. Not recoverable without the caller fixing the input.
	ConflictErrorValidation ConflictErrorType = "validation"
	// ConflictErrorNetwork is a transport failure surfaced from the video
	// provider collaborator, propagated unchanged.
	ConflictErrorNetwork ConflictErrorType = "network"
)

// ConflictDetectionError wraps a failure with its taxonomy type and whether a
// caller retry may succeed.
type ConflictDetectionError struct {
	Type        ConflictErrorType
	Recoverable bool
	err         error
}

func NewConflictDetectionError(t ConflictErrorType, recoverable bool, err error) error {
	if err == nil {
		return nil
	}
	return &ConflictDetectionError{Type: t, Recoverable: recoverable, err: err}
}

func (e *ConflictDetectionError) Error() string {
	return "conflict detection (" + string(e.Type) + "): " + e.err.Error()
}

func (e *ConflictDetectionError) Unwrap() error {
	return e.err
}

// AsConflictDetectionError extracts the typed error from a chain, if present.
func AsConflictDetectionError(err error) (*ConflictDetectionError, bool) {
	var cde *ConflictDetectionError
	if errors.As(err, &cde) {
		return cde, true
	}
	return nil, false
}
