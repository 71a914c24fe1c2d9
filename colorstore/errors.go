package colorstore

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no record exists at the requested
// key. Callers should test with errors.Is; storage failures never satisfy
// it.
var ErrNotFound = errors.New("colorstore: color not found")

// MalformedRecordError indicates that a bulk-import entry could not be
// converted into a Record, typically because a key component is not an
// integer or the key has the wrong arity. It aborts the whole batch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type MalformedRecordError struct {
	Key   string
	cause error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("colorstore: malformed record key %q", e.Key)
}

func (e *MalformedRecordError) Unwrap() error { return e.cause }
