// pkg/ef_err/types.go

package ef_err

import "errors"

// ErrNotARepository is returned when an operation requires a git working tree
// and the current directory is not inside one.
var ErrNotARepository = errors.New("not a git repository")

// ErrInvalidSelection is returned when menu input is outside the accepted set.
var ErrInvalidSelection = errors.New("invalid selection")

// UserError marks an error as expected and recoverable by the user.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}
