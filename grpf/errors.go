package grpf

import "github.com/pkg/errors"

// Threading an error return through every recursive and iterative step of
// the refinement loop would tangle up the code that matters; instead, a
// precondition failure panics with a preconditionError, and the public
// entry points recover it back into a normal error. This is the same
// panic/recover convention the teacher uses for trapezoidization failures.
type preconditionError struct {
	err error
}

func (e preconditionError) Error() string { return e.err.Error() }

func fail(format string, args ...interface{}) {
	panic(preconditionError{errors.Errorf(format, args...)})
}

// recoverPrecondition converts a panicking preconditionError into a regular
// error return. Any other panic value is not ours to handle and is
// re-raised.
func recoverPrecondition(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if pe, ok := r.(preconditionError); ok {
		*errp = pe
		return
	}
	panic(r)
}
