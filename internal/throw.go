package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors through every constructor and query would make the
// geometry API unusable for the common case where inputs are already known to
// be valid. Instead, validation failures panic with a GeometryError, and the
// public API recovers to convert to an error.

type GeometryError struct {
	cause error
}

func (e GeometryError) Error() string {
	return e.cause.Error()
}

func (e GeometryError) Unwrap() error {
	return e.cause
}

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError{errors.Errorf(format, args...)})
}

// Panic with a GeometryError describing why a shape failed validation.
func invalid(shape string, err error) {
	panic(GeometryError{errors.Wrapf(err, "invalid %s", shape)})
}

// Convert a recovered GeometryError back into an error. Any other panic is a
// real bug and is re-raised.
func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}

func (e GeometryError) Format(s fmt.State, verb rune) {
	if formatter, ok := e.cause.(fmt.Formatter); ok {
		formatter.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.cause.Error())
}
