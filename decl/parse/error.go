package parse

import (
	"fmt"

	"github.com/viant/csbind/shared"
)

// Error represents syntax error
type Error struct {
	Pos     shared.Position
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(pos shared.Position, cause error, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Message: fmt.Sprintf(format, args...), Err: cause}
}
