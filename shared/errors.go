package shared

import (
	"errors"
	"fmt"
)

// Position represents a source location (1-based line and column)
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if position was set by a parser
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// UnsupportedError reports a type or declaration shape that cannot cross the ffi boundary
type UnsupportedError struct {
	Construct string
	Message   string
	Pos       Position
}

func (e *UnsupportedError) Error() string {
	return withPosition(e.Pos, e.Message)
}

// UnknownTypeError reports a named type that was not registered when it was referenced
type UnknownTypeError struct {
	Name string
	Pos  Position
}

func (e *UnknownTypeError) Error() string {
	return withPosition(e.Pos, fmt.Sprintf("type with name '%v' was not found", e.Name))
}

//NewUnsupportedError creates unsupported construct error
func NewUnsupportedError(construct string, pos Position, format string, args ...interface{}) *UnsupportedError {
	return &UnsupportedError{Construct: construct, Message: fmt.Sprintf(format, args...), Pos: pos}
}

//NewUnknownTypeError creates unknown type error
func NewUnknownTypeError(name string, pos Position) *UnknownTypeError {
	return &UnknownTypeError{Name: name, Pos: pos}
}

// IsUnsupported returns true if err chain has UnsupportedError
func IsUnsupported(err error) bool {
	var target *UnsupportedError
	return errors.As(err, &target)
}

// IsUnknownType returns true if err chain has UnknownTypeError
func IsUnknownType(err error) bool {
	var target *UnknownTypeError
	return errors.As(err, &target)
}

func withPosition(pos Position, message string) string {
	if !pos.IsValid() {
		return message
	}
	return pos.String() + ": " + message
}
