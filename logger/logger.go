package logger

import (
	"time"
)

type DeclarationLowered func(kind, name string)
type DeclarationSkipped func(kind, name, reason string)
type TypeRegistered func(native, qualified string)
type PassTime func(source string, start *time.Time, end *time.Time, err error)
type Log func(message string, args ...interface{})

type Logger interface {
	DeclarationLowered() DeclarationLowered
	DeclarationSkipped() DeclarationSkipped
	TypeRegistered() TypeRegistered
	PassTime() PassTime
	Log() Log
}
