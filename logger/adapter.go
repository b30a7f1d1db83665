package logger

import (
	"time"

	"github.com/xyproto/env/v2"
)

// DebugEnv enables default logger
const DebugEnv = "CSBIND_DEBUG"

type Adapter struct {
	declarationLowered DeclarationLowered
	declarationSkipped DeclarationSkipped
	typeRegistered     TypeRegistered
	passTime           PassTime
	log                Log
}

func (l *Adapter) DeclarationLowered(kind, name string) {
	if l == nil || l.declarationLowered == nil {
		return
	}

	l.declarationLowered(kind, name)
}

func (l *Adapter) DeclarationSkipped(kind, name, reason string) {
	if l == nil || l.declarationSkipped == nil {
		return
	}

	l.declarationSkipped(kind, name, reason)
}

func (l *Adapter) TypeRegistered(native, qualified string) {
	if l == nil || l.typeRegistered == nil {
		return
	}

	l.typeRegistered(native, qualified)
}

func (l *Adapter) PassTime(source string, start, end *time.Time, err error) {
	if l == nil || l.passTime == nil {
		return
	}

	l.passTime(source, start, end, err)
}

func (l *Adapter) Log(message string, args ...interface{}) {
	if l == nil || l.log == nil {
		return
	}

	l.log(message, args...)
}

func NewLogger(logger Logger) *Adapter {
	if logger == nil {
		return &Adapter{}
	}

	return &Adapter{
		declarationLowered: logger.DeclarationLowered(),
		declarationSkipped: logger.DeclarationSkipped(),
		typeRegistered:     logger.TypeRegistered(),
		passTime:           logger.PassTime(),
		log:                logger.Log(),
	}
}

func Default() *Adapter {
	if !env.Bool(DebugEnv) {
		return NewLogger(nil)
	}
	return NewLogger(&defaultLogger{})
}
