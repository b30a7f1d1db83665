package logger

import (
	"fmt"
	"time"
)

type defaultLogger struct {
}

func (d *defaultLogger) DeclarationLowered() DeclarationLowered {
	return func(kind, name string) {
		fmt.Printf("[LOGGER] lowered %v: %v \n", kind, name)
	}
}

func (d *defaultLogger) DeclarationSkipped() DeclarationSkipped {
	return func(kind, name, reason string) {
		fmt.Printf("[LOGGER] skipped %v: %v, reason: %v \n", kind, name, reason)
	}
}

func (d *defaultLogger) TypeRegistered() TypeRegistered {
	return func(native, qualified string) {
		fmt.Printf("[LOGGER] registered type %v as %v \n", native, qualified)
	}
}

func (d *defaultLogger) PassTime() PassTime {
	return d.logPassTime
}

func (d *defaultLogger) Log() Log {
	return func(message string, args ...interface{}) {
		fmt.Printf("[LOGGER] "+message+"\n", args...)
	}
}

func (d *defaultLogger) logPassTime(source string, start *time.Time, end *time.Time, err error) {
	fmt.Printf("[LOGGER] lowering %v took %v, err: %v \n", source, end.Sub(*start), err)
}
