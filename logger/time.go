package logger

import (
	"time"
)

// TimeLogger forwards inner logger hooks, reporting only passes slower than threshold
type TimeLogger struct {
	threshold     time.Duration
	inner         Logger
	defaultLogger defaultLogger
}

// NewTimeLogger creates time logger, nil inner logger prints slow passes to stdout
func NewTimeLogger(threshold time.Duration, inner Logger) *TimeLogger {
	return &TimeLogger{
		threshold: threshold,
		inner:     inner,
	}
}

func (t *TimeLogger) DeclarationLowered() DeclarationLowered {
	if t.inner == nil {
		return nil
	}
	return t.inner.DeclarationLowered()
}

func (t *TimeLogger) DeclarationSkipped() DeclarationSkipped {
	if t.inner == nil {
		return nil
	}
	return t.inner.DeclarationSkipped()
}

func (t *TimeLogger) TypeRegistered() TypeRegistered {
	if t.inner == nil {
		return nil
	}
	return t.inner.TypeRegistered()
}

func (t *TimeLogger) Log() Log {
	if t.inner == nil {
		return nil
	}
	return t.inner.Log()
}

func (t *TimeLogger) PassTime() PassTime {
	passTime := t.defaultLogger.logPassTime
	if t.inner != nil {
		if passTime = t.inner.PassTime(); passTime == nil {
			return nil
		}
	}
	return func(source string, start *time.Time, end *time.Time, err error) {
		if end.Sub(*start) < t.threshold {
			return
		}

		passTime(source, start, end, err)
	}
}
