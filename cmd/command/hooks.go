package command

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/csbind/logger"
	"github.com/viant/csbind/shared/logging"
)

// hooks forwards lowering events to structured logger
type hooks struct {
	ctx    context.Context
	logger logging.Logger
}

func (h *hooks) DeclarationLowered() logger.DeclarationLowered {
	return func(kind, name string) {
		h.logger.Debugc(h.ctx, "declaration lowered", "kind", kind, "name", name)
	}
}

func (h *hooks) DeclarationSkipped() logger.DeclarationSkipped {
	return func(kind, name, reason string) {
		h.logger.Debugc(h.ctx, "declaration skipped", "kind", kind, "name", name, "reason", reason)
	}
}

func (h *hooks) TypeRegistered() logger.TypeRegistered {
	return func(native, qualified string) {
		h.logger.Debugc(h.ctx, "type registered", "native", native, "qualified", qualified)
	}
}

func (h *hooks) PassTime() logger.PassTime {
	return func(source string, start *time.Time, end *time.Time, err error) {
		args := []any{"source", source, "elapsed", end.Sub(*start).String()}
		if err != nil {
			h.logger.Warnc(h.ctx, "pass failed", append(args, "error", err.Error())...)
			return
		}
		h.logger.Infoc(h.ctx, "pass completed", args...)
	}
}

func (h *hooks) Log() logger.Log {
	return func(message string, args ...interface{}) {
		h.logger.Debugc(h.ctx, fmt.Sprintf(message, args...))
	}
}

func (s *Service) newHooks(ctx context.Context, slowPass time.Duration) *logger.Adapter {
	var ret logger.Logger = &hooks{ctx: ctx, logger: s.logger}
	if slowPass > 0 {
		ret = logger.NewTimeLogger(slowPass, ret)
	}
	return logger.NewLogger(ret)
}
