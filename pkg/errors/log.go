package errors

import (
	"github.com/rs/zerolog"

	"github.com/muv-academia/muv/pkg/log"
)

// LogHandler is a Handler that writes errors as structured log events.
type LogHandler struct {
	// Logger receives the events. If nil, the package logger from pkg/log
	// is used at the time of each report.
	Logger *zerolog.Logger
	// Verbose attaches stack traces to every event.
	Verbose bool
}

func (h *LogHandler) logger() *zerolog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	l := log.L()
	return &l
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	ev := h.logger().Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String()).
		Err(err.Err)
	if err.Path != "" {
		ev = ev.Str("path", err.Path)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("muv error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("muv panic")
}
