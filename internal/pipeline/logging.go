package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// LoggingInterceptor records every invocation's start and outcome with its
// elapsed time. Purely observational: timings are diagnostics, never
// behavior.
type LoggingInterceptor struct{}

// NewLoggingInterceptor returns the chain's logging hook.
func NewLoggingInterceptor() *LoggingInterceptor {
	return &LoggingInterceptor{}
}

func (l *LoggingInterceptor) Name() string {
	return "logging"
}

func (l *LoggingInterceptor) Before(ctx context.Context, rc *RequestContext) (*RequestContext, error) {
	log.Debug().
		Str("invocationId", rc.InvocationID).
		Str("tool", rc.ToolName).
		Str("method", rc.Method).
		Msg("tool call started")
	return rc, nil
}

func (l *LoggingInterceptor) After(ctx context.Context, rc *RequestContext, resp *ResponseContext) *ResponseContext {
	evt := log.Debug()
	if resp != nil && resp.Result != nil && resp.Result.IsError {
		evt = log.Warn()
	}
	evt.
		Str("invocationId", rc.InvocationID).
		Str("tool", rc.ToolName).
		Dur("elapsed", time.Since(rc.StartedAt)).
		Msg("tool call completed")
	return resp
}
