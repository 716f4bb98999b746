package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// BreakerConfig tunes the per-tool circuit breakers.
type BreakerConfig struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval between failure-count resets while closed.
	Interval time.Duration
	// Timeout the breaker stays open before probing again.
	Timeout time.Duration
	// MinRequests before the failure ratio is considered at all.
	MinRequests uint32
	// FailureRatio at which the breaker trips.
	FailureRatio float64
}

// DefaultBreakerConfig returns the tuning used in production.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:  3,
		Interval:     10 * time.Second,
		Timeout:      30 * time.Second,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
}

// BreakerInterceptor cancels calls to a tool whose recent invocations keep
// returning failure envelopes, giving the workspace binding room to
// recover. Each tool gets its own breaker, created on first use. Register
// it last so cancelled and cache-served calls never reach it: only real
// executions are counted.
type BreakerInterceptor struct {
	mu       sync.Mutex
	config   BreakerConfig
	breakers map[string]*gobreaker.TwoStepCircuitBreaker[struct{}]
	inflight map[string]func(bool)
}

// NewBreakerInterceptor builds the breaker hook.
func NewBreakerInterceptor(config BreakerConfig) *BreakerInterceptor {
	return &BreakerInterceptor{
		config:   config,
		breakers: make(map[string]*gobreaker.TwoStepCircuitBreaker[struct{}]),
		inflight: make(map[string]func(bool)),
	}
}

func (b *BreakerInterceptor) Name() string {
	return "breaker"
}

func (b *BreakerInterceptor) Before(ctx context.Context, rc *RequestContext) (*RequestContext, error) {
	done, err := b.breakerFor(rc.ToolName).Allow()
	if err != nil {
		log.Warn().
			Str("invocationId", rc.InvocationID).
			Str("tool", rc.ToolName).
			Err(err).
			Msg("circuit open, cancelling tool call")
		return nil, nil
	}

	b.mu.Lock()
	b.inflight[rc.InvocationID] = done
	b.mu.Unlock()
	return rc, nil
}

func (b *BreakerInterceptor) After(ctx context.Context, rc *RequestContext, resp *ResponseContext) *ResponseContext {
	b.mu.Lock()
	done, ok := b.inflight[rc.InvocationID]
	delete(b.inflight, rc.InvocationID)
	b.mu.Unlock()

	if ok {
		done(resp != nil && resp.Result != nil && !resp.Result.IsError)
	}
	return resp
}

// State reports the breaker state for a tool, for diagnostics.
func (b *BreakerInterceptor) State(toolName string) gobreaker.State {
	return b.breakerFor(toolName).State()
}

func (b *BreakerInterceptor) breakerFor(toolName string) *gobreaker.TwoStepCircuitBreaker[struct{}] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cb, ok := b.breakers[toolName]; ok {
		return cb
	}

	cfg := b.config
	cb := gobreaker.NewTwoStepCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "tool_" + toolName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests && failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})
	b.breakers[toolName] = cb
	return cb
}
