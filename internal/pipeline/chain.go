// Package pipeline runs every tool invocation through an ordered chain of
// interceptors wrapped around handler execution. Before-hooks may transform
// the request, attach a cached result, or cancel the call outright;
// after-hooks may rewrite the response. The chain is built once at startup
// and read-only afterwards.
package pipeline

import (
	"context"
	"fmt"
)

// Interceptor is one named participant in the chain.
type Interceptor interface {
	// Name identifies the interceptor in logs and cancellation messages.
	Name() string

	// Before observes or transforms a pending invocation. It returns the
	// context to hand to the next interceptor (usually rc itself), or nil
	// to cancel the call. Returning a context with Cached set serves the
	// attached result without running the handler or any later
	// before-hook. An error aborts just this invocation.
	Before(ctx context.Context, rc *RequestContext) (*RequestContext, error)

	// After observes or rewrites the response of an executed invocation.
	// Returning nil keeps the current response.
	After(ctx context.Context, rc *RequestContext, resp *ResponseContext) *ResponseContext
}

// Chain holds the interceptors in registration order.
type Chain struct {
	interceptors []Interceptor
}

// NewChain builds the chain. Order is the contract: before-hooks and
// after-hooks both run in the order given here.
func NewChain(interceptors ...Interceptor) *Chain {
	return &Chain{interceptors: interceptors}
}

// Names lists the registered interceptors in order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.interceptors))
	for i, ic := range c.interceptors {
		names[i] = ic.Name()
	}
	return names
}

// BeforeResult is the outcome of the before-phase.
type BeforeResult struct {
	// Ctx is the final request context. Nil when the call was cancelled.
	Ctx *RequestContext
	// Cancelled is set when an interceptor vetoed the call.
	Cancelled   bool
	CancelledBy string
	// CacheHit is set when an interceptor attached a pre-computed result;
	// Ctx.Cached carries it.
	CacheHit bool
}

// RunBefore feeds the context through each before-hook in order. Each hook
// receives the context returned by the previous one. The phase stops early
// on cancellation, on an attached cached result, or on an interceptor
// error.
func (c *Chain) RunBefore(ctx context.Context, rc *RequestContext) (BeforeResult, error) {
	current := rc
	for _, ic := range c.interceptors {
		next, err := ic.Before(ctx, current)
		if err != nil {
			return BeforeResult{}, fmt.Errorf("interceptor %s: %w", ic.Name(), err)
		}
		if next == nil {
			return BeforeResult{Cancelled: true, CancelledBy: ic.Name()}, nil
		}
		current = next
		if current.Cached != nil {
			return BeforeResult{Ctx: current, CacheHit: true}, nil
		}
	}
	return BeforeResult{Ctx: current}, nil
}

// RunAfter folds the response through each after-hook in order. Cache-hit
// responses never come through here: cached results are assumed already
// post-processed by the execution that produced them.
func (c *Chain) RunAfter(ctx context.Context, rc *RequestContext, resp *ResponseContext) *ResponseContext {
	current := resp
	for _, ic := range c.interceptors {
		if next := ic.After(ctx, rc, current); next != nil {
			current = next
		}
	}
	return current
}
