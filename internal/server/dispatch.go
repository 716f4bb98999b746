package server

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/n2ns/ggMCP4VSCode/internal/cache"
	"github.com/n2ns/ggMCP4VSCode/internal/pipeline"
	"github.com/n2ns/ggMCP4VSCode/internal/protocol"
	"github.com/n2ns/ggMCP4VSCode/internal/tools"
	"github.com/n2ns/ggMCP4VSCode/internal/workspace"
)

// Dispatcher turns a tools/call request into a result envelope. Every
// invocation passes through the interceptor chain: before-hooks may
// transform, cancel or answer it from cache, after-hooks may rewrite the
// response of an executed call. Handler failures of any kind become
// failure envelopes, never transport errors.
type Dispatcher struct {
	registry  *tools.Registry
	chain     *pipeline.Chain
	ws        workspace.Binding
	documents *cache.DocumentCache

	serverName    string
	serverVersion string
}

// NewDispatcher wires the dispatcher to its registry, chain and workspace.
func NewDispatcher(registry *tools.Registry, chain *pipeline.Chain, ws workspace.Binding, documents *cache.DocumentCache, serverName, serverVersion string) *Dispatcher {
	return &Dispatcher{
		registry:      registry,
		chain:         chain,
		ws:            ws,
		documents:     documents,
		serverName:    serverName,
		serverVersion: serverVersion,
	}
}

// Dispatch executes one tool call and returns the response envelope plus
// any follow-up tasks the handler scheduled. Follow-ups are meant to run
// after the response has been written; RunFollowUps does that.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any, httpPath string) (*protocol.ToolResult, []tools.DeferredTask) {
	tool, ok := d.registry.Lookup(name)
	if !ok {
		log.Debug().Str("tool", name).Msg("call to unknown tool")
		return protocol.ErrorResult("unknown tool: %s", name), nil
	}

	rc := pipeline.NewRequestContext(name, args, "tools/call", httpPath)
	logger := log.With().Str("tool", name).Str("invocationId", rc.InvocationID).Logger()

	before, err := d.chain.RunBefore(ctx, rc)
	if err != nil {
		logger.Warn().Err(err).Msg("invocation aborted by interceptor")
		return protocol.ErrorResult("%v", err), nil
	}
	if before.Cancelled {
		return protocol.ErrorResult("call cancelled by interceptor %s", before.CancelledBy), nil
	}
	if before.CacheHit {
		// Cached results skip the after-phase; the execution that stored
		// them already went through it.
		return before.Ctx.Cached, nil
	}

	tc := tools.NewToolContext(&logger, d.ws, d.documents, d.registry, d.serverName, d.serverVersion)
	result, err := d.execute(ctx, tool, tc, before.Ctx.Params)
	if err != nil {
		result = protocol.ErrorResult("%v", err)
	}
	if result == nil {
		result = protocol.ErrorResult("tool %s returned no result", name)
	}

	resp := d.chain.RunAfter(ctx, before.Ctx, &pipeline.ResponseContext{Result: result})
	if resp == nil || resp.Result == nil {
		return result, tc.Deferred()
	}
	return resp.Result, tc.Deferred()
}

// execute invokes the handler, converting panics into errors so one bad
// tool cannot take down the serving loop.
func (d *Dispatcher) execute(ctx context.Context, tool *tools.Tool, tc *tools.ToolContext, args map[string]any) (result *protocol.ToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("tool", tool.Definition.Name).Msg("tool handler panicked")
			result = nil
			err = fmt.Errorf("internal error in tool %s", tool.Definition.Name)
		}
	}()
	return tool.Handler(ctx, tc, tools.Args(args))
}

// RunFollowUps executes deferred tasks in order.
func (d *Dispatcher) RunFollowUps(toolName string, followUps []tools.DeferredTask) {
	for _, task := range followUps {
		log.Debug().Str("tool", toolName).Str("task", task.Name).Msg("running follow-up task")
		task.Run()
	}
}
