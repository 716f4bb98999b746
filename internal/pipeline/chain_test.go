package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/n2ns/ggMCP4VSCode/internal/protocol"
)

// scripted is a test interceptor that records its calls and delegates to
// optional hook overrides.
type scripted struct {
	name   string
	calls  *[]string
	before func(rc *RequestContext) (*RequestContext, error)
	after  func(resp *ResponseContext) *ResponseContext
}

func (s *scripted) Name() string { return s.name }

func (s *scripted) Before(ctx context.Context, rc *RequestContext) (*RequestContext, error) {
	*s.calls = append(*s.calls, s.name+":before")
	if s.before != nil {
		return s.before(rc)
	}
	return rc, nil
}

func (s *scripted) After(ctx context.Context, rc *RequestContext, resp *ResponseContext) *ResponseContext {
	*s.calls = append(*s.calls, s.name+":after")
	if s.after != nil {
		return s.after(resp)
	}
	return resp
}

func TestChain_HooksRunInRegistrationOrder(t *testing.T) {
	var calls []string
	chain := NewChain(
		&scripted{name: "A", calls: &calls},
		&scripted{name: "B", calls: &calls},
		&scripted{name: "C", calls: &calls},
	)

	rc := NewRequestContext("demo_tool", map[string]any{"path": "x"}, "tools/call", "/mcp")
	res, err := chain.RunBefore(context.Background(), rc)
	if err != nil {
		t.Fatalf("RunBefore() error = %v", err)
	}
	if res.Cancelled || res.CacheHit {
		t.Fatalf("RunBefore() = %+v, want plain continuation", res)
	}

	chain.RunAfter(context.Background(), res.Ctx, &ResponseContext{Result: protocol.TextResult("ok"), Status: 200})

	want := "A:before,B:before,C:before,A:after,B:after,C:after"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("call order = %s, want %s", got, want)
	}
}

func TestChain_BeforeFeedsReplacementForward(t *testing.T) {
	var calls []string
	var sawAugmented bool

	augmenter := &scripted{name: "A", calls: &calls, before: func(rc *RequestContext) (*RequestContext, error) {
		replacement := *rc
		replacement.Params = map[string]any{"path": "x", "augmented": true}
		return &replacement, nil
	}}
	observer := &scripted{name: "B", calls: &calls, before: func(rc *RequestContext) (*RequestContext, error) {
		sawAugmented, _ = rc.Params["augmented"].(bool)
		return rc, nil
	}}

	chain := NewChain(augmenter, observer)
	res, err := chain.RunBefore(context.Background(), NewRequestContext("demo_tool", map[string]any{"path": "x"}, "tools/call", "/mcp"))
	if err != nil {
		t.Fatalf("RunBefore() error = %v", err)
	}
	if !sawAugmented {
		t.Error("Second interceptor did not receive the first one's replacement context")
	}
	if augmented, _ := res.Ctx.Params["augmented"].(bool); !augmented {
		t.Error("Final context lost the transformation")
	}
}

func TestChain_CancellationStopsLaterHooks(t *testing.T) {
	var calls []string
	chain := NewChain(
		&scripted{name: "A", calls: &calls},
		&scripted{name: "B", calls: &calls, before: func(rc *RequestContext) (*RequestContext, error) {
			return nil, nil
		}},
		&scripted{name: "C", calls: &calls},
	)

	res, err := chain.RunBefore(context.Background(), NewRequestContext("demo_tool", nil, "tools/call", "/mcp"))
	if err != nil {
		t.Fatalf("RunBefore() error = %v", err)
	}
	if !res.Cancelled {
		t.Fatal("Expected cancellation")
	}
	if res.CancelledBy != "B" {
		t.Errorf("CancelledBy = %q, want B", res.CancelledBy)
	}
	if res.Ctx != nil {
		t.Error("Cancelled result must not carry a context")
	}

	want := "A:before,B:before"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("call order = %s, want %s", got, want)
	}
}

func TestChain_CacheHitSkipsRemainingBeforeHooks(t *testing.T) {
	var calls []string
	cached := protocol.TextResult("cached body")

	chain := NewChain(
		&scripted{name: "A", calls: &calls},
		&scripted{name: "B", calls: &calls, before: func(rc *RequestContext) (*RequestContext, error) {
			rc.Cached = cached
			return rc, nil
		}},
		&scripted{name: "C", calls: &calls},
	)

	res, err := chain.RunBefore(context.Background(), NewRequestContext("get_file_text", map[string]any{"path": "a"}, "tools/call", "/mcp"))
	if err != nil {
		t.Fatalf("RunBefore() error = %v", err)
	}
	if !res.CacheHit {
		t.Fatal("Expected cache hit")
	}
	if res.Ctx.Cached != cached {
		t.Error("Cache hit lost the attached result")
	}

	want := "A:before,B:before"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("call order = %s, want %s", got, want)
	}
}

func TestChain_InterceptorErrorAbortsInvocation(t *testing.T) {
	var calls []string
	boom := errors.New("boom")

	chain := NewChain(
		&scripted{name: "A", calls: &calls},
		&scripted{name: "B", calls: &calls, before: func(rc *RequestContext) (*RequestContext, error) {
			return nil, boom
		}},
		&scripted{name: "C", calls: &calls},
	)

	_, err := chain.RunBefore(context.Background(), NewRequestContext("demo_tool", nil, "tools/call", "/mcp"))
	if !errors.Is(err, boom) {
		t.Fatalf("RunBefore() error = %v, want %v", err, boom)
	}
	if !strings.Contains(err.Error(), "interceptor B") {
		t.Errorf("error %q does not name the failing interceptor", err)
	}

	want := "A:before,B:before"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("call order = %s, want %s", got, want)
	}
}

func TestChain_AfterRewritesFold(t *testing.T) {
	var calls []string
	chain := NewChain(
		&scripted{name: "A", calls: &calls, after: func(resp *ResponseContext) *ResponseContext {
			return &ResponseContext{Result: protocol.TextResult(resp.Result.Content[0].Text + "+A"), Status: resp.Status}
		}},
		&scripted{name: "B", calls: &calls, after: func(resp *ResponseContext) *ResponseContext {
			// Keep the current response untouched.
			return nil
		}},
		&scripted{name: "C", calls: &calls, after: func(resp *ResponseContext) *ResponseContext {
			return &ResponseContext{Result: protocol.TextResult(resp.Result.Content[0].Text + "+C"), Status: resp.Status}
		}},
	)

	rc := NewRequestContext("demo_tool", nil, "tools/call", "/mcp")
	final := chain.RunAfter(context.Background(), rc, &ResponseContext{Result: protocol.TextResult("base"), Status: 200})

	if got := final.Result.Content[0].Text; got != "base+A+C" {
		t.Errorf("folded result = %q, want %q", got, "base+A+C")
	}
}

func TestNewRequestContext(t *testing.T) {
	rc := NewRequestContext("replace_text_in_file", map[string]any{"path": "a.go"}, "tools/call", "/mcp")

	if rc.InvocationID == "" {
		t.Error("Expected a generated invocation id")
	}
	if rc.StartedAt.IsZero() {
		t.Error("Expected StartedAt to be set")
	}
	if rc.Cached != nil {
		t.Error("Fresh context must not carry a cached result")
	}

	other := NewRequestContext("replace_text_in_file", nil, "tools/call", "/mcp")
	if other.InvocationID == rc.InvocationID {
		t.Error("Invocation ids must be unique per context")
	}
}
