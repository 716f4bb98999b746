package pipeline

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/n2ns/ggMCP4VSCode/internal/cache"
	"github.com/n2ns/ggMCP4VSCode/internal/protocol"
)

// FileCacheInterceptor answers repeated reads of an unchanged file straight
// from the document cache, skipping the tool handler entirely. It only
// steps in for the read tools it was registered for; everything else passes
// through untouched.
type FileCacheInterceptor struct {
	cache     *cache.DocumentCache
	readTools map[string]bool
}

// NewFileCacheInterceptor builds the cache hook for the named read-only
// tools. Those tools must produce a plain text envelope of the file
// contents, since that is the shape served on a hit.
func NewFileCacheInterceptor(c *cache.DocumentCache, readTools ...string) *FileCacheInterceptor {
	eligible := make(map[string]bool, len(readTools))
	for _, name := range readTools {
		eligible[name] = true
	}
	return &FileCacheInterceptor{cache: c, readTools: eligible}
}

func (f *FileCacheInterceptor) Name() string {
	return "file_cache"
}

func (f *FileCacheInterceptor) Before(ctx context.Context, rc *RequestContext) (*RequestContext, error) {
	if !f.readTools[rc.ToolName] {
		return rc, nil
	}
	// Lossy decoding is the handler's business; never serve it from cache.
	if force, _ := rc.Params["forceUtf8"].(bool); force {
		return rc, nil
	}
	path, _ := rc.Params["path"].(string)
	if path == "" {
		return rc, nil
	}

	if text, ok := f.cache.Peek(path); ok {
		rc.Cached = protocol.TextResult(text)
		log.Debug().
			Str("invocationId", rc.InvocationID).
			Str("tool", rc.ToolName).
			Str("path", path).
			Msg("read served from cache")
	}
	return rc, nil
}

func (f *FileCacheInterceptor) After(ctx context.Context, rc *RequestContext, resp *ResponseContext) *ResponseContext {
	return resp
}
