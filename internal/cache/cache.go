// Package cache keeps a path-keyed copy of decoded file text so read-heavy
// tool traffic does not hit the file system on every call.
//
// The file system stays authoritative. Writers store the authoritative copy
// first, respond, and only then update the cache as a best-effort follow-up;
// when that follow-up cannot be confirmed the entry is invalidated so the
// next read re-derives truth from disk instead of serving stale text.
package cache

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/n2ns/ggMCP4VSCode/internal/workspace"
)

// Entry is one cached document. Entries are immutable once stored: every
// update swaps in a fresh value, so a concurrent reader sees either the old
// entry or the new one, never a mix.
type Entry struct {
	Path    string
	Text    string
	Size    int64
	ModTime time.Time
}

// DocumentCache caches decoded text per absolute path, validated against
// the file's current size and modification time on every hit.
type DocumentCache struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	ws      workspace.Binding
}

// New returns an empty cache reading through to ws.
func New(ws workspace.Binding) *DocumentCache {
	return &DocumentCache{
		entries: make(map[string]*Entry),
		ws:      ws,
	}
}

// Read returns the text of the file at path, serving a valid cached entry
// when one exists and falling through to the workspace binding otherwise.
// Content that cannot be decoded fails with workspace.ErrDecode.
func (c *DocumentCache) Read(path string, forceUTF8 bool) (string, error) {
	key, err := c.ws.Resolve(path)
	if err != nil {
		return "", err
	}

	if entry, ok := c.validEntry(key); ok {
		return entry.Text, nil
	}

	// Marker before contents: a write landing between the two calls leaves
	// a stale marker on the entry, which the next validity check rejects.
	// The race then costs one extra fall-through, never a trusted stale
	// entry.
	stat, statErr := c.ws.Stat(path)

	text, err := c.ws.ReadText(path, forceUTF8)
	if err != nil {
		return "", err
	}

	// Cache only when a validity marker was recorded; a file appearing
	// between stat and read just stays uncached.
	if statErr == nil {
		c.store(&Entry{Path: key, Text: text, Size: stat.Size, ModTime: stat.ModTime})
	}
	return text, nil
}

// Peek returns the cached text for path when a valid entry exists. It never
// touches file contents, so interceptors can use it to answer reads without
// involving the tool handler.
func (c *DocumentCache) Peek(path string) (string, bool) {
	key, err := c.ws.Resolve(path)
	if err != nil {
		return "", false
	}
	entry, ok := c.validEntry(key)
	if !ok {
		return "", false
	}
	return entry.Text, true
}

// Update records text as the cached content of path after a write. Best
// effort: when the authoritative file cannot be confirmed to match (stat
// failure, or a size differing from what was just written) the entry is
// invalidated instead, and the next read falls through to disk.
func (c *DocumentCache) Update(path, text string) {
	key, err := c.ws.Resolve(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("cache update refused")
		return
	}

	stat, err := c.ws.Stat(path)
	if err != nil || stat.Size != int64(len(text)) {
		c.remove(key)
		log.Warn().Err(err).Str("path", path).Msg("cache update unconfirmed, entry invalidated")
		return
	}

	c.store(&Entry{Path: key, Text: text, Size: stat.Size, ModTime: stat.ModTime})
	log.Debug().Str("path", path).Int("bytes", len(text)).Msg("cache updated")
}

// Invalidate unconditionally removes the entry for path.
func (c *DocumentCache) Invalidate(path string) {
	key, err := c.ws.Resolve(path)
	if err != nil {
		// Never cached under a valid key; nothing to remove.
		return
	}
	c.remove(key)
	log.Debug().Str("path", path).Msg("cache entry invalidated")
}

// Len reports the number of cached entries.
func (c *DocumentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// validEntry returns the entry for key if it still matches the file on
// disk. Any mismatch means an external modification; the entry is dropped
// so the caller re-reads.
func (c *DocumentCache) validEntry(key string) (*Entry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	stat, err := c.ws.Stat(entry.Path)
	if err != nil || stat.Size != entry.Size || !stat.ModTime.Equal(entry.ModTime) {
		c.remove(key)
		return nil, false
	}
	return entry, true
}

func (c *DocumentCache) store(entry *Entry) {
	c.mu.Lock()
	c.entries[entry.Path] = entry
	c.mu.Unlock()
}

func (c *DocumentCache) remove(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
