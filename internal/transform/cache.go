package transform

import (
	"context"
	"sync"

	"github.com/misbah/resumeai/internal/types"
)

// Cached memoizes successful transforms keyed on the exact (rawText, style)
// pair. It is a pure performance convenience: concurrent identical-key calls
// run independently (at-least-once, no in-flight de-duplication) and failures
// are never cached.
type Cached struct {
	inner Transformer

	mu      sync.RWMutex
	entries map[cacheKey]*types.ResumeDocument
}

type cacheKey struct {
	rawText string
	style   types.StyleOption
}

// NewCached wraps a Transformer with result memoization.
func NewCached(inner Transformer) *Cached {
	return &Cached{
		inner:   inner,
		entries: make(map[cacheKey]*types.ResumeDocument),
	}
}

// Transform returns a memoized document when the exact input was seen
// before, otherwise delegates to the wrapped Transformer.
func (c *Cached) Transform(ctx context.Context, rawText string, style types.StyleOption) (*types.ResumeDocument, error) {
	key := cacheKey{rawText: rawText, style: style}

	c.mu.RLock()
	doc, hit := c.entries[key]
	c.mu.RUnlock()
	if hit {
		return doc, nil
	}

	doc, err := c.inner.Transform(ctx, rawText, style)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = doc
	c.mu.Unlock()

	return doc, nil
}
