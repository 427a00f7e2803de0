package annotate

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pmorozov/inklet/internal/cache"
)

// CachedAnnotator wraps an Annotator with a cache. Annotation is
// deterministic for a given engine and text, so cached parses are safe
// to reuse until the engine itself changes.
type CachedAnnotator struct {
	inner Annotator
	store cache.Store
	ttl   time.Duration
}

// NewCachedAnnotator wraps inner with the given store
func NewCachedAnnotator(inner Annotator, store cache.Store, ttl time.Duration) *CachedAnnotator {
	return &CachedAnnotator{
		inner: inner,
		store: store,
		ttl:   ttl,
	}
}

// Name returns the wrapped engine's name
func (c *CachedAnnotator) Name() string {
	return c.inner.Name()
}

// IsAvailable defers to the wrapped engine
func (c *CachedAnnotator) IsAvailable(ctx context.Context) bool {
	return c.inner.IsAvailable(ctx)
}

// Annotate serves from the cache when possible, otherwise calls the
// wrapped engine and stores its result
func (c *CachedAnnotator) Annotate(ctx context.Context, text string) ([]Sentence, error) {
	key := cache.Key(c.inner.Name(), text)

	if data, found := c.store.Get(key); found {
		var sentences []Sentence
		if err := json.Unmarshal(data, &sentences); err == nil {
			return sentences, nil
		}
		// Corrupt entry: drop it and fall through to the engine
		_ = c.store.Delete(key)
	}

	sentences, err := c.inner.Annotate(ctx, text)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(sentences); err == nil {
		_ = c.store.Set(key, data, c.ttl)
	}

	return sentences, nil
}
