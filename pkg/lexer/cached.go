package lexer

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/source"
)

// Cache lifetimes for memoised lines.
const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// Cached memoises Tokenize results keyed by line text. State is passed through
// because it depends on surrounding rows.
type Cached struct {
	inner behaviour.Tokenizer
	cache *gocache.Cache
}

// NewCached wraps inner with an in-memory cache.
func NewCached(inner behaviour.Tokenizer, expiration, cleanupInterval time.Duration) *Cached {
	return &Cached{
		inner: inner,
		cache: gocache.New(expiration, cleanupInterval),
	}
}

// Tokenize implements behaviour.Tokenizer.
func (c *Cached) Tokenize(line string) []source.Token {
	if value, found := c.cache.Get(line); found {
		if tokens, ok := value.([]source.Token); ok {
			return clone(tokens)
		}
	}

	tokens := c.inner.Tokenize(line)
	c.cache.Set(line, clone(tokens), gocache.DefaultExpiration)
	return tokens
}

// State implements behaviour.Tokenizer.
func (c *Cached) State(doc source.Document, row int) string {
	return c.inner.State(doc, row)
}

func clone(tokens []source.Token) []source.Token {
	if tokens == nil {
		return nil
	}
	out := make([]source.Token, len(tokens))
	copy(out, tokens)
	return out
}
