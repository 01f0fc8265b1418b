package lexer

import (
	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/config"
)

// ForConfig returns the tokenizer cfg asks for: chroma, memoised unless
// token_cache is off.
func ForConfig(cfg *config.Config) behaviour.Tokenizer {
	lookback := 0
	if cfg != nil {
		lookback = cfg.StateLookback
	}
	base := NewChroma(lookback)
	if !cfg.UseTokenCache() {
		return base
	}
	return NewCached(base, DefaultExpiration, DefaultCleanupInterval)
}
