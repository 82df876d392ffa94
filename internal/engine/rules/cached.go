package rules

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/stagehand/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCacheSize bounds the number of memoised steps kept by NewCached callers
// that have no better estimate.
const DefaultCacheSize = 4096

// Cached memoises the results of another rule set.
// It is only sound for pure rule sets such as RuleSet.
type Cached struct {
	rules ports.DependencyRules
	cache *lru.Cache[domain.Step, []domain.Step]
}

// NewCached wraps rules with an LRU memo holding up to size steps.
func NewCached(rules ports.DependencyRules, size int) (*Cached, error) {
	cache, err := lru.New[domain.Step, []domain.Step](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create rule cache"), "size", size)
	}
	return &Cached{rules: rules, cache: cache}, nil
}

// Dependencies returns the memoised prerequisites of step, expanding and storing them on a miss.
// Errors are not cached.
func (c *Cached) Dependencies(step domain.Step) ([]domain.Step, error) {
	if deps, ok := c.cache.Get(step); ok {
		return slices.Clone(deps), nil
	}
	deps, err := c.rules.Dependencies(step)
	if err != nil {
		return nil, err
	}
	c.cache.Add(step, slices.Clone(deps))
	return deps, nil
}

// Len returns the number of memoised steps.
func (c *Cached) Len() int {
	return c.cache.Len()
}
