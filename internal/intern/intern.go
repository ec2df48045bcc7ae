// Package intern provides a concurrency-safe identifier intern pool. A
// bounded LRU backs it: once the pool holds capacity entries, adding a
// new one evicts the least recently used entry (entries are not
// reference-counted), and a monotonically growing pool (size <=
// capacity) is the normal steady state for a single file. The pool may
// be shared across lexers running on independent goroutines — for
// example a language server relexing many files against one pool — so
// every exported method is safe for concurrent use.
package intern

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is large enough that a typical single-file lex never
// evicts; it only matters for long-lived pools shared across many files.
const DefaultCapacity = 4096

// Stats is a point-in-time snapshot of pool activity.
type Stats struct {
	Size   int
	Hits   int64
	Misses int64
}

// Pool interns identifier text so that repeated identifiers in a source
// file (or across files sharing one Pool) reuse the same string value.
// Token equality is by text, not by identity — Pool is an optimization,
// never required for correctness.
type Pool struct {
	cache    *lru.Cache[string, string]
	disabled bool
	hits     atomic.Int64
	misses   atomic.Int64
}

// New creates a pool with the given capacity. A non-positive capacity
// disables interning: Intern becomes the identity function.
func New(capacity int) *Pool {
	if capacity <= 0 {
		return &Pool{disabled: true}
	}
	cache, err := lru.New[string, string](capacity)
	if err != nil {
		// Only returns an error for a non-positive size, already excluded above.
		return &Pool{disabled: true}
	}
	return &Pool{cache: cache}
}

// Intern returns the pool's canonical copy of text, inserting it first if
// this is the first time it has been seen. Safe to call concurrently
// from multiple goroutines sharing the same Pool.
func (p *Pool) Intern(text string) string {
	if p.disabled {
		return text
	}
	if v, ok := p.cache.Get(text); ok {
		p.hits.Add(1)
		return v
	}
	p.misses.Add(1)
	p.cache.Add(text, text)
	return text
}

// Stats reports the pool's current size and hit/miss counters.
func (p *Pool) Stats() Stats {
	if p.disabled {
		return Stats{}
	}
	return Stats{
		Size:   p.cache.Len(),
		Hits:   p.hits.Load(),
		Misses: p.misses.Load(),
	}
}
