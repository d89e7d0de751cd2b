// Package engine is the computer opponent. It plays a uniformly random legal
// move and promotes to a random piece; there is no evaluation.
package engine

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"
)

var log = slog.Default().With("package", "engine")

const defaultCacheCap = 1 << 16

type Engine struct {
	mu    sync.Mutex
	rng   *rand.Rand
	nodes int64

	cache    map[uint64][]moveKey
	cacheCap int
	hits     int64
}

type Option func(*Engine)

// WithSeed makes move choice reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithCacheSize bounds the number of positions whose move lists are kept.
// Zero disables the cache.
func WithCacheSize(n int) Option {
	return func(e *Engine) { e.cacheCap = n }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{cacheCap: defaultCacheCap}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.cacheCap > 0 {
		e.cache = make(map[uint64][]moveKey, min(e.cacheCap, 1<<10))
	}
	return e
}

// Nodes is the number of move lists generated so far, cache hits excluded.
func (e *Engine) Nodes() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nodes
}

// CacheHits is the number of move lists served from the cache.
func (e *Engine) CacheHits() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hits
}
