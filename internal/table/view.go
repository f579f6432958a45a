package table

import (
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheSize bounds the number of memoized queries per view.
const defaultCacheSize = 64

// View binds a record set to an Engine and memoizes results per Query.
// Results are recomputed only when the records or the query change.
type View[T any] struct {
	engine *Engine[T]

	mu      sync.RWMutex
	records []T
	cache   *lru.Cache[Query, Result[T]]
}

// NewView creates a View over engine with an empty record set.
func NewView[T any](engine *Engine[T]) *View[T] {
	cache, err := lru.New[Query, Result[T]](defaultCacheSize)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}
	return &View[T]{engine: engine, cache: cache}
}

// SetRecords replaces the record set and drops memoized results.
func (v *View[T]) SetRecords(records []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.records = records
	v.cache.Purge()
}

// Len returns the number of unfiltered records.
func (v *View[T]) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.records)
}

// Engine returns the underlying engine.
func (v *View[T]) Engine() *Engine[T] { return v.engine }

// Result returns the page for q, computing it at most once per record set.
func (v *View[T]) Result(q Query) Result[T] {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if r, ok := v.cache.Get(q); ok {
		return r
	}
	r := v.engine.Apply(v.records, q)
	v.cache.Add(q, r)
	return r
}

// Sync replaces the records when they differ from the current set under
// equal, then returns the page for q. Replacement and lookup happen under
// one lock, so concurrent callers never see a result for another caller's
// records.
func (v *View[T]) Sync(records []T, equal func(a, b T) bool, q Query) Result[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !slices.EqualFunc(v.records, records, equal) {
		v.records = records
		v.cache.Purge()
	}
	if r, ok := v.cache.Get(q); ok {
		return r
	}
	r := v.engine.Apply(v.records, q)
	v.cache.Add(q, r)
	return r
}
