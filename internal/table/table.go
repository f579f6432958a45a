// Package table implements the generic filter, sort and paginate pipeline
// shared by every list view.
package table

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultPageSize is used when an Engine is built with a non-positive size.
const DefaultPageSize = 10

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection parses "asc" or "desc". Anything else is Ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "desc") {
		return Descending
	}
	return Ascending
}

// Column describes one field of T the engine can search or sort on.
type Column[T any] struct {
	Key        string
	Value      func(T) any
	Searchable bool
}

// Query is the full input of one Apply call.
type Query struct {
	Search    string
	SortKey   string
	Direction Direction
	Page      int
}

// Result is one page of filtered, sorted records.
type Result[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	Total      int
	PageSize   int
}

// HasPrev reports whether a previous page exists.
func (r Result[T]) HasPrev() bool { return r.Page > 1 }

// HasNext reports whether a following page exists.
func (r Result[T]) HasNext() bool { return r.Page < r.TotalPages }

// Engine filters, sorts and paginates records of type T.
type Engine[T any] struct {
	columns  map[string]Column[T]
	order    []string
	pageSize int
}

// New creates an Engine over the given columns.
func New[T any](pageSize int, columns ...Column[T]) *Engine[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	e := &Engine[T]{
		columns:  make(map[string]Column[T], len(columns)),
		pageSize: pageSize,
	}
	for _, c := range columns {
		if _, dup := e.columns[c.Key]; dup {
			panic(fmt.Sprintf("table: duplicate column %q", c.Key))
		}
		e.columns[c.Key] = c
		e.order = append(e.order, c.Key)
	}
	return e
}

// PageSize returns the engine's page size.
func (e *Engine[T]) PageSize() int { return e.pageSize }

// Keys returns the column keys in declaration order.
func (e *Engine[T]) Keys() []string { return slices.Clone(e.order) }

// Sortable reports whether key names a column.
func (e *Engine[T]) Sortable(key string) bool {
	_, ok := e.columns[key]
	return ok
}

// Apply runs filter, sort and paginate over records. The input slice is
// never modified.
func (e *Engine[T]) Apply(records []T, q Query) Result[T] {
	filtered := e.filter(records, q.Search)
	e.sort(filtered, q.SortKey, q.Direction)

	total := len(filtered)
	totalPages := (total + e.pageSize - 1) / e.pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := min(max(q.Page, 1), totalPages)

	start := (page - 1) * e.pageSize
	end := min(start+e.pageSize, total)
	items := filtered[start:end]

	return Result[T]{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		PageSize:   e.pageSize,
	}
}

func (e *Engine[T]) filter(records []T, search string) []T {
	needle := strings.ToLower(search)
	if needle == "" {
		return slices.Clone(records)
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if e.matches(rec, needle) {
			out = append(out, rec)
		}
	}
	return out
}

func (e *Engine[T]) matches(rec T, needle string) bool {
	for _, key := range e.order {
		c := e.columns[key]
		if !c.Searchable {
			continue
		}
		s, ok := c.Value(rec).(string)
		if ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func (e *Engine[T]) sort(records []T, key string, dir Direction) {
	c, ok := e.columns[key]
	if !ok {
		return
	}
	slices.SortStableFunc(records, func(a, b T) int {
		n := Compare(c.Value(a), c.Value(b))
		if dir == Descending {
			return -n
		}
		return n
	})
}
