package ui

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/me/glamgiant/internal/table"
)

// parseTableState reads a table.State from the query string. The search
// form posts the new term as "q" and the term it was rendered with as
// "pq"; a changed term moves back to page 1.
func parseTableState(r *http.Request) table.State {
	q := r.URL.Query()
	st := table.State{
		Search:    q.Get("pq"),
		SortKey:   q.Get("sort"),
		Direction: table.ParseDirection(q.Get("dir")),
		Page:      1,
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		st.Page = n
	}
	if q.Has("q") {
		st.SetSearch(q.Get("q"))
	}
	return st
}

// tableNav renders the search, sort and page links of one list view.
type tableNav struct {
	path       string
	state      table.State
	Total      int
	Page       int
	TotalPages int
}

func newTableNav[T any](path string, st table.State, res table.Result[T]) tableNav {
	st.GoTo(res.Page, res.TotalPages)
	return tableNav{path: path, state: st, Total: res.Total, Page: res.Page, TotalPages: res.TotalPages}
}

// Search is the active search term.
func (n tableNav) Search() string { return n.state.Search }

// SortKey is the active sort column.
func (n tableNav) SortKey() string { return n.state.SortKey }

// Direction is the active sort direction.
func (n tableNav) Direction() string { return n.state.Direction.String() }

// Path is the list view's path.
func (n tableNav) Path() string { return n.path }

// SortURL links to the state after requesting a sort on key.
func (n tableNav) SortURL(key string) string {
	st := n.state
	st.RequestSort(key)
	return n.url(st)
}

// Arrow marks the active sort column.
func (n tableNav) Arrow(key string) string {
	if n.state.SortKey != key {
		return ""
	}
	if n.state.Direction == table.Descending {
		return "▼"
	}
	return "▲"
}

// PageURL links to page.
func (n tableNav) PageURL(page int) string {
	st := n.state
	st.GoTo(page, n.TotalPages)
	return n.url(st)
}

func (n tableNav) HasPrev() bool { return n.Page > 1 }
func (n tableNav) HasNext() bool { return n.Page < n.TotalPages }

func (n tableNav) url(st table.State) string {
	v := url.Values{}
	if st.Search != "" {
		v.Set("q", st.Search)
		v.Set("pq", st.Search)
	}
	if st.SortKey != "" {
		v.Set("sort", st.SortKey)
		v.Set("dir", st.Direction.String())
	}
	if st.Page > 1 {
		v.Set("page", strconv.Itoa(st.Page))
	}
	if len(v) == 0 {
		return n.path
	}
	return n.path + "?" + v.Encode()
}
