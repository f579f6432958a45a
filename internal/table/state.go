package table

// State is the per-view search, sort and page selection. It is never
// persisted; each view instance owns one.
type State struct {
	Search    string
	SortKey   string
	Direction Direction
	Page      int
}

// NewState returns a State on the first page with no search or sort.
func NewState() State {
	return State{Page: 1}
}

// SetSearch changes the search term. A different term resets to page 1.
func (s *State) SetSearch(term string) {
	if term == s.Search {
		return
	}
	s.Search = term
	s.Page = 1
}

// RequestSort selects key as the sort column. Requesting the current key
// while ascending switches to descending; anything else sorts ascending.
// The page is left alone.
func (s *State) RequestSort(key string) {
	if s.SortKey == key && s.Direction == Ascending {
		s.Direction = Descending
	} else {
		s.Direction = Ascending
	}
	s.SortKey = key
}

// GoTo moves to page, clamped into [1, totalPages].
func (s *State) GoTo(page, totalPages int) {
	s.Page = min(max(page, 1), max(totalPages, 1))
}

// Query converts the state into an engine query.
func (s State) Query() Query {
	return Query{
		Search:    s.Search,
		SortKey:   s.SortKey,
		Direction: s.Direction,
		Page:      s.Page,
	}
}
