package table

import "testing"

func TestState_RequestSort(t *testing.T) {
	s := NewState()
	s.Page = 3

	s.RequestSort("name")
	if s.SortKey != "name" || s.Direction != Ascending {
		t.Fatalf("first request = %+v", s)
	}
	s.RequestSort("name")
	if s.Direction != Descending {
		t.Errorf("second request on same key: Direction = %v, want desc", s.Direction)
	}
	s.RequestSort("name")
	if s.Direction != Ascending {
		t.Errorf("third request on same key: Direction = %v, want asc", s.Direction)
	}
	s.RequestSort("name")
	s.RequestSort("price")
	if s.SortKey != "price" || s.Direction != Ascending {
		t.Errorf("new key should reset to asc: %+v", s)
	}
	if s.Page != 3 {
		t.Errorf("sort changed page to %d", s.Page)
	}
}

func TestState_SetSearchResetsPage(t *testing.T) {
	s := NewState()
	s.Page = 4

	s.SetSearch("")
	if s.Page != 4 {
		t.Errorf("unchanged term reset page to %d", s.Page)
	}
	s.SetSearch("lip")
	if s.Page != 1 {
		t.Errorf("new term: Page = %d, want 1", s.Page)
	}
	s.Page = 2
	s.SetSearch("lip")
	if s.Page != 2 {
		t.Errorf("same term: Page = %d, want 2", s.Page)
	}
}

func TestState_GoTo(t *testing.T) {
	s := NewState()
	s.GoTo(5, 3)
	if s.Page != 3 {
		t.Errorf("Page = %d, want 3", s.Page)
	}
	s.GoTo(-1, 3)
	if s.Page != 1 {
		t.Errorf("Page = %d, want 1", s.Page)
	}
	s.GoTo(2, 0)
	if s.Page != 1 {
		t.Errorf("Page = %d, want 1 when there are no pages", s.Page)
	}
}

func TestState_Query(t *testing.T) {
	s := State{Search: "x", SortKey: "name", Direction: Descending, Page: 2}
	q := s.Query()
	if q.Search != "x" || q.SortKey != "name" || q.Direction != Descending || q.Page != 2 {
		t.Errorf("Query() = %+v", q)
	}
}
