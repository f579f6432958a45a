package table

import (
	"fmt"
	"slices"
	"testing"
)

type item struct {
	Name     string
	Category string
	Stock    int
	Score    float64
	Mixed    any
}

func testEngine(pageSize int) *Engine[item] {
	return New(pageSize,
		Column[item]{Key: "name", Value: func(i item) any { return i.Name }, Searchable: true},
		Column[item]{Key: "category", Value: func(i item) any { return i.Category }, Searchable: true},
		Column[item]{Key: "stock", Value: func(i item) any { return i.Stock }},
		Column[item]{Key: "score", Value: func(i item) any { return i.Score }},
		Column[item]{Key: "mixed", Value: func(i item) any { return i.Mixed }},
	)
}

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestApply_FilterCaseInsensitive(t *testing.T) {
	e := testEngine(10)
	records := []item{
		{Name: "Red Lipstick", Category: "lips"},
		{Name: "Mascara", Category: "Eyes"},
		{Name: "Eyeliner", Category: "eyes"},
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"Red Lipstick", "Mascara", "Eyeliner"}},
		{"LIP", []string{"Red Lipstick"}},
		{"eyes", []string{"Mascara", "Eyeliner"}},
		{" ", []string{"Red Lipstick"}},
		{" lip", []string{"Red Lipstick"}},
		{"  mascara ", []string{}},
		{"nothing", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			r := e.Apply(records, Query{Search: tt.search, Page: 1})
			if got := names(r.Items); !slices.Equal(got, tt.want) {
				t.Errorf("Items = %v, want %v", got, tt.want)
			}
			if r.Total != len(tt.want) {
				t.Errorf("Total = %d, want %d", r.Total, len(tt.want))
			}
		})
	}
}

func TestApply_SortStrings(t *testing.T) {
	e := testEngine(10)
	records := []item{{Name: "banana"}, {Name: "Apple"}, {Name: "cherry"}}

	asc := e.Apply(records, Query{SortKey: "name", Direction: Ascending, Page: 1})
	if got := names(asc.Items); !slices.Equal(got, []string{"Apple", "banana", "cherry"}) {
		t.Errorf("asc = %v", got)
	}
	desc := e.Apply(records, Query{SortKey: "name", Direction: Descending, Page: 1})
	if got := names(desc.Items); !slices.Equal(got, []string{"cherry", "banana", "Apple"}) {
		t.Errorf("desc = %v", got)
	}
	if records[0].Name != "banana" {
		t.Error("Apply modified its input")
	}
}

func TestApply_SortNumbers(t *testing.T) {
	e := testEngine(10)
	records := []item{{Name: "a", Stock: 10}, {Name: "b", Stock: 2}, {Name: "c", Stock: 33}}
	r := e.Apply(records, Query{SortKey: "stock", Page: 1})
	if got := names(r.Items); !slices.Equal(got, []string{"b", "a", "c"}) {
		t.Errorf("stock asc = %v", got)
	}
	records = []item{{Name: "a", Score: 1.5}, {Name: "b", Score: 0.25}}
	r = e.Apply(records, Query{SortKey: "score", Direction: Descending, Page: 1})
	if got := names(r.Items); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("score desc = %v", got)
	}
}

func TestApply_MixedTypesKeepOrder(t *testing.T) {
	e := testEngine(10)
	records := []item{
		{Name: "a", Mixed: "x"},
		{Name: "b", Mixed: 3},
		{Name: "c", Mixed: nil},
		{Name: "d", Mixed: "w"},
	}
	r := e.Apply(records, Query{SortKey: "mixed", Page: 1})
	// Stable: mixed pairs compare equal, only a/d are mutually ordered.
	if len(r.Items) != 4 {
		t.Fatalf("len = %d", len(r.Items))
	}
}

func TestApply_UnknownSortKeyIsNoop(t *testing.T) {
	e := testEngine(10)
	records := []item{{Name: "b"}, {Name: "a"}}
	r := e.Apply(records, Query{SortKey: "missing", Page: 1})
	if got := names(r.Items); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("Items = %v", got)
	}
}

func TestApply_Pagination(t *testing.T) {
	e := testEngine(10)
	var records []item
	for i := range 25 {
		records = append(records, item{Name: fmt.Sprintf("p%02d", i)})
	}

	tests := []struct {
		name     string
		page     int
		wantPage int
		wantLen  int
		wantHead string
	}{
		{"first", 1, 1, 10, "p00"},
		{"last partial", 3, 3, 5, "p20"},
		{"beyond last clamps", 9, 3, 5, "p20"},
		{"zero clamps", 0, 1, 10, "p00"},
		{"negative clamps", -4, 1, 10, "p00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := e.Apply(records, Query{Page: tt.page})
			if r.TotalPages != 3 {
				t.Errorf("TotalPages = %d, want 3", r.TotalPages)
			}
			if r.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", r.Page, tt.wantPage)
			}
			if len(r.Items) != tt.wantLen {
				t.Errorf("len(Items) = %d, want %d", len(r.Items), tt.wantLen)
			}
			if r.Items[0].Name != tt.wantHead {
				t.Errorf("first item = %q, want %q", r.Items[0].Name, tt.wantHead)
			}
		})
	}
}

func TestApply_EmptyHasOnePage(t *testing.T) {
	r := testEngine(10).Apply(nil, Query{Page: 5})
	if r.TotalPages != 1 || r.Page != 1 || len(r.Items) != 0 {
		t.Errorf("got page=%d totalPages=%d len=%d", r.Page, r.TotalPages, len(r.Items))
	}
	if r.HasPrev() || r.HasNext() {
		t.Error("empty result should have no neighbours")
	}
}

func TestApply_FilterShrinksPageCount(t *testing.T) {
	e := testEngine(10)
	var records []item
	for i := range 30 {
		cat := "face"
		if i%10 == 0 {
			cat = "lips"
		}
		records = append(records, item{Name: fmt.Sprintf("p%02d", i), Category: cat})
	}
	r := e.Apply(records, Query{Search: "lips", Page: 3})
	if r.TotalPages != 1 || r.Page != 1 || r.Total != 3 {
		t.Errorf("got page=%d totalPages=%d total=%d", r.Page, r.TotalPages, r.Total)
	}
}

func TestApply_Deterministic(t *testing.T) {
	e := testEngine(2)
	records := []item{{Name: "b", Stock: 1}, {Name: "a", Stock: 1}, {Name: "c", Stock: 0}}
	q := Query{SortKey: "stock", Page: 1}
	first := names(e.Apply(records, q).Items)
	for range 5 {
		if got := names(e.Apply(records, q).Items); !slices.Equal(got, first) {
			t.Fatalf("Apply not deterministic: %v vs %v", got, first)
		}
	}
	if !slices.Equal(first, []string{"c", "b"}) {
		t.Errorf("stable sort = %v, want [c b]", first)
	}
}

func TestNew_DefaultPageSize(t *testing.T) {
	if got := testEngine(0).PageSize(); got != DefaultPageSize {
		t.Errorf("PageSize() = %d, want %d", got, DefaultPageSize)
	}
}

func TestNew_DuplicateColumnPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for duplicate column")
		}
	}()
	New(10,
		Column[item]{Key: "name", Value: func(i item) any { return i.Name }},
		Column[item]{Key: "name", Value: func(i item) any { return i.Name }},
	)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b any
		want int
	}{
		{"a", "B", -1},
		{"B", "a", 1},
		{"abc", "ABC", 0},
		{1, 2, -1},
		{int64(5), 2.5, 1},
		{float32(1), uint8(1), 0},
		{"1", 1, 0},
		{1, "1", 0},
		{nil, nil, 0},
		{true, false, 0},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if ParseDirection("DESC") != Descending {
		t.Error("DESC should parse as Descending")
	}
	if ParseDirection("") != Ascending || ParseDirection("sideways") != Ascending {
		t.Error("unknown should parse as Ascending")
	}
	if Descending.String() != "desc" || Ascending.String() != "asc" {
		t.Error("String() mismatch")
	}
}
