package utils

import (
	"database/sql/driver"
	"net/url"
	"regexp"
	"testing"
)

type pagerDistrict struct {
	ID     int
	Name   string
	Region string
}

func (pagerDistrict) TableName() string { return "districts" }

func TestParamsNormalizeClampsOutOfRange(t *testing.T) {
	p := Params{Page: 0, Limit: -5}.Normalize()
	if p.Page != 1 || p.Limit != 1 {
		t.Fatalf("expected clamp to {1,1}, got %+v", p)
	}

	p = Params{Page: 2, Limit: 5000}.Normalize()
	if p.Limit != 100 {
		t.Fatalf("expected limit cap at 100, got %d", p.Limit)
	}
}

func TestParamsFromQueryDefaults(t *testing.T) {
	p := ParamsFromQuery(url.Values{})
	if p.Limit != 10 {
		t.Fatalf("expected default limit 10, got %d", p.Limit)
	}

	values := url.Values{}
	values.Set("page", "4")
	values.Set("limit", "25")
	p = ParamsFromQuery(values)
	if p.Page != 4 || p.Limit != 25 {
		t.Fatalf("unexpected params: %+v", p)
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		count int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, tc := range cases {
		if got := PageCount(tc.count, tc.limit); got != tc.want {
			t.Fatalf("PageCount(%d, %d) = %d, want %d", tc.count, tc.limit, got, tc.want)
		}
	}
}

func TestPaginateReturnsPageAndTotals(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `districts` WHERE"),
			args:    []driver.Value{"%north%"},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(2)}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `districts` WHERE .*LIMIT"),
			args:    []driver.Value{"%north%", int64(10)},
			columns: []string{"id", "name", "region"},
			rows: [][]driver.Value{
				{int64(1), "North Zone", "North"},
				{int64(2), "Northern Hills", "North"},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	values := url.Values{}
	values.Set("search", "North")
	filters := BuildFilters(values, FilterConfig{SearchFields: []string{"name"}})

	page, err := Paginate[pagerDistrict](db, Params{Page: 1, Limit: 10}, filters)
	if err != nil {
		t.Fatalf("paginate failed: %v", err)
	}

	if page.Count != 2 || page.Pages != 1 || page.CurrentPage != 1 {
		t.Fatalf("unexpected totals: %+v", page)
	}
	if len(page.Data) != 2 || page.Data[0].Name != "North Zone" {
		t.Fatalf("unexpected data: %+v", page.Data)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestPaginateBeyondLastPageIsEmptyWithRealTotals(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `districts`"),
			args:    []driver.Value{},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(2)}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `districts` LIMIT .* OFFSET"),
			args:    []driver.Value{int64(1), int64(2)},
			columns: []string{"id", "name", "region"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	page, err := Paginate[pagerDistrict](db, Params{Page: 3, Limit: 1}, nil)
	if err != nil {
		t.Fatalf("paginate failed: %v", err)
	}

	if len(page.Data) != 0 {
		t.Fatalf("expected empty page, got %d records", len(page.Data))
	}
	if page.Count != 2 || page.Pages != 2 || page.CurrentPage != 3 {
		t.Fatalf("totals must reflect the full result set: %+v", page)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}
