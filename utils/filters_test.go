package utils

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

func buildTestConfig() FilterConfig {
	return FilterConfig{
		SearchFields: []string{"name", "region"},
		ExactFields: map[string]ValueKind{
			"status":         KindBool,
			"institution_id": KindInt,
			"region":         KindString,
		},
		RangeFields: []string{"created_at"},
	}
}

func TestBuildFiltersEmptyQuery(t *testing.T) {
	f := BuildFilters(url.Values{}, buildTestConfig())
	if !f.Empty() {
		t.Fatalf("expected no predicates, got %d", len(f.conds))
	}
}

func TestBuildFiltersIgnoresUnknownParams(t *testing.T) {
	values := url.Values{}
	values.Set("nonsense", "value")
	values.Set("page", "3")

	f := BuildFilters(values, buildTestConfig())
	if !f.Empty() {
		t.Fatalf("unknown parameters must not produce predicates, got %d", len(f.conds))
	}
}

func TestBuildFiltersSearchIsORAcrossFields(t *testing.T) {
	values := url.Values{}
	values.Set("search", "North")

	f := BuildFilters(values, buildTestConfig())
	if len(f.conds) != 1 {
		t.Fatalf("expected a single search condition, got %d", len(f.conds))
	}

	cond := f.conds[0]
	if !strings.Contains(cond.query, " OR ") {
		t.Fatalf("search fields must be OR-combined: %q", cond.query)
	}
	if !strings.Contains(cond.query, "LOWER(name) LIKE ?") || !strings.Contains(cond.query, "LOWER(region) LIKE ?") {
		t.Fatalf("unexpected search condition: %q", cond.query)
	}
	for _, arg := range cond.args {
		if arg != "%north%" {
			t.Fatalf("search term must be lower-cased and wrapped: %v", arg)
		}
	}
}

func TestBuildFiltersExactFieldsAreANDCombined(t *testing.T) {
	values := url.Values{}
	values.Set("status", "true")
	values.Set("institution_id", "7")

	f := BuildFilters(values, buildTestConfig())
	if len(f.conds) != 2 {
		t.Fatalf("expected two separate AND conditions, got %d", len(f.conds))
	}
}

func TestBuildFiltersNonNumericExactValueIsDropped(t *testing.T) {
	values := url.Values{}
	values.Set("institution_id", "not-a-number")

	f := BuildFilters(values, buildTestConfig())
	if !f.Empty() {
		t.Fatalf("unparsable numeric value must contribute no predicate, got %d", len(f.conds))
	}
}

func TestBuildFiltersBoolCoercion(t *testing.T) {
	cases := map[string]interface{}{
		"true":  true,
		"1":     true,
		"false": false,
		"0":     false,
	}
	for raw, want := range cases {
		values := url.Values{}
		values.Set("status", raw)
		f := BuildFilters(values, buildTestConfig())
		if len(f.conds) != 1 {
			t.Fatalf("status=%q: expected one condition", raw)
		}
		if f.conds[0].args[0] != want {
			t.Fatalf("status=%q: got %v want %v", raw, f.conds[0].args[0], want)
		}
	}

	values := url.Values{}
	values.Set("status", "maybe")
	if f := BuildFilters(values, buildTestConfig()); !f.Empty() {
		t.Fatal("unparsable bool must contribute no predicate")
	}
}

func TestBuildFiltersRangeBounds(t *testing.T) {
	values := url.Values{}
	values.Set("created_at_from", "2024-01-01")
	values.Set("created_at_to", "2024-12-31T23:59:59Z")

	f := BuildFilters(values, buildTestConfig())
	if len(f.conds) != 2 {
		t.Fatalf("expected lower and upper bound conditions, got %d", len(f.conds))
	}

	if f.conds[0].query != "created_at >= ?" {
		t.Fatalf("unexpected lower bound: %q", f.conds[0].query)
	}
	from := f.conds[0].args[0].(time.Time)
	if from.Year() != 2024 || from.Month() != time.January {
		t.Fatalf("unexpected lower bound value: %v", from)
	}
	if f.conds[1].query != "created_at <= ?" {
		t.Fatalf("unexpected upper bound: %q", f.conds[1].query)
	}
}

func TestBuildFiltersBadRangeValueIsDropped(t *testing.T) {
	values := url.Values{}
	values.Set("created_at_from", "yesterday")

	if f := BuildFilters(values, buildTestConfig()); !f.Empty() {
		t.Fatal("unparsable range bound must contribute no predicate")
	}
}

func TestNilFiltersApplyIsNoop(t *testing.T) {
	var f *Filters
	if !f.Empty() {
		t.Fatal("nil filters must be empty")
	}
	// Apply on nil must hand the query back untouched.
	if got := f.Apply(nil); got != nil {
		t.Fatal("nil filters must return the db handle unchanged")
	}
}
