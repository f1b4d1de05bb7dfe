// utils/filters.go - query-string to predicate translation for list endpoints
package utils

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ValueKind declares how an exact-match parameter is coerced before it is
// turned into a predicate.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindBool
)

// FilterConfig enumerates which query parameters a list endpoint honors.
// Parameters not named here are ignored.
type FilterConfig struct {
	// SearchFields are column names matched with a case-insensitive
	// substring search against the single "search" parameter, OR-combined.
	SearchFields []string
	// ExactFields maps parameter/column names to their coercion kind.
	// Values that fail coercion contribute no predicate.
	ExactFields map[string]ValueKind
	// RangeFields are timestamp columns bounded via <field>_from and
	// <field>_to parameters (RFC 3339 or 2006-01-02).
	RangeFields []string
}

type condition struct {
	query string
	args  []interface{}
}

// Filters is the structured predicate description produced by BuildFilters.
type Filters struct {
	conds []condition
}

// BuildFilters translates query parameters into a predicate description.
// Absent parameters omit their predicate; unparsable values are dropped
// rather than rejected.
func BuildFilters(values url.Values, cfg FilterConfig) *Filters {
	f := &Filters{}

	if term := strings.TrimSpace(values.Get("search")); term != "" && len(cfg.SearchFields) > 0 {
		clauses := make([]string, 0, len(cfg.SearchFields))
		args := make([]interface{}, 0, len(cfg.SearchFields))
		for _, field := range cfg.SearchFields {
			clauses = append(clauses, fmt.Sprintf("LOWER(%s) LIKE ?", field))
			args = append(args, "%"+strings.ToLower(term)+"%")
		}
		f.conds = append(f.conds, condition{
			query: "(" + strings.Join(clauses, " OR ") + ")",
			args:  args,
		})
	}

	// Sorted so the generated SQL is stable across runs.
	exactNames := make([]string, 0, len(cfg.ExactFields))
	for name := range cfg.ExactFields {
		exactNames = append(exactNames, name)
	}
	sort.Strings(exactNames)

	for _, name := range exactNames {
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			continue
		}
		value, ok := coerceValue(raw, cfg.ExactFields[name])
		if !ok {
			continue
		}
		f.conds = append(f.conds, condition{
			query: fmt.Sprintf("%s = ?", name),
			args:  []interface{}{value},
		})
	}

	for _, field := range cfg.RangeFields {
		if from, ok := parseTimestamp(values.Get(field + "_from")); ok {
			f.conds = append(f.conds, condition{
				query: fmt.Sprintf("%s >= ?", field),
				args:  []interface{}{from},
			})
		}
		if to, ok := parseTimestamp(values.Get(field + "_to")); ok {
			f.conds = append(f.conds, condition{
				query: fmt.Sprintf("%s <= ?", field),
				args:  []interface{}{to},
			})
		}
	}

	return f
}

// Apply chains the predicates onto a GORM query. A nil receiver applies
// nothing, so list endpoints without filters can pass it straight through.
func (f *Filters) Apply(db *gorm.DB) *gorm.DB {
	if f == nil {
		return db
	}
	for _, cond := range f.conds {
		db = db.Where(cond.query, cond.args...)
	}
	return db
}

// Empty reports whether no predicate was built.
func (f *Filters) Empty() bool {
	return f == nil || len(f.conds) == 0
}

func coerceValue(raw string, kind ValueKind) (interface{}, bool) {
	switch kind {
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false
		}
		return n, true
	case KindBool:
		switch strings.ToLower(raw) {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
		return nil, false
	default:
		return raw, true
	}
}

func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
