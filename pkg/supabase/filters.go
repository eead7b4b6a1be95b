package supabase

import (
	"fmt"
	"net/url"
)

// Filters accumulates PostgREST predicates. The rendered operators must match
// the proxy's query language exactly: "eq.<v>", "ilike.%<v>%", "gte.<v>".
type Filters struct {
	pairs []pair
}

type pair struct {
	field string
	value string
}

func NewFilters() *Filters {
	return &Filters{}
}

// Eq adds an equality predicate.
func (f *Filters) Eq(field string, value any) *Filters {
	f.pairs = append(f.pairs, pair{field, fmt.Sprintf("eq.%v", value)})
	return f
}

// ILike adds a case-insensitive substring predicate.
func (f *Filters) ILike(field, value string) *Filters {
	f.pairs = append(f.pairs, pair{field, fmt.Sprintf("ilike.%%%s%%", value)})
	return f
}

// Gte adds a greater-or-equal threshold predicate.
func (f *Filters) Gte(field string, value any) *Filters {
	f.pairs = append(f.pairs, pair{field, fmt.Sprintf("gte.%v", value)})
	return f
}

// Encode renders the predicates as a URL query string (sorted by field name).
func (f *Filters) Encode() string {
	if f == nil || len(f.pairs) == 0 {
		return ""
	}
	values := url.Values{}
	for _, p := range f.pairs {
		values.Add(p.field, p.value)
	}
	return values.Encode()
}

// RawFilter renders an already-decided predicate string for Patch/Delete,
// e.g. RawFilter("id", "eq", 7) -> "id=eq.7". Values are not escaped; callers
// pass identifiers they generated themselves.
func RawFilter(field, op string, value any) string {
	return fmt.Sprintf("%s=%s.%v", field, op, value)
}
