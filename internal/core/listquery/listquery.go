// Package listquery implements the list query pipeline over an in-memory
// collection: filter, then sort, then paginate
//
// Contract
// 1 Filter keeps records where every supplied filter equals the record field
//   under Unicode case folding; an absent record field never matches
// 2 Sort orders by a caller-derived token with a stable sort, so ties keep
//   the relative order of the filtered set
// 3 Paginate slices [(page-1)*size, page*size) clamped to the total; a page
//   past the end yields empty results, never an error
//
// The output envelope always satisfies pages == ceil(total/size) and
// 0 <= len(results) <= size
package listquery

import (
	"sort"
	"sync"

	"golang.org/x/text/cases"
)

// DefaultPage is the 1-based page used when the caller passes zero
const DefaultPage = 1

// DefaultSize is the page size used when the caller passes zero
const DefaultSize = 10

// Match is one case-insensitive exact-match constraint
// An empty Want is no constraint at all
type Match[T any] struct {
	Want  string
	Field func(T) string
}

// Params controls a single run of the pipeline
// SortToken derives the comparison token per record; nil skips sorting
type Params[T any] struct {
	Page      int
	Size      int
	SortToken func(T) string
	Desc      bool
	Filters   []Match[T]
}

// Result is the paginated envelope produced by Run
type Result[T any] struct {
	Total   int
	Page    int
	Size    int
	Pages   int
	Results []T
}

// pool of fold casers; a Caser is cheap but not safe for concurrent use
var caserPool = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

// Fold returns the Unicode case-folded form of s
func Fold(s string) string {
	if s == "" {
		return ""
	}
	c := caserPool.Get().(*cases.Caser)
	out := c.String(s)
	caserPool.Put(c)
	return out
}

// Run executes filter, sort, paginate over all and returns the envelope
// The input slice is never mutated; Results is a fresh slice
func Run[T any](all []T, p Params[T]) Result[T] {
	// fold filter wants once, drop empty constraints
	type folded struct {
		want  string
		field func(T) string
	}
	var active []folded
	for _, m := range p.Filters {
		if m.Want == "" || m.Field == nil {
			continue
		}
		active = append(active, folded{want: Fold(m.Want), field: m.Field})
	}

	filtered := make([]T, 0, len(all))
outer:
	for _, it := range all {
		for _, m := range active {
			v := m.field(it)
			if v == "" || Fold(v) != m.want {
				continue outer
			}
		}
		filtered = append(filtered, it)
	}

	if p.SortToken != nil {
		// stable so equal tokens keep their filtered-set order
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := p.SortToken(filtered[i]), p.SortToken(filtered[j])
			if p.Desc {
				return a > b
			}
			return a < b
		})
	}

	page, size := p.Page, p.Size
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultSize
	}

	total := len(filtered)
	pages := (total + size - 1) / size

	lo := (page - 1) * size
	hi := lo + size
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	return Result[T]{
		Total:   total,
		Page:    page,
		Size:    size,
		Pages:   pages,
		Results: append([]T(nil), filtered[lo:hi]...),
	}
}
