// internal/category/index.go
// Package category derives the categorical axis domains (run labels and
// instance names) that the heatmap cells are positioned against.
package category

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Index is an ordered, duplicate-free list of categories. A category's
// position never changes once assigned.
type Index struct {
	values    []string
	positions map[string]int
}

// NewIndex returns an Index holding values in first-seen order.
func NewIndex(values ...string) *Index {
	ix := &Index{positions: make(map[string]int, len(values))}
	for _, v := range values {
		ix.Add(v)
	}
	return ix
}

// Add appends v if it is not present and returns its position. The boolean
// reports whether v was newly added.
func (ix *Index) Add(v string) (int, bool) {
	if ix.positions == nil {
		ix.positions = make(map[string]int)
	}
	if pos, ok := ix.positions[v]; ok {
		return pos, false
	}
	pos := len(ix.values)
	ix.values = append(ix.values, v)
	ix.positions[v] = pos
	return pos, true
}

// Position returns the position of v, or false when v is not indexed.
func (ix *Index) Position(v string) (int, bool) {
	if ix == nil {
		return 0, false
	}
	pos, ok := ix.positions[v]
	return pos, ok
}

func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.values)
}

// Values returns a copy of the categories in position order. It is never nil.
func (ix *Index) Values() []string {
	if ix == nil {
		return []string{}
	}
	return append(make([]string, 0, len(ix.values)), ix.values...)
}

// naturalSorted returns a new Index with the same categories ordered by a
// numeric-aware collation, so "graph-9" sorts before "graph-10".
func (ix *Index) naturalSorted() *Index {
	values := ix.Values()
	col := collate.New(language.Und, collate.Numeric)
	slices.SortStableFunc(values, func(a, b string) int {
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return NewIndex(values...)
}
