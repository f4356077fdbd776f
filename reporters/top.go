package reporters

import (
	"fmt"
	"io"
	"sort"
)

import (
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/itemset"
)

type row struct {
	items *set.SortedSet
	count int
}

// Top collects itemsets and on Close prints the highest ranked limit of
// them with support percentages. The default order is support count
// descending then cardinality descending; BySize flips that, which is the
// customary presentation for maximal itemsets.
type Top struct {
	f      io.Writer
	fmtr   itemset.Formatter
	title  string
	limit  int
	ntxs   int
	BySize bool
	rows   []row
}

func NewTop(f io.Writer, title string, limit, ntxs int) *Top {
	return &Top{
		f:     f,
		title: title,
		limit: limit,
		ntxs:  ntxs,
		rows:  make([]row, 0, 10),
	}
}

func (r *Top) Report(items *set.SortedSet, count int) error {
	r.rows = append(r.rows, row{items: items, count: count})
	return nil
}

func (r *Top) Close() error {
	sort.SliceStable(r.rows, func(i, j int) bool {
		a, b := r.rows[i], r.rows[j]
		if r.BySize {
			if a.items.Size() != b.items.Size() {
				return a.items.Size() > b.items.Size()
			}
			return a.count > b.count
		}
		if a.count != b.count {
			return a.count > b.count
		}
		return a.items.Size() > b.items.Size()
	})
	limit := r.limit
	if limit > len(r.rows) {
		limit = len(r.rows)
	}
	_, err := fmt.Fprintf(r.f, "TOP %d %v\n", limit, r.title)
	if err != nil {
		return err
	}
	for i, row := range r.rows[:limit] {
		_, err = fmt.Fprintf(r.f, "  %2d. %v\n      Support: %v\n",
			i+1, r.fmtr.FormatItemset(row.items), r.fmtr.FormatSupport(row.count, r.ntxs))
		if err != nil {
			return err
		}
	}
	return nil
}
