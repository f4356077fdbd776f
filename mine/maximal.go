package mine

import (
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/itemset"
)

// Maximal returns the frequent itemsets with no frequent proper superset
// at all. Itemsets of the maximum observed cardinality are maximal by
// definition.
func Maximal(frequent *itemset.Counts) []*set.SortedSet {
	maximal := make([]*set.SortedSet, 0, 10)
	bySize, sizes := partition(frequent)
	for _, size := range sizes {
		for _, items := range bySize[size] {
			if !extendable(items, bySize, sizes) {
				maximal = append(maximal, items)
			}
		}
	}
	return maximal
}

// extendable reports whether any strictly larger frequent itemset is a
// proper superset of items. Unlike the closure test the support of the
// superset is irrelevant, frequent membership alone disqualifies.
func extendable(items *set.SortedSet, bySize map[int][]*set.SortedSet, sizes []int) bool {
	for _, larger := range sizes {
		if larger <= items.Size() {
			break
		}
		for _, other := range bySize[larger] {
			if items.ProperSubset(other) {
				return true
			}
		}
	}
	return false
}
