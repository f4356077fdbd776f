package mine

import (
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/itemset"
)

// Closed returns the sub-map of frequent itemsets with no frequent proper
// superset of equal support. Supersets are drawn from the frequent map
// only, the conventional closure over frequent itemsets.
func Closed(frequent *itemset.Counts) *itemset.Counts {
	closed := itemset.NewCounts()
	bySize, sizes := partition(frequent)
	for _, size := range sizes {
		for _, items := range bySize[size] {
			support := frequent.Get(items)
			if !absorbed(items, support, frequent, bySize, sizes) {
				closed.Put(items, support)
			}
		}
	}
	return closed
}

// absorbed reports whether some strictly larger frequent itemset is a
// proper superset of items with the same support. The scan stops at the
// first witness.
func absorbed(items *set.SortedSet, support int, frequent *itemset.Counts, bySize map[int][]*set.SortedSet, sizes []int) bool {
	for _, larger := range sizes {
		if larger <= items.Size() {
			break
		}
		for _, other := range bySize[larger] {
			if items.ProperSubset(other) && frequent.Get(other) == support {
				return true
			}
		}
	}
	return false
}
