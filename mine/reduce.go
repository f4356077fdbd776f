package mine

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/itemset"
)

// partition groups the keys of the frequent map by cardinality and returns
// the observed cardinalities largest first. Both reducers scan only
// partitions of strictly larger cardinality when searching for a
// disqualifying superset, so itemsets of the maximum size never scan.
func partition(frequent *itemset.Counts) (bySize map[int][]*set.SortedSet, sizes []int) {
	bySize = make(map[int][]*set.SortedSet)
	frequent.Do(func(items *set.SortedSet, count int) error {
		bySize[items.Size()] = append(bySize[items.Size()], items)
		return nil
	})
	sizes = make([]int, 0, len(bySize))
	for size := range bySize {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return bySize, sizes
}
