package mine

import (
	"github.com/timtadh/data-structures/exc"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/itemset"
)

// Support counts, for each candidate itemset, the transactions of which it
// is a subset. Every candidate gets an entry, 0 when it never occurs.
func Support(txs []*set.SortedSet, candidates []*set.SortedSet) *itemset.Counts {
	counts := itemset.NewCounts()
	for _, candidate := range candidates {
		counts.Put(candidate, 0)
	}
	for _, tx := range txs {
		for _, candidate := range candidates {
			if candidate.Subset(tx) {
				counts.Put(candidate, counts.Get(candidate)+1)
			}
		}
	}
	return counts
}

// Candidates generates the size k candidate itemsets from the size k-1
// frequent itemsets by self-join: the union of a pair qualifies when it has
// exactly k items (the pair shares k-2 items) and every one of its k-1
// sized subsets is itself frequent. Each qualifying union appears once no
// matter how many pairs produce it.
func Candidates(frequent []*set.SortedSet, k int) []*set.SortedSet {
	prev := set.NewSortedSet(len(frequent))
	for _, items := range frequent {
		prev.Add(items)
	}
	seen := set.NewSortedSet(len(frequent))
	candidates := make([]*set.SortedSet, 0, len(frequent))
	for i := 0; i < len(frequent); i++ {
		for j := i + 1; j < len(frequent); j++ {
			u, err := frequent[i].Union(frequent[j])
			exc.ThrowOnError(err)
			joined := u.(*set.SortedSet)
			if joined.Size() != k || seen.Has(joined) {
				continue
			}
			if subsetsFrequent(joined, prev) {
				seen.Add(joined)
				candidates = append(candidates, joined)
			}
		}
	}
	return candidates
}

// subsetsFrequent applies the downward closure pre-filter: every subset of
// joined one item smaller must be in prev.
func subsetsFrequent(joined, prev *set.SortedSet) bool {
	for item, next := joined.Items()(); next != nil; item, next = next() {
		subset := joined.Copy()
		subset.Delete(item)
		if !prev.Has(subset) {
			return false
		}
	}
	return true
}

// Apriori runs the level-wise search for frequent itemsets. Itemsets with
// support count at or above int(minSupport * len(txs)) are kept. The
// returned map covers every level mined; by construction each key's
// non-empty proper subsets are also keys.
//
// minSupport outside (0, 1] is a caller-side validation concern; out of
// range values degrade to an everything-frequent or nothing-frequent
// threshold without complaint.
func Apriori(txs []*set.SortedSet, minSupport float64) *itemset.Counts {
	minCount := int(minSupport * float64(len(txs)))
	frequent := itemset.NewCounts()

	level := make([]*set.SortedSet, 0, 10)
	for item, next := itemset.UniqueItems(txs).Items()(); next != nil; item, next = next() {
		level = append(level, set.FromSlice([]types.Hashable{item}))
	}

	for k := 2; len(level) > 0; k++ {
		counts := Support(txs, level)
		kept := make([]*set.SortedSet, 0, len(level))
		counts.Do(func(items *set.SortedSet, count int) error {
			if count >= minCount {
				frequent.Put(items, count)
				kept = append(kept, items)
			}
			return nil
		})
		if len(kept) == 0 {
			break
		}
		level = Candidates(kept, k)
	}
	return frequent
}
