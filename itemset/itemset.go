package itemset

import (
	"github.com/timtadh/data-structures/exc"
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// FromLabels constructs the canonical sorted set representation of an
// itemset (or transaction). Duplicate labels collapse.
func FromLabels(labels ...string) *set.SortedSet {
	s := set.NewSortedSet(len(labels))
	for _, label := range labels {
		s.Add(types.String(label))
	}
	return s
}

// Labels returns the item labels of s in canonical (sorted) order.
func Labels(s *set.SortedSet) []string {
	labels := make([]string, 0, s.Size())
	for item, next := s.Items()(); next != nil; item, next = next() {
		labels = append(labels, string(item.(types.String)))
	}
	return labels
}

// UniqueItems collects the distinct items appearing across the transactions.
func UniqueItems(txs []*set.SortedSet) *set.SortedSet {
	items := set.NewSortedSet(10)
	for _, tx := range txs {
		for item, next := tx.Items()(); next != nil; item, next = next() {
			items.Add(item)
		}
	}
	return items
}

// Counts maps itemsets to their support counts. Itemsets are compared by
// value (same members, any construction order, same key).
type Counts struct {
	tbl *hashtable.LinearHash
}

func NewCounts() *Counts {
	return &Counts{tbl: hashtable.NewLinearHash()}
}

func (c *Counts) Size() int {
	return c.tbl.Size()
}

func (c *Counts) Has(items *set.SortedSet) bool {
	return c.tbl.Has(items)
}

func (c *Counts) Put(items *set.SortedSet, count int) {
	exc.ThrowOnError(c.tbl.Put(items, count))
}

// Get returns the count for items. The itemset must be a key of the map.
func (c *Counts) Get(items *set.SortedSet) int {
	count, err := c.tbl.Get(items)
	exc.ThrowOnError(err)
	return count.(int)
}

// Do iterates the (itemset, count) pairs, stopping at the first error.
func (c *Counts) Do(do func(items *set.SortedSet, count int) error) error {
	for k, v, next := c.tbl.Iterate()(); next != nil; k, v, next = next() {
		err := do(k.(*set.SortedSet), v.(int))
		if err != nil {
			return err
		}
	}
	return nil
}

// Itemsets returns the keys of the map.
func (c *Counts) Itemsets() []*set.SortedSet {
	itemsets := make([]*set.SortedSet, 0, c.tbl.Size())
	for k, next := c.tbl.Keys()(); next != nil; k, next = next() {
		itemsets = append(itemsets, k.(*set.SortedSet))
	}
	return itemsets
}
