package mine

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/itemset"
)

func market() []*set.SortedSet {
	return []*set.SortedSet{
		tx("beer", "bread", "milk"),
		tx("beer", "bread"),
		tx("bread", "milk"),
		tx("beer", "milk"),
		tx("bread", "milk", "eggs"),
		tx("beer", "bread", "milk", "eggs"),
		tx("bread"),
		tx("milk", "eggs"),
		tx("beer", "milk", "eggs"),
	}
}

func TestDownwardClosure(x *testing.T) {
	t := assert.New(x)
	frequent := Apriori(market(), 0.3)
	frequent.Do(func(items *set.SortedSet, count int) error {
		if items.Size() <= 1 {
			return nil
		}
		for item, next := items.Items()(); next != nil; item, next = next() {
			subset := items.Copy()
			subset.Delete(item)
			t.True(frequent.Has(subset), "subset %v of %v not frequent", subset, items)
		}
		return nil
	})
}

func TestMonotoneThreshold(x *testing.T) {
	t := assert.New(x)
	loose := Apriori(market(), 0.3)
	tight := Apriori(market(), 0.5)
	t.True(tight.Size() <= loose.Size())
	tight.Do(func(items *set.SortedSet, count int) error {
		t.True(loose.Has(items), "%v frequent at 0.5 but not at 0.3", items)
		t.Equal(loose.Get(items), count, "counts disagree for %v", items)
		return nil
	})
}

func TestCardinalityOrdering(x *testing.T) {
	t := assert.New(x)
	for _, minSupport := range []float64{0.2, 0.3, 0.5, 0.8} {
		frequent := Apriori(market(), minSupport)
		closed := Closed(frequent)
		maximal := Maximal(frequent)
		t.True(len(maximal) <= closed.Size(),
			"|maximal| %d > |closed| %d at %v", len(maximal), closed.Size(), minSupport)
		t.True(closed.Size() <= frequent.Size(),
			"|closed| %d > |frequent| %d at %v", closed.Size(), frequent.Size(), minSupport)
	}
}

func TestMaximalAreClosed(x *testing.T) {
	t := assert.New(x)
	frequent := Apriori(market(), 0.3)
	closed := Closed(frequent)
	for _, items := range Maximal(frequent) {
		t.True(closed.Has(items), "maximal %v is not closed", items)
	}
}

func TestSupportRecount(x *testing.T) {
	t := assert.New(x)
	txs := market()
	frequent := Apriori(txs, 0.3)
	frequent.Do(func(items *set.SortedSet, count int) error {
		recount := 0
		for _, tx := range txs {
			if items.Subset(tx) {
				recount++
			}
		}
		t.Equal(recount, count, "recorded count for %v disagrees with recount", items)
		return nil
	})
}

func TestIdempotence(x *testing.T) {
	t := assert.New(x)
	a := Apriori(market(), 0.3)
	b := Apriori(market(), 0.3)
	t.Equal(a.Size(), b.Size())
	a.Do(func(items *set.SortedSet, count int) error {
		t.True(b.Has(items))
		t.Equal(count, b.Get(items))
		return nil
	})
	ca, cb := Closed(a), Closed(b)
	t.Equal(ca.Size(), cb.Size())
	ca.Do(func(items *set.SortedSet, count int) error {
		t.True(cb.Has(items))
		t.Equal(count, cb.Get(items))
		return nil
	})
	ma := set.NewSortedSet(10)
	for _, items := range Maximal(a) {
		ma.Add(items)
	}
	mb := set.NewSortedSet(10)
	for _, items := range Maximal(b) {
		mb.Add(items)
	}
	t.True(ma.Equals(mb), "%v != %v", ma, mb)
}

func TestSingletonSupports(x *testing.T) {
	t := assert.New(x)
	txs := market()
	frequent := Apriori(txs, 0.2)
	for item, next := itemset.UniqueItems(txs).Items()(); next != nil; item, next = next() {
		single := set.FromSlice([]types.Hashable{item})
		t.True(frequent.Has(single), "singleton %v missing at min support 0.2", single)
	}
}
