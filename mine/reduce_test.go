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

func counts(pairs ...pair) *itemset.Counts {
	c := itemset.NewCounts()
	for _, p := range pairs {
		c.Put(p.items, p.count)
	}
	return c
}

func TestClosedScenarioA(x *testing.T) {
	t := assert.New(x)
	frequent := Apriori(scenarioA(), 0.5)
	// {c}:2 is absorbed by {b,c}:2; everything else keeps its support
	assertCounts(t, Closed(frequent), []pair{
		{tx("a"), 3},
		{tx("b"), 3},
		{tx("a", "b"), 2},
		{tx("b", "c"), 2},
	})
}

func TestMaximalScenarioA(x *testing.T) {
	t := assert.New(x)
	frequent := Apriori(scenarioA(), 0.5)
	maximal := Maximal(frequent)
	expected := set.FromSlice([]types.Hashable{
		tx("a", "b"),
		tx("b", "c"),
	})
	t.Len(maximal, 2)
	for _, items := range maximal {
		t.True(expected.Has(items), "%v not in %v", items, expected)
	}
}

func TestClosedEqualSupportChain(x *testing.T) {
	t := assert.New(x)
	frequent := counts(
		pair{tx("a"), 2},
		pair{tx("b"), 2},
		pair{tx("a", "b"), 2},
	)
	// both singletons share the superset's support, only {a,b} is closed
	assertCounts(t, Closed(frequent), []pair{
		{tx("a", "b"), 2},
	})
}

func TestClosedDistinctSupports(x *testing.T) {
	t := assert.New(x)
	frequent := counts(
		pair{tx("a"), 3},
		pair{tx("a", "b"), 2},
	)
	assertCounts(t, Closed(frequent), []pair{
		{tx("a"), 3},
		{tx("a", "b"), 2},
	})
}

func TestMaximalOnlyLargest(x *testing.T) {
	t := assert.New(x)
	frequent := counts(
		pair{tx("a"), 3},
		pair{tx("b"), 3},
		pair{tx("a", "b"), 2},
	)
	maximal := Maximal(frequent)
	t.Len(maximal, 1)
	t.True(maximal[0].Equals(tx("a", "b")))
}

func TestMaximalIncomparable(x *testing.T) {
	t := assert.New(x)
	frequent := counts(
		pair{tx("a"), 2},
		pair{tx("b"), 2},
		pair{tx("c"), 2},
		pair{tx("a", "b"), 2},
	)
	maximal := Maximal(frequent)
	expected := set.FromSlice([]types.Hashable{
		tx("a", "b"),
		tx("c"),
	})
	t.Len(maximal, 2)
	for _, items := range maximal {
		t.True(expected.Has(items), "%v not in %v", items, expected)
	}
}

func TestReduceEmptyMap(x *testing.T) {
	t := assert.New(x)
	frequent := itemset.NewCounts()
	t.Equal(0, Closed(frequent).Size())
	t.Len(Maximal(frequent), 0)
}
