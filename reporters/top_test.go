package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"bytes"
	"strings"
)

import (
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/itemset"
)

func TestTopOrdersBySupport(x *testing.T) {
	t := assert.New(x)
	var buf bytes.Buffer
	top := NewTop(&buf, "FREQUENT", 2, 4)
	t.Nil(top.Report(itemset.FromLabels("a"), 2))
	t.Nil(top.Report(itemset.FromLabels("b"), 4))
	t.Nil(top.Report(itemset.FromLabels("a", "b"), 2))
	t.Nil(top.Close())
	out := buf.String()
	t.True(strings.HasPrefix(out, "TOP 2 FREQUENT\n"), "unexpected header: %q", out)
	t.Contains(out, "{b}")
	t.Contains(out, "4 (100.0%)")
	// ties broken by size, {a,b} outranks {a} and {a} falls off the list
	t.Contains(out, "{a, b}")
	t.NotContains(out, "{a}\n")
}

func TestTopOrdersBySize(x *testing.T) {
	t := assert.New(x)
	var buf bytes.Buffer
	top := NewTop(&buf, "MAXIMAL", 10, 4)
	top.BySize = true
	t.Nil(top.Report(itemset.FromLabels("c"), 4))
	t.Nil(top.Report(itemset.FromLabels("a", "b"), 2))
	t.Nil(top.Close())
	out := buf.String()
	t.True(strings.Index(out, "{a, b}") < strings.Index(out, "{c}"),
		"larger itemset should list first: %q", out)
}

func TestChainAndCount(x *testing.T) {
	t := assert.New(x)
	var buf bytes.Buffer
	chain := &Chain{Reporters: []Reporter{
		NewCount(&buf, "Frequent itemsets"),
		NewTop(&buf, "FREQUENT", 1, 2),
	}}
	t.Nil(chain.Report(itemset.FromLabels("a"), 1))
	t.Nil(chain.Report(itemset.FromLabels("b"), 2))
	t.Nil(chain.Close())
	t.Contains(buf.String(), "Frequent itemsets found: 2")
	t.Contains(buf.String(), "TOP 1 FREQUENT")
}
