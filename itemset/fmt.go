package itemset

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
)

type Formatter struct{}

// FormatItemset renders an itemset as "{a, b, c}" with labels in canonical
// order.
func (f Formatter) FormatItemset(items *set.SortedSet) string {
	return "{" + strings.Join(Labels(items), ", ") + "}"
}

// FormatSupport renders a support count with its ratio of the transaction
// collection, eg. "3 (75.0%)".
func (f Formatter) FormatSupport(count, ntxs int) string {
	if ntxs == 0 {
		return fmt.Sprintf("%d", count)
	}
	return fmt.Sprintf("%d (%.1f%%)", count, float64(count)/float64(ntxs)*100)
}
