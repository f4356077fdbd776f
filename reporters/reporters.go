package reporters

import (
	"github.com/timtadh/data-structures/set"
)

// Reporter consumes mined itemsets one at a time. Close flushes whatever
// the reporter accumulated.
type Reporter interface {
	Report(items *set.SortedSet, count int) error
	Close() error
}

type Chain struct {
	Reporters []Reporter
}

func (r *Chain) Report(items *set.SortedSet, count int) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(items, count)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
