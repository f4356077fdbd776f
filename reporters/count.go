package reporters

import (
	"fmt"
	"io"
)

import (
	"github.com/timtadh/data-structures/set"
)

type Count struct {
	f     io.Writer
	name  string
	count int
}

func NewCount(f io.Writer, name string) *Count {
	return &Count{
		f:    f,
		name: name,
	}
}

func (r *Count) Report(items *set.SortedSet, count int) error {
	r.count++
	return nil
}

func (r *Count) Close() error {
	_, err := fmt.Fprintf(r.f, "  - %v found: %d\n", r.name, r.count)
	return err
}
