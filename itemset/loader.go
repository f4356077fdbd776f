package itemset

import (
	"bufio"
	"io"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/config"
)

// Loader reads a transaction collection from delimited text. Two encodings
// are understood:
//
//	item list      each row is the items of one transaction
//	binary matrix  a header row of item labels, then rows of 0/1 flags
//
// The encoding and the delimiter (comma or semicolon) are detected from the
// input unless set explicitly.
type Loader struct {
	Delim  string // "" means sniff from the first row
	Header string // "auto", "true", or "false"
	Limit  int    // max rows to read, 0 means all
}

func NewLoader(conf *config.Config) *Loader {
	return &Loader{
		Header: conf.Header,
		Limit:  conf.Limit,
	}
}

func (l *Loader) Load(input io.Reader) ([]*set.SortedSet, error) {
	lines, err := readLines(input)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []*set.SortedSet{}, nil
	}
	delim := l.Delim
	if delim == "" {
		delim = sniffDelim(lines[0])
	}
	if binaryMatrix(lines, delim) {
		return l.loadMatrix(lines, delim)
	}
	return l.loadItemLists(lines, delim)
}

func readLines(input io.Reader) ([]string, error) {
	lines := make([]string, 0, 10)
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func sniffDelim(first string) string {
	if strings.Contains(first, ";") {
		return ";"
	}
	return ","
}

// binaryMatrix reports whether the rows after the first hold only 0/1
// flags, which marks the header-plus-matrix encoding.
func binaryMatrix(lines []string, delim string) bool {
	if len(lines) < 2 || strings.TrimSpace(lines[1]) == "" {
		return false
	}
	for _, value := range strings.Split(lines[1], delim) {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if value != "0" && value != "1" {
			return false
		}
	}
	return true
}

func (l *Loader) loadMatrix(lines []string, delim string) ([]*set.SortedSet, error) {
	labels := splitRow(lines[0], delim)
	txs := make([]*set.SortedSet, 0, len(lines)-1)
	for row, line := range lines[1:] {
		if l.Limit > 0 && row >= l.Limit {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitRow(line, delim)
		if len(values) > len(labels) {
			errors.Logf("WARN", "row %d has %d columns, header has %d", row+1, len(values), len(labels))
		}
		tx := set.NewSortedSet(len(labels))
		for idx, value := range values {
			if value == "1" && idx < len(labels) {
				tx.Add(types.String(labels[idx]))
			}
		}
		if tx.Size() > 0 {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (l *Loader) loadItemLists(lines []string, delim string) ([]*set.SortedSet, error) {
	if l.Header == "true" && len(lines) > 0 {
		lines = lines[1:]
	}
	txs := make([]*set.SortedSet, 0, len(lines))
	for row, line := range lines {
		if l.Limit > 0 && row >= l.Limit {
			break
		}
		tx := set.NewSortedSet(10)
		for _, label := range splitRow(line, delim) {
			if label == "" {
				continue
			}
			tx.Add(types.String(label))
		}
		if tx.Size() > 0 {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func splitRow(line, delim string) []string {
	cols := strings.Split(line, delim)
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}
