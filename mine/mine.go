package mine

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/config"
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/itemset"
)

// Result holds the three views of one mining run over a transaction
// collection. All are derived from the same frequent map; for any
// non-empty frequent map len(Maximal) <= Closed.Size() <= Frequent.Size().
type Result struct {
	Transactions int
	Frequent     *itemset.Counts
	Closed       *itemset.Counts
	Maximal      []*set.SortedSet
}

type Miner struct {
	Config *config.Config
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{Config: conf}
}

// Mine runs the full pipeline: level-wise frequent itemset search, then
// the closed and maximal reductions of the frequent map. It owns no state
// across invocations; concurrent calls are safe with distinct inputs.
func (m *Miner) Mine(txs []*set.SortedSet) *Result {
	frequent := Apriori(txs, m.Config.MinSupport)
	return &Result{
		Transactions: len(txs),
		Frequent:     frequent,
		Closed:       Closed(frequent),
		Maximal:      Maximal(frequent),
	}
}
