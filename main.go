package main

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
	"fmt"
	"os"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/cmd"
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/config"
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/itemset"
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/mine"
	"github.com/migueldlfuentem/maximal-closed-frequent-itemsets/reporters"
)

func init() {
	cmd.UsageMessage = "itemsets --help"
	cmd.ExtendedMessage = `
itemsets - mine frequent, closed, and maximal itemsets from transactions

$ itemsets -s <float> [options] <input-path>

Note: You may either supply the <input-path> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Note: The input may be in item-list form (each row lists the items of one
      transaction) or binary-matrix form (a header row of item labels then
      rows of 0/1 flags). The form and the delimiter (comma or semicolon)
      are detected automatically.

Options
    -h, --help                view this message
    -s, --min-support=<float> minimum support as a fraction in (0, 1]
                              (default 0.05)
    -l, --limit=<int>         maximum number of transactions to load
                              (default all)
    -t, --top=<int>           number of itemsets to display per listing
                              (default 20)
    --header=<choice>         whether the input has a header row:
                              'true', 'false', or 'auto' (default auto)
`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hs:l:t:",
		[]string{"help", "min-support=", "limit=", "top=", "header="},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	conf := &config.Config{
		MinSupport: .05,
		Top:        20,
		Header:     "auto",
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-s", "--min-support":
			conf.MinSupport = cmd.ParseFloat(oa.Arg())
		case "-l", "--limit":
			conf.Limit = cmd.ParseInt(oa.Arg())
		case "-t", "--top":
			conf.Top = cmd.ParseInt(oa.Arg())
		case "--header":
			conf.Header = oa.Arg()
			if conf.Header != "auto" && conf.Header != "true" && conf.Header != "false" {
				fmt.Fprintf(os.Stderr, "Unknown header choice '%v'\n", conf.Header)
				cmd.Usage(cmd.ErrorCodes["opts"])
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Expected exactly one input path")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	// The engine performs no bounds validation of its own.
	if conf.MinSupport <= 0 || conf.MinSupport > 1 {
		fmt.Fprintln(os.Stderr, "min-support must be in (0, 1]")
		cmd.Usage(cmd.ErrorCodes["badfloat"])
	}

	inputPath := cmd.AssertFileExists(args[0])
	reader, closeall := cmd.Input(inputPath)
	txs, err := itemset.NewLoader(conf).Load(reader)
	closeall()
	if err != nil {
		errors.Logf("ERROR", "could not load %v: %v", inputPath, err)
		return 1
	}

	fmt.Printf("Loading transactions from: %v\n", inputPath)
	fmt.Printf("  - Transactions loaded: %d\n", len(txs))
	fmt.Printf("  - Unique items: %d\n", itemset.UniqueItems(txs).Size())
	fmt.Printf("  - Min support: %v (%d transactions)\n\n",
		conf.MinSupport, conf.MinSupportCount(len(txs)))

	result := mine.NewMiner(conf).Mine(txs)
	return report(conf, result)
}

func report(conf *config.Config, result *mine.Result) int {
	out := os.Stdout

	frequent := &reporters.Chain{Reporters: []reporters.Reporter{
		reporters.NewCount(out, "Frequent itemsets"),
		reporters.NewTop(out, "FREQUENT ITEMSETS (by support)", conf.Top, result.Transactions),
	}}
	err := result.Frequent.Do(frequent.Report)
	if err == nil {
		err = frequent.Close()
	}
	if err != nil {
		errors.Logf("ERROR", "reporting frequent itemsets: %v", err)
		return 1
	}

	closed := &reporters.Chain{Reporters: []reporters.Reporter{
		reporters.NewCount(out, "Closed itemsets"),
		reporters.NewTop(out, "CLOSED ITEMSETS (by support)", conf.Top, result.Transactions),
	}}
	err = result.Closed.Do(closed.Report)
	if err == nil {
		err = closed.Close()
	}
	if err != nil {
		errors.Logf("ERROR", "reporting closed itemsets: %v", err)
		return 1
	}

	maximalTop := reporters.NewTop(out, "MAXIMAL ITEMSETS (by size, then support)", conf.Top, result.Transactions)
	maximalTop.BySize = true
	maximal := &reporters.Chain{Reporters: []reporters.Reporter{
		reporters.NewCount(out, "Maximal itemsets"),
		maximalTop,
	}}
	for _, items := range result.Maximal {
		err = maximal.Report(items, result.Frequent.Get(items))
		if err != nil {
			break
		}
	}
	if err == nil {
		err = maximal.Close()
	}
	if err != nil {
		errors.Logf("ERROR", "reporting maximal itemsets: %v", err)
		return 1
	}

	summary(out, result)
	return 0
}

func summary(out *os.File, result *mine.Result) {
	nf := result.Frequent.Size()
	nc := result.Closed.Size()
	nm := len(result.Maximal)
	fmt.Fprintf(out, "\nSUMMARY\n")
	fmt.Fprintf(out, "  - Frequent itemsets: %d\n", nf)
	if nf == 0 {
		fmt.Fprintf(out, "  - Closed itemsets:   %d\n", nc)
		fmt.Fprintf(out, "  - Maximal itemsets:  %d\n", nm)
		fmt.Fprintf(out, "\n  No frequent itemsets found. Try lowering min-support.\n")
		return
	}
	fmt.Fprintf(out, "  - Closed itemsets:   %d (%.1f%% of frequent)\n",
		nc, float64(nc)/float64(nf)*100)
	fmt.Fprintf(out, "  - Maximal itemsets:  %d (%.1f%% of frequent)\n",
		nm, float64(nm)/float64(nf)*100)
	fmt.Fprintf(out, "\n  %d <= %d <= %d (maximal <= closed <= frequent)\n", nm, nc, nf)
}
