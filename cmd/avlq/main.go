package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/e11jah/avl"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

func main() {
	intervals := pflag.StringSliceP("interval", "i", nil, "Interval to store, as start:end (or a single value for a point). Repeat or comma separate to store several.")
	overlaps := pflag.StringP("overlaps", "o", "", "Print every stored interval overlapping start:end.")
	within := pflag.StringP("within", "w", "", "Print every stored interval containing start:end.")
	stab := pflag.StringP("stab", "s", "", "Print every stored interval containing this value.")
	search := pflag.String("search", "", "Report whether start:end is stored.")
	verbose := pflag.Bool("verbose", false, "Print the stored intervals and tree height before querying.")

	pflag.Parse()

	if len(*intervals) == 0 {
		pflag.Usage()
		os.Exit(-1)
	}

	if err := run(*intervals, *overlaps, *within, *stab, *search, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "avlq: %s\n", err)
		os.Exit(1)
	}
}

func run(intervals []string, overlaps, within, stab, search string, verbose bool) error {
	tree := avl.NewIntervalTree[int64]()
	for _, s := range intervals {
		iv, err := parseInterval(s)
		if err != nil {
			return err
		}
		tree.Insert(iv)
	}

	if verbose {
		fmt.Printf("Loaded %d intervals into interval tree (height %d)\n", tree.Len(), tree.Height())
		for _, iv := range tree.Keys(avl.InOrder) {
			fmt.Printf("  %s\n", iv)
		}
	}

	if overlaps != "" {
		q, err := parseInterval(overlaps)
		if err != nil {
			return err
		}
		printResult("overlaps", q, tree.Overlaps(q))
	}

	if within != "" {
		q, err := parseInterval(within)
		if err != nil {
			return err
		}
		printResult("within", q, tree.Within(q))
	}

	if stab != "" {
		p, err := strconv.ParseInt(stab, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "could not parse stab value '%s'", stab)
		}
		printResult("stab", avl.Point(p), tree.Stab(p))
	}

	if search != "" {
		q, err := parseInterval(search)
		if err != nil {
			return err
		}
		fmt.Printf("search %s: %t\n", q, tree.Contains(q))
	}

	return nil
}

func printResult(op string, q avl.Interval[int64], res []avl.Interval[int64]) {
	fmt.Printf("%s %s: %d found\n", op, q, len(res))
	for _, iv := range res {
		fmt.Printf("  %s\n", iv)
	}
}

// parseInterval reads "start:end" or a single value.
func parseInterval(s string) (avl.Interval[int64], error) {
	startStr, endStr, found := strings.Cut(s, ":")
	if !found {
		endStr = startStr
	}

	start, err := strconv.ParseInt(strings.TrimSpace(startStr), 10, 64)
	if err != nil {
		return avl.Interval[int64]{}, errors.Wrapf(err, "could not parse interval start '%s'", s)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(endStr), 10, 64)
	if err != nil {
		return avl.Interval[int64]{}, errors.Wrapf(err, "could not parse interval end '%s'", s)
	}

	iv, err := avl.NewInterval(start, end)
	if err != nil {
		return avl.Interval[int64]{}, errors.Wrapf(err, "invalid interval '%s'", s)
	}
	return iv, nil
}
