package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-decnum"
)

// This is a small experiment for watching Karatsuba multiplication split its
// operands. It prints one line per recursive call, indented by depth, and
// optionally dumps the full step structure with spew.
//
// Single digit products are the base case and are not shown.

const usage = `Karatsuba tracer

Usage: karatrace [-dump] [-maxdepth n] <a> <b>`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var dump bool
	var maxDepth int
	flag.BoolVar(&dump, "dump", false, "dump every step with spew")
	flag.IntVar(&maxDepth, "maxdepth", -1, "only show steps up to this depth (-1 == all)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("missing args")
	}

	a, err := decnum.IntFromString(args[0])
	if err != nil {
		return err
	}
	b, err := decnum.IntFromString(args[1])
	if err != nil {
		return err
	}

	result, stats := traceMul(os.Stdout, a, b, maxDepth, dump)
	fmt.Printf("%s * %s == %s\n", a, b, result)
	fmt.Printf("steps:%d levels:%d digits:%d\n", stats.Steps, stats.Levels, result.Len())
	return nil
}

// traceStats counts recursive calls (Steps) separately from the depth of the
// recursion (Levels).
type traceStats struct {
	Steps  int
	Levels int
}

func traceMul(w io.Writer, a, b decnum.Int, maxDepth int, dump bool) (decnum.Int, traceStats) {
	var stats traceStats
	result := a.MulTrace(b, func(step decnum.MulStep) {
		stats.Steps++
		if step.Depth+1 > stats.Levels {
			stats.Levels = step.Depth + 1
		}
		if maxDepth >= 0 && step.Depth > maxDepth {
			return
		}
		indent := strings.Repeat("  ", step.Depth)
		fmt.Fprintf(w, "%s%s * %s (mid %d): z0=%s z1=%s z2=%s -> %s\n",
			indent, step.A, step.B, step.Mid, step.Z0, step.Z1, step.Z2, step.Result)
		if dump {
			spew.Fdump(w, step)
		}
	})
	return result, stats
}
