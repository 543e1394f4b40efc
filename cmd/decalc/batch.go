package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Operands can be very long, so lines may be far larger than bufio's default.
const maxLineSize = 64 << 20

type exprLine struct {
	Source string
	Line   int
	Expr   string
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	var (
		format    string
		jobs      int
		keepGoing bool
		showExpr  bool
	)

	cmd := &cobra.Command{
		Use:   "batch [file...]",
		Short: "Evaluate one expression per line, in parallel",
		Long: `Evaluate one expression per line from each file, or from stdin if no
files are given. Blank lines and lines starting with '#' are skipped.
Results are written in input order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = root.cfg.Output.Format
			}
			if !cmd.Flags().Changed("jobs") {
				jobs = root.cfg.Batch.Jobs
			}
			if !cmd.Flags().Changed("keep-going") {
				keepGoing = root.cfg.Batch.KeepGoing
			}

			var lines []exprLine
			if len(args) == 0 {
				read, err := readExprs("<stdin>", cmd.InOrStdin())
				if err != nil {
					return err
				}
				lines = read
			}
			for _, path := range args {
				read, err := readExprFile(path)
				if err != nil {
					return err
				}
				lines = append(lines, read...)
			}

			start := time.Now()
			results, err := runBatch(cmd.Context(), lines, jobs, keepGoing)
			if err != nil {
				return err
			}
			root.logger.Printf("evaluated %d expressions in %s", len(results), time.Since(start))

			return writeResults(cmd.OutOrStdout(), format, showExpr, results)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json|msgpack)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "maximum parallel evaluations (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "record failing lines instead of stopping")
	cmd.Flags().BoolVar(&showExpr, "show-expr", false, "prefix text output with the expression")
	return cmd
}

func readExprFile(path string) ([]exprLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readExprs(path, f)
}

func readExprs(source string, r io.Reader) ([]exprLine, error) {
	var out []exprLine

	scn := bufio.NewScanner(r)
	scn.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scn.Scan() {
		line++
		text := strings.TrimSpace(scn.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, exprLine{Source: source, Line: line, Expr: text})
	}
	if err := scn.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return out, nil
}

// runBatch evaluates lines concurrently. Each goroutine writes only its own
// index of the result slice, so results come back in input order.
func runBatch(ctx context.Context, lines []exprLine, jobs int, keepGoing bool) ([]result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]result, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, ln := range lines {
		i, ln := i, ln
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := evaluate(ln.Expr)
			if err != nil {
				if !keepGoing {
					return fmt.Errorf("%s:%d: %w", ln.Source, ln.Line, err)
				}
				res.Err = err.Error()
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
