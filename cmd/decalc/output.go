package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/shabbyrobe/go-decnum"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/term"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	negColor  = color.New(color.FgYellow)
	exprColor = color.New(color.Faint)

	// fatalColor is only ever written to stderr.
	fatalColor = color.New(color.FgRed, color.Bold)
)

// colorEnabled reports whether output written to w should be coloured under
// the --color mode. "auto" enables colour only when w is a terminal.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// setupColor applies the --color mode to stdout and stderr separately.
func setupColor(mode string, stdout, stderr io.Writer) {
	color.NoColor = !colorEnabled(mode, stdout)
	if colorEnabled(mode, stderr) {
		fatalColor.EnableColor()
	} else {
		fatalColor.DisableColor()
	}
}

func writeResults(w io.Writer, format string, showExpr bool, results []result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil

	case "msgpack":
		enc := msgpack.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil

	case "text":
		for _, r := range results {
			if err := writeText(w, showExpr, r); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unsupported format %q", format)
}

func writeText(w io.Writer, showExpr bool, r result) (err error) {
	if showExpr {
		if _, err = exprColor.Fprintf(w, "%s = ", r.Expr); err != nil {
			return err
		}
	}
	switch {
	case r.Err != "":
		_, err = errColor.Fprintln(w, r.String())
	case r.Value != nil && r.Value.Sign() == decnum.Negative:
		_, err = negColor.Fprintln(w, r.String())
	default:
		_, err = fmt.Fprintln(w, r.String())
	}
	return err
}
