package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shabbyrobe/go-decnum"
)

// result is the outcome of evaluating one expression. Exactly one of Value
// and Text is set for a successful evaluation.
type result struct {
	Expr  string      `json:"expr" msgpack:"expr"`
	Value *decnum.Int `json:"value,omitempty" msgpack:"value,omitempty"`
	Text  string      `json:"text,omitempty" msgpack:"text,omitempty"`
	Err   string      `json:"error,omitempty" msgpack:"error,omitempty"`
}

func (r result) String() string {
	switch {
	case r.Err != "":
		return "error: " + r.Err
	case r.Value != nil:
		return r.Value.String()
	}
	return r.Text
}

func parseOperand(s string) (decnum.Int, error) {
	v, err := decnum.IntFromString(s)
	if err != nil {
		return v, fmt.Errorf("operand %q: %w", s, err)
	}
	return v, nil
}

// evaluate parses and evaluates a single expression of the form "A op B" or
// "fn A".
func evaluate(expr string) (result, error) {
	res := result{Expr: strings.TrimSpace(expr)}
	fields := strings.Fields(expr)

	switch len(fields) {
	case 2:
		a, err := parseOperand(fields[1])
		if err != nil {
			return res, err
		}
		switch strings.ToLower(fields[0]) {
		case "neg":
			v := a.Neg()
			res.Value = &v
		case "abs":
			v := a.Abs()
			res.Value = &v
		case "len":
			res.Text = strconv.Itoa(a.Len())
		case "hash":
			res.Text = fmt.Sprintf("0x%016x", a.Hash())
		case "sign":
			res.Text = a.Sign().String()
		default:
			return res, fmt.Errorf("unknown function %q", fields[0])
		}
		return res, nil

	case 3:
		a, err := parseOperand(fields[0])
		if err != nil {
			return res, err
		}
		b, err := parseOperand(fields[2])
		if err != nil {
			return res, err
		}

		var v decnum.Int
		switch op := fields[1]; op {
		case "+":
			v = a.Add(b)
		case "-":
			v = a.Sub(b)
		case "*", "x":
			v = a.Mul(b)
		case "cmp", "<=>":
			res.Text = strconv.Itoa(a.Cmp(b))
		case "==":
			res.Text = strconv.FormatBool(a.Equal(b))
		case "!=":
			res.Text = strconv.FormatBool(!a.Equal(b))
		case "<":
			res.Text = strconv.FormatBool(a.LessThan(b))
		case "<=":
			res.Text = strconv.FormatBool(a.LessOrEqualTo(b))
		case ">":
			res.Text = strconv.FormatBool(a.GreaterThan(b))
		case ">=":
			res.Text = strconv.FormatBool(a.GreaterOrEqualTo(b))
		case "/", "%":
			return res, fmt.Errorf("operator %q is not supported", op)
		default:
			return res, fmt.Errorf("unknown operator %q", op)
		}
		if res.Text == "" {
			res.Value = &v
		}
		return res, nil
	}

	return res, fmt.Errorf("cannot parse %q: expected 'A op B' or 'fn A'", res.Expr)
}
