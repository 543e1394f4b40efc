package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestReadExprs(t *testing.T) {
	in := "# header\n1 + 1\n\n   \n  2 * 3  \n#4 - 4\nneg 5\n"
	lines, err := readExprs("test", strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []exprLine{
		{Source: "test", Line: 2, Expr: "1 + 1"},
		{Source: "test", Line: 5, Expr: "2 * 3"},
		{Source: "test", Line: 7, Expr: "neg 5"},
	}, lines)
}

func TestReadExprsLongLine(t *testing.T) {
	big := strings.Repeat("9", 200000)
	lines, err := readExprs("test", strings.NewReader(big+" + 1\n"))
	require.NoError(t, err)
	require.Len(t, lines, 1)

	res, err := runBatch(context.Background(), lines, 1, false)
	require.NoError(t, err)
	require.Equal(t, "1"+strings.Repeat("0", 200000), res[0].String())
}

func TestRunBatchOrder(t *testing.T) {
	var lines []exprLine
	for i := 0; i < 500; i++ {
		lines = append(lines, exprLine{Source: "t", Line: i + 1, Expr: fmt.Sprintf("%d * %d", i, i)})
	}

	results, err := runBatch(context.Background(), lines, 8, false)
	require.NoError(t, err)
	require.Len(t, results, len(lines))
	for i, r := range results {
		require.Equal(t, fmt.Sprint(i*i), r.String())
		require.Equal(t, lines[i].Expr, r.Expr)
	}
}

func TestRunBatchFailFast(t *testing.T) {
	lines := []exprLine{
		{Source: "t", Line: 1, Expr: "1 + 1"},
		{Source: "t", Line: 2, Expr: "1 / 1"},
	}
	_, err := runBatch(context.Background(), lines, 1, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "t:2:")
}

func TestRunBatchKeepGoing(t *testing.T) {
	lines := []exprLine{
		{Source: "t", Line: 1, Expr: "1 + 1"},
		{Source: "t", Line: 2, Expr: "1 / 1"},
		{Source: "t", Line: 3, Expr: "2 * 2"},
	}
	results, err := runBatch(context.Background(), lines, 2, true)
	require.NoError(t, err)
	require.Equal(t, "2", results[0].String())
	require.NotEmpty(t, results[1].Err)
	require.Equal(t, "4", results[2].String())
}

func TestRunBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lines := []exprLine{{Source: "t", Line: 1, Expr: "1 + 1"}}
	_, err := runBatch(ctx, lines, 1, false)
	require.ErrorIs(t, err, context.Canceled)
}

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEvalCmd(t *testing.T) {
	out, err := runCmd(t, "", "eval", "12345", "*", "6789")
	require.NoError(t, err)
	require.Equal(t, "83810205\n", out)

	out, err = runCmd(t, "", "eval", "--format", "json", "neg 123")
	require.NoError(t, err)
	require.JSONEq(t, `{"expr":"neg 123","value":"-123"}`, out)

	_, err = runCmd(t, "", "eval", "1 / 2")
	require.Error(t, err)
}

func TestEvalCmdNegativeOperands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"eval", "neg", "-5"}, "5\n"},
		{[]string{"eval", "3", "+", "-5"}, "-2\n"},
		{[]string{"eval", "-5", "*", "-5"}, ""},
		{[]string{"eval", "--", "-5", "+", "3"}, "-2\n"},
		{[]string{"eval", "--", "-5 + 3"}, "-2\n"},
		{[]string{"eval", "--format", "json", "abs", "-7"}, `{"expr":"abs -7","value":"7"}` + "\n"},
		{[]string{"--color", "off", "eval", "-7", "<", "-6"}, ""},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := runCmd(t, "", tc.args...)
			if tc.out == "" {
				// A leading negative number without -- is read as a flag.
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, out)
		})
	}
}

func TestBatchCmdStdin(t *testing.T) {
	out, err := runCmd(t, "999 + 1\n-5 - -5\n", "batch", "--show-expr")
	require.NoError(t, err)
	require.Equal(t, "999 + 1 = 1000\n-5 - -5 = 0\n", out)
}

func TestBatchCmdFilesJSON(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1 + 2\n")
	b := writeFile(t, dir, "b.txt", "3 * 4\n5 < 6\n")

	out, err := runCmd(t, "", "batch", "--format", "json", "-j", "2", a, b)
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var got []result
	for dec.More() {
		var r result
		require.NoError(t, dec.Decode(&r))
		got = append(got, r)
	}
	require.Len(t, got, 3)
	require.Equal(t, "3", got[0].String())
	require.Equal(t, "12", got[1].String())
	require.Equal(t, "true", got[2].String())
}

func TestBatchCmdMsgpack(t *testing.T) {
	out, err := runCmd(t, "2 * 21\nneg 7\n", "batch", "--format", "msgpack")
	require.NoError(t, err)

	dec := msgpack.NewDecoder(strings.NewReader(out))
	var first, second result
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	require.Equal(t, "42", first.Value.String())
	require.Equal(t, "-7", second.Value.String())
}

func TestBatchCmdConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, configFileName, "[output]\nformat = \"json\"\n\n[batch]\njobs = 2\nkeep_going = true\n")

	out, err := runCmd(t, "1 + 1\n1 / 1\n", "--config", cfg, "batch")
	require.NoError(t, err)
	require.Contains(t, out, `"value":"2"`)
	require.Contains(t, out, `"error":`)

	// Flags win over the file:
	out, err = runCmd(t, "1 + 1\n", "--config", cfg, "batch", "--format", "text")
	require.NoError(t, err)
	require.Equal(t, "2\n", out)
}
