package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func restoreColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	t.Cleanup(func() {
		color.NoColor = prev
		fatalColor.DisableColor()
	})
}

func TestColorEnabled(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	defer f.Close()

	var buf bytes.Buffer
	require.True(t, colorEnabled("on", &buf))
	require.True(t, colorEnabled("on", f))
	require.False(t, colorEnabled("off", f))
	require.False(t, colorEnabled("auto", &buf))
	require.False(t, colorEnabled("auto", f))
}

func TestSetupColorStderrFollowsStderr(t *testing.T) {
	restoreColor(t)

	errLog, err := os.Create(filepath.Join(t.TempDir(), "err.log"))
	require.NoError(t, err)
	defer errLog.Close()

	setupColor("auto", &bytes.Buffer{}, errLog)

	// Stdout being a terminal must not leak escape codes into a redirected
	// stderr.
	color.NoColor = false
	require.Equal(t, "boom", fatalColor.Sprint("boom"))
	require.True(t, strings.Contains(negColor.Sprint("-1"), "\x1b["))
}

func TestSetupColorForced(t *testing.T) {
	restoreColor(t)

	setupColor("on", &bytes.Buffer{}, &bytes.Buffer{})
	require.False(t, color.NoColor)
	require.Contains(t, fatalColor.Sprint("boom"), "\x1b[")

	setupColor("off", &bytes.Buffer{}, &bytes.Buffer{})
	require.True(t, color.NoColor)
	require.Equal(t, "boom", fatalColor.Sprint("boom"))
}
