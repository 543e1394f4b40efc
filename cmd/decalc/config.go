package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFileName = "decalc.toml"

type config struct {
	Output outputConfig `toml:"output"`
	Batch  batchConfig  `toml:"batch"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type batchConfig struct {
	Jobs      int  `toml:"jobs"`
	KeepGoing bool `toml:"keep_going"`
}

func defaultConfig() config {
	return config{
		Output: outputConfig{Format: "text", Color: "auto"},
	}
}

func (c config) validate() error {
	switch c.Output.Format {
	case "text", "json", "msgpack":
	default:
		return fmt.Errorf("unsupported format %q (must be text, json or msgpack)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", c.Output.Color)
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, found %d", c.Batch.Jobs)
	}
	return nil
}

// findConfig walks up from startDir looking for decalc.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig reads the config at path over the defaults. If path is empty the
// nearest decalc.toml is used, and a missing file is not an error.
func loadConfig(path, startDir string) (cfg config, found string, err error) {
	cfg = defaultConfig()

	if path == "" {
		var ok bool
		path, ok, err = findConfig(startDir)
		if err != nil {
			return cfg, "", err
		}
		if !ok {
			return cfg, "", nil
		}
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, "", fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, "", fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Output.Color = strings.ToLower(cfg.Output.Color)
	if err := cfg.validate(); err != nil {
		return cfg, "", fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}
