// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config loads CLI-wide defaults from a TOML file, the way a
// compiler-course toolkit's driver usually keeps its knobs out of the
// flag set: one optional file, sane defaults when it is absent.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings a grammar-table run can take from a file
// instead of the command line.
type Config struct {
	// TableWidth is the column width passed to the table renderer.
	TableWidth int `toml:"table_width"`

	// Quiet suppresses the "no conflicts" success message from check.
	Quiet bool `toml:"quiet"`

	// OutputDir is where generated artifacts are written, when a command
	// writes any (reserved for collaborators outside the core pipeline).
	OutputDir string `toml:"output_dir"`
}

// Default returns the configuration a run starts from before any file or
// flag override is applied.
func Default() Config {
	return Config{TableWidth: 10}
}

// LoadFile reads and decodes a TOML config file. A missing file is not an
// error: it returns Default() unchanged, since the file is optional.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
