// Copyright (c) 2024 The Androguard-Go Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package config loads dlower's TOML configuration file.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Logging controls the package-level logger dlower installs into
// lower.Log.
type Logging struct {
	Level  string `toml:"level"`  // logrus level name, default "info"
	Format string `toml:"format"` // "text" or "json", default "text"
}

// Lowering controls the lowering pipeline's own knobs.
type Lowering struct {
	// Strict turns an arg-count mismatch during invoke lowering into a
	// recorded diagnostic the caller can inspect after a run (see
	// lower.Diagnostics), instead of the default warn-and-continue.
	Strict bool `toml:"strict"`
}

// Metrics controls the optional Prometheus exporter. An empty ListenAddr
// disables the metrics HTTP server.
type Metrics struct {
	ListenAddr string `toml:"listen_addr"` // e.g. ":9090"
}

// Config is dlower's top-level configuration schema.
type Config struct {
	Logging  Logging  `toml:"logging"`
	Lowering Lowering `toml:"lowering"`
	Metrics  Metrics  `toml:"metrics"`
}

// Default returns the configuration used when no file is given: logrus at
// info level, best-effort (non-strict) lowering, no metrics server.
func Default() Config {
	return Config{
		Logging: Logging{Level: "info", Format: "text"},
	}
}

// Load reads and unmarshals a TOML configuration file, starting from
// Default() so a file only overrides the sections it mentions.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}
