// Package hostconfig loads the small YAML config the demo host reads at
// startup (shell, geometry, window title). It has nothing to do with the
// emulator core itself — it only configures the harness around it.
package hostconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the demo host's user-configurable settings.
type Config struct {
	Shell string `yaml:"shell"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Title string `yaml:"title"`
}

// Default returns the built-in defaults, used whenever a config file is
// absent or a field is left unset.
func Default() Config {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return Config{
		Shell: shell,
		Rows:  24,
		Cols:  80,
		Title: "vtengine",
	}
}

// Load reads path, merging it over the defaults. A missing file is not
// an error: Load silently falls back to Default.
func Load(path string) Config {
	cfg := Default()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	if cfg.Rows <= 0 {
		cfg.Rows = 24
	}
	if cfg.Cols <= 0 {
		cfg.Cols = 80
	}
	if cfg.Shell == "" {
		cfg.Shell = Default().Shell
	}

	return cfg
}
