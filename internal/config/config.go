// Package config loads the settings that drive cmd/mvccsh: which
// isolation level new transactions default to, and how verbosely the
// engine's optional trace logger should run. The engine itself
// (pkg/mvcc) never reads config — it's constructed in code — this
// package only exists for the CLI harness.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dentiny/MVCC/pkg/mvcc"
)

// Config is the decoded shape of the TOML config file accepted by
// cmd/mvccsh's --config flag.
type Config struct {
	DefaultIsolation string `toml:"default-isolation"`
	LogLevel         string `toml:"log-level"`
}

// DefaultConfig mirrors the teacher pack's DefaultConf convention
// (talent-plan-tinykv/kv/config): a zero-value-free struct callers can
// start from before applying a config file.
var DefaultConfig = Config{
	DefaultIsolation: mvcc.ReadCommitted.String(),
	LogLevel:         "info",
}

// Load decodes path into a copy of DefaultConfig. An empty path
// returns DefaultConfig unchanged, matching the teacher's "-config ''
// means use the baked-in defaults" behavior.
func Load(path string) (Config, error) {
	conf := DefaultConfig
	if path == "" {
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return conf, nil
}

// Isolation parses DefaultIsolation, returning an error that names the
// offending config file value rather than the bare mvcc error.
func (c Config) Isolation() (mvcc.IsolationLevel, error) {
	level, err := mvcc.ParseIsolationLevel(c.DefaultIsolation)
	if err != nil {
		return 0, fmt.Errorf("config: default-isolation: %w", err)
	}
	return level, nil
}
