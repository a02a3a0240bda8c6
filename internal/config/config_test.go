package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentiny/MVCC/pkg/mvcc"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, conf)
}

func TestLoadDecodesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mvccsh.toml")
	contents := "default-isolation = \"serializable\"\nlog-level = \"debug\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "serializable", conf.DefaultIsolation)
	assert.Equal(t, "debug", conf.LogLevel)

	level, err := conf.Isolation()
	require.NoError(t, err)
	assert.Equal(t, mvcc.Serializable, level)
}

func TestLoadUnknownFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/path/mvccsh.toml")
	assert.Error(t, err)
}

func TestIsolationRejectsUnknownLevel(t *testing.T) {
	conf := Config{DefaultIsolation: "bogus"}
	_, err := conf.Isolation()
	assert.Error(t, err)
}
