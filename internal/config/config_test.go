package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("data", "", "")
	fs.String("log-level", "info", "")
	fs.String("addr", ":8050", "")
	fs.Int64("min-pitches", 10, "")
	fs.String("output", "", "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cfg.Data.MinPitches)
	assert.Equal(t, ":8050", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, CacheMemory, cfg.Cache.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 2024, cfg.Chart.Season)
	assert.Empty(t, cfg.FileUsed)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data.path is required")
}

func TestLoadFileFormats(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"tjstuff.yaml", "data:\n  path: season.csv\n  min_pitches: 25\ncache:\n  backend: none\n"},
		{"tjstuff.toml", "[data]\npath = \"season.csv\"\nmin_pitches = 25\n[cache]\nbackend = \"none\"\n"},
		{"tjstuff.json", `{"data": {"path": "season.csv", "min_pitches": 25}, "cache": {"backend": "none"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.name, tt.body), nil)
			require.NoError(t, err)
			assert.Equal(t, "season.csv", cfg.Data.Path)
			assert.Equal(t, int64(25), cfg.Data.MinPitches)
			assert.Equal(t, CacheNone, cfg.Cache.Backend)
			assert.Equal(t, ":8050", cfg.Server.Addr, "defaults survive")
			require.NoError(t, cfg.Validate())
		})
	}
}

func TestLoadFindsFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tjstuff.yml"), []byte("log:\n  level: debug\n"), 0o600))
	chdir(t, dir)
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "tjstuff.yml", cfg.FileUsed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadUnsupportedFile(t *testing.T) {
	_, err := Load(writeFile(t, "tjstuff.ini", "x=1"), nil)
	require.Error(t, err)
}

func TestPrecedence(t *testing.T) {
	path := writeFile(t, "tjstuff.yaml", "data:\n  path: from-file.csv\nserver:\n  addr: \":9000\"\ncache:\n  redis_url: redis://file:6379/0\n")
	t.Setenv("TJSTUFF_DATA_PATH", "from-env.csv")
	t.Setenv("TJSTUFF_CACHE_REDIS_URL", "redis://env:6379/1")
	t.Setenv("TJSTUFF_SERVER_CORS_ORIGINS", "https://a.example,https://b.example")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--data", "from-flag.csv", "--output", "ignored"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.csv", cfg.Data.Path, "flag beats env and file")
	assert.Equal(t, "redis://env:6379/1", cfg.Cache.RedisURL, "env beats file")
	assert.Equal(t, ":9000", cfg.Server.Addr, "unchanged flag does not override file")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, int64(10), cfg.Data.MinPitches)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(writeFile(t, "c.yaml", "data:\n  path: s.csv\n"), nil)
		require.NoError(t, err)
		return cfg
	}
	tests := []struct {
		name      string
		mutate    func(c *Config)
		errSubstr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"negative min", func(c *Config) { c.Data.MinPitches = -1 }, "min_pitches"},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "memcached" }, "unknown cache.backend"},
		{"redis without url", func(c *Config) { c.Cache.Backend = CacheRedis; c.Cache.RedisURL = "" }, "redis_url"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad chart", func(c *Config) { c.Chart.Width = 0 }, "chart size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestYAMLDump(t *testing.T) {
	cfg, err := Load(writeFile(t, "c.toml", "[chart]\nseason = 2025\n"), nil)
	require.NoError(t, err)
	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "season: 2025")
	assert.Contains(t, string(out), "backend: memory")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
