package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes environment overrides: TJSTUFF_DATA_PATH sets data.path.
const EnvPrefix = "TJSTUFF_"

// candidate config file names searched in the working directory
var configNames = []string{"tjstuff.yaml", "tjstuff.yml", "tjstuff.toml", "tjstuff.json"}

// flagKeys maps command line flags to config keys. Flags not listed here are
// command options and never reach the config.
var flagKeys = map[string]string{
	"data":        "data.path",
	"format":      "data.format",
	"min-pitches": "data.min_pitches",
	"addr":        "server.addr",
	"cache":       "cache.backend",
	"cache-ttl":   "cache.ttl",
	"redis-url":   "cache.redis_url",
	"season":      "chart.season",
	"log-level":   "log.level",
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return TOML(), nil
	case ".json":
		return JSON(), nil
	default:
		return nil, fmt.Errorf("unsupported config file type %q", filepath.Ext(path))
	}
}

// envKey turns TJSTUFF_CACHE_REDIS_URL into cache.redis_url. The first
// underscore separates the section.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// Load builds the configuration. cfgFile may be empty to search the working
// directory; flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. config file
	used := findConfigFile(cfgFile)
	if used != "" {
		p, err := parserFor(used)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(used), p); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. explicitly set flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = used
	cfg.raw = k.Raw()
	return &cfg, nil
}
