/*
Package config loads settings of the pattern engine.

Settings are taken from built-in defaults, optionally overridden by a YAML
file, and finally by environment variables:

	FPMATCH_CACHE_CAPACITY   capacity of the compiled-pattern cache (default 10000)
	FPMATCH_TRACE_LEVEL      one of "error", "info", "debug" (default "error")

The YAML file uses the lower-case keys 'cache_capacity' and 'trace_level'.
*/
package config

import (
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes all environment variables read by Load.
const EnvPrefix = "FPMATCH_"

// Defaults.
const (
	DefaultCacheCapacity = 10000
	DefaultTraceLevel    = "error"
)

// Config holds the engine settings.
type Config struct {
	CacheCapacity int    `koanf:"cache_capacity"`
	TraceLevel    string `koanf:"trace_level"`
}

// Load reads defaults and environment variables.
func Load() (Config, error) {
	return load(nil)
}

// LoadWithFile reads defaults, then the YAML file at path, then environment
// variables. A missing file is not an error.
func LoadWithFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return load(nil)
		}
		return Config{}, errors.Wrapf(err, "config: cannot read %s", path)
	}
	return load(content)
}

func load(yamlContent []byte) (Config, error) {
	k := koanf.New(".")
	if err := k.Set("cache_capacity", DefaultCacheCapacity); err != nil {
		return Config{}, errors.Wrap(err, "config: cannot set defaults")
	}
	if err := k.Set("trace_level", DefaultTraceLevel); err != nil {
		return Config{}, errors.Wrap(err, "config: cannot set defaults")
	}
	if yamlContent != nil {
		if err := k.Load(rawbytes.Provider(yamlContent), yaml.Parser()); err != nil {
			return Config{}, errors.Wrap(err, "config: cannot parse YAML")
		}
	}
	// FPMATCH_CACHE_CAPACITY -> cache_capacity
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: cannot read environment")
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: cannot decode settings")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks all settings and reports every problem found.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.CacheCapacity < 1 {
		result = multierror.Append(result,
			errors.Errorf("cache_capacity must be positive, is %d", c.CacheCapacity))
	}
	if _, ok := traceLevels[strings.ToLower(c.TraceLevel)]; !ok {
		result = multierror.Append(result,
			errors.Errorf("trace_level must be one of error, info, debug; is %q", c.TraceLevel))
	}
	return result.ErrorOrNil()
}

var traceLevels = map[string]tracing.TraceLevel{
	"error": tracing.LevelError,
	"info":  tracing.LevelInfo,
	"debug": tracing.LevelDebug,
}

// Level returns the configured trace level.
func (c Config) Level() tracing.TraceLevel {
	if level, ok := traceLevels[strings.ToLower(c.TraceLevel)]; ok {
		return level
	}
	return tracing.LevelError
}
