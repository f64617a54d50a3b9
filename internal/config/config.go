// Package config assembles the CLI configuration from defaults, an optional
// YAML or .env file, and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	coreerrors "github.com/mossy2100/galaxon-core/errors"
	"github.com/mossy2100/galaxon-core/floats"
	"github.com/mossy2100/galaxon-core/logger"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigFile        = "GALAXON_CONFIG"
	EnvRelativeTolerance = "GALAXON_RELATIVE_TOLERANCE"
	EnvAbsoluteTolerance = "GALAXON_ABSOLUTE_TOLERANCE"
	EnvLogJSON           = "LOG_JSON"
	EnvLogLevel          = "LOG_LEVEL"
)

// ErrUnknownFileType is returned when the config file extension is not recognised.
var ErrUnknownFileType = errors.New("config file doesn't have a known file suffix")

// LookupFunc reads one environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Config is everything the CLI needs besides its arguments.
type Config struct {
	Tolerance floats.Tolerance
	Log       logger.Options
}

// Default returns the library default tolerance and info-level text logs.
func Default() Config {
	return Config{
		Tolerance: floats.DefaultTolerance(),
		Log: logger.Options{
			Subsystem: "galaxon",
			MinLevel:  slog.LevelInfo,
		},
	}
}

// yamlFile is the expected structure of a YAML config file. Absent fields
// keep their defaults.
//
//	tolerance:
//	  relative: 1e-6
//	  absolute: 1e-12
//	log:
//	  json: true
//	  level: debug
type yamlFile struct {
	Tolerance struct {
		Relative *float64 `yaml:"relative"`
		Absolute *float64 `yaml:"absolute"`
	} `yaml:"tolerance"`
	Log struct {
		JSON  *bool  `yaml:"json"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load builds a Config. path may be empty, in which case the file named by
// GALAXON_CONFIG (if any) is used. A nil lookup means os.LookupEnv.
// Every invalid setting is reported, not only the first.
func Load(path string, lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := Default()

	if path == "" {
		path, _ = lookup(EnvConfigFile)
	}

	var errs coreerrors.Collection

	if path != "" {
		fileEnv, err := applyFile(&cfg, path)
		if err != nil {
			return cfg, err
		}

		// Values from a .env file sit beneath the real environment.
		lookup = layered(lookup, fileEnv)
	}

	applyEnv(&cfg, lookup, &errs)

	errs.Add(cfg.Tolerance.Validate())

	return cfg, errs.GetError()
}

// applyFile reads a YAML file into cfg, or returns the variables of a .env
// file for applyEnv to pick up.
func applyFile(cfg *Config, path string) (map[string]string, error) {
	name := strings.ToLower(path)

	switch {
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return nil, applyYAML(cfg, path)
	case strings.HasSuffix(name, ".env"):
		vars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		return vars, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, path)
	}
}

func applyYAML(cfg *Config, path string) error {
	bts, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var file yamlFile
	if err := yaml.Unmarshal(bts, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if file.Tolerance.Relative != nil {
		cfg.Tolerance.Relative = *file.Tolerance.Relative
	}

	if file.Tolerance.Absolute != nil {
		cfg.Tolerance.Absolute = *file.Tolerance.Absolute
	}

	if file.Log.JSON != nil {
		cfg.Log.JSON = *file.Log.JSON
	}

	if file.Log.Level != "" {
		level, err := logger.ParseLevel(file.Log.Level)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		cfg.Log.MinLevel = level
	}

	return nil
}

func applyEnv(cfg *Config, lookup LookupFunc, errs *coreerrors.Collection) {
	if v, ok := lookup(EnvRelativeTolerance); ok {
		f, err := parseFloat(EnvRelativeTolerance, v)
		errs.Add(err)

		if err == nil {
			cfg.Tolerance.Relative = f
		}
	}

	if v, ok := lookup(EnvAbsoluteTolerance); ok {
		f, err := parseFloat(EnvAbsoluteTolerance, v)
		errs.Add(err)

		if err == nil {
			cfg.Tolerance.Absolute = f
		}
	}

	if v, ok := lookup(EnvLogJSON); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs.Add(fmt.Errorf("%s: %w", EnvLogJSON, err))
		} else {
			cfg.Log.JSON = b
		}
	}

	if v, ok := lookup(EnvLogLevel); ok {
		level, err := logger.ParseLevel(v)
		if err != nil {
			errs.Add(fmt.Errorf("%s: %w", EnvLogLevel, err))
		} else {
			cfg.Log.MinLevel = level
		}
	}
}

func parseFloat(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return f, nil
}

func layered(top LookupFunc, bottom map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if v, ok := top(key); ok {
			return v, true
		}

		v, ok := bottom[key]

		return v, ok
	}
}

// MapLookup adapts a map to a LookupFunc.
func MapLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]

		return v, ok
	}
}
