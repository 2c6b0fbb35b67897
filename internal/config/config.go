// Package config loads critpath settings from defaults, an optional YAML file,
// optional dotenv files and the environment, in that order of priority.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CRITPATH_"

// Environment variable names.
const (
	EnvInput       = EnvPrefix + "INPUT"
	EnvVertexBase  = EnvPrefix + "VERTEX_BASE"
	EnvSource      = EnvPrefix + "SOURCE"
	EnvTarget      = EnvPrefix + "TARGET"
	EnvFormat      = EnvPrefix + "FORMAT"
	EnvLogLevel    = EnvPrefix + "LOG_LEVEL"
	EnvMetricsFile = EnvPrefix + "METRICS_FILE"
)

// StdinPath selects standard input as the graph source.
const StdinPath = "-"

// Config is the complete runtime configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Query   QueryConfig   `yaml:"query"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`

	// LoadedFrom lists the sources applied, lowest priority first.
	LoadedFrom []string `yaml:"-"`
}

// InputConfig locates and describes the graph file.
type InputConfig struct {
	Path       string `yaml:"path" validate:"required"`
	VertexBase int    `yaml:"vertex_base" validate:"oneof=0 1"`
}

// QueryConfig names the two endpoints. With TargetMax the target is the largest vertex ID
// and Target is ignored.
type QueryConfig struct {
	Source    int  `yaml:"source" validate:"gte=0"`
	Target    int  `yaml:"target" validate:"gte=0"`
	TargetMax bool `yaml:"target_max"`
}

// OutputConfig selects the report encoding.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text json"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// MetricsConfig configures the prometheus textfile export; an empty File disables it.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// Default returns the built-in configuration: stdin, 0-based vertices, 1 → max vertex, text.
func Default() *Config {
	return &Config{
		Input:  InputConfig{Path: StdinPath, VertexBase: 0},
		Query:  QueryConfig{Source: 1, TargetMax: true},
		Output: OutputConfig{Format: "text"},
		Log:    LogConfig{Level: "info"},
	}
}

// Validate checks struct tags with go-playground/validator.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}

	return nil
}

var validate = validator.New()

// Loader assembles a Config from its layered sources.
type Loader struct {
	file     string
	dotenv   []string
	lookupFn func(string) (string, bool)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile sets the YAML file. A missing file is an error; an empty path skips the layer.
func WithFile(path string) LoaderOption {
	return func(l *Loader) { l.file = path }
}

// WithDotEnv adds dotenv files whose values apply below the process environment.
// Missing files are skipped.
func WithDotEnv(files ...string) LoaderOption {
	return func(l *Loader) { l.dotenv = append(l.dotenv, files...) }
}

// WithLookup replaces os.LookupEnv.
func WithLookup(fn func(string) (string, bool)) LoaderOption {
	return func(l *Loader) {
		if fn != nil {
			l.lookupFn = fn
		}
	}
}

// NewLoader returns a Loader reading the process environment.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{lookupFn: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load applies defaults, the YAML file, dotenv files and the environment, then validates.
func (l *Loader) Load() (*Config, error) {
	// 1) Defaults
	cfg := Default()
	cfg.LoadedFrom = []string{"defaults"}

	// 2) YAML file
	if l.file != "" {
		if err := loadYAML(l.file, cfg); err != nil {
			return nil, err
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, l.file)
	}

	// 3) Environment, dotenv values underneath the process environment
	dotenv, err := l.readDotEnv()
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := l.lookupFn(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	applied, err := applyEnv(cfg, lookup)
	if err != nil {
		return nil, err
	}
	if applied {
		cfg.LoadedFrom = append(cfg.LoadedFrom, "environment")
	}

	// 4) Validate the merged result
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

func (l *Loader) readDotEnv() (map[string]string, error) {
	out := map[string]string{}
	for _, file := range l.dotenv {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		vals, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("config: dotenv %s: %w", file, err)
		}
		// earlier files win, as with godotenv.Load
		for k, v := range vals {
			if _, seen := out[k]; !seen {
				out[k] = v
			}
		}
	}

	return out, nil
}

// applyEnv overlays CRITPATH_* variables and reports whether any was set.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) (bool, error) {
	applied := false
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
			applied = true
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", key, v, err)
		}
		*dst = n
		applied = true
		return nil
	}

	str(EnvInput, &cfg.Input.Path)
	str(EnvFormat, &cfg.Output.Format)
	str(EnvLogLevel, &cfg.Log.Level)
	str(EnvMetricsFile, &cfg.Metrics.File)
	if err := num(EnvVertexBase, &cfg.Input.VertexBase); err != nil {
		return false, err
	}
	if err := num(EnvSource, &cfg.Query.Source); err != nil {
		return false, err
	}
	if v, ok := lookup(EnvTarget); ok && v != "" {
		if err := num(EnvTarget, &cfg.Query.Target); err != nil {
			return false, err
		}
		cfg.Query.TargetMax = false
	}

	return applied, nil
}
