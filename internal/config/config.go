package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/dshills/atlas/internal/config/loader"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "atlas.toml"

// MaxCapacity bounds every capacity taken from user input: the config file,
// the reserve command and loaded snapshots.
const MaxCapacity = 1 << 24

// DefaultScriptTimeout bounds a single Lua execution.
const DefaultScriptTimeout = 5 * time.Second

// Color modes for error output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Dump formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the shell settings.
type Config struct {
	Array ArrayConfig
	Shell ShellConfig
}

// ArrayConfig seeds the session array.
type ArrayConfig struct {
	Initial  []float64
	Capacity int
}

// ShellConfig controls the interactive shell.
type ShellConfig struct {
	Prompt  string
	Color   string
	Format  string
	Scripts []string

	// ScriptTimeout bounds each Lua execution. Zero disables the bound.
	ScriptTimeout time.Duration
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt:        "atlas> ",
			Color:         ColorAuto,
			Format:        FormatJSON,
			ScriptTimeout: DefaultScriptTimeout,
		},
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	fs        loader.FileSystem
	envPrefix string
	env       bool
}

// WithFS reads the configuration file through fsys.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnv enables or disables the environment layer.
func WithEnv(enable bool) Option {
	return func(o *options) {
		o.env = enable
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// Load builds the configuration from defaults, the TOML file at path and
// the environment. A missing file is not an error. An empty path falls back
// to ATLAS_CONFIG, then DefaultPath.
func Load(path string, opts ...Option) (*Config, error) {
	o := options{
		envPrefix: loader.DefaultEnvPrefix,
		env:       true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var envData map[string]any
	if o.env {
		var err error
		if envData, err = loader.NewEnvLoader(o.envPrefix).Load(); err != nil {
			return nil, err
		}
	}
	if path == "" {
		if v, ok := loader.Lookup(envData, "paths.config"); ok {
			path, _ = v.(string)
		}
	}
	if path == "" {
		path = DefaultPath
	}

	fileLoader := loader.NewTOMLLoader(path)
	if o.fs != nil {
		fileLoader = loader.NewTOMLLoaderWithFS(o.fs, path)
	}
	fileData, err := fileLoader.Load()
	if err != nil {
		return nil, err
	}
	merged := loader.DeepMerge(loader.DeepMerge(nil, fileData), envData)

	cfg := Default()
	if err := cfg.Apply(merged); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply overlays the settings present in data onto c and validates the result.
func (c *Config) Apply(data map[string]any) error {
	if v, ok := loader.Lookup(data, "array.initial"); ok {
		values, err := floatList(v)
		if err != nil {
			return &SettingError{Path: "array.initial", Value: v, Err: err}
		}
		c.Array.Initial = values
	}
	if v, ok := loader.Lookup(data, "array.capacity"); ok {
		n, err := toInt(v)
		if err != nil {
			return &SettingError{Path: "array.capacity", Value: v, Err: err}
		}
		c.Array.Capacity = n
	}

	strs := []struct {
		path string
		dst  *string
	}{
		{"shell.prompt", &c.Shell.Prompt},
		{"shell.color", &c.Shell.Color},
		{"shell.format", &c.Shell.Format},
	}
	for _, s := range strs {
		v, ok := loader.Lookup(data, s.path)
		if !ok {
			continue
		}
		str, ok := v.(string)
		if !ok {
			return &SettingError{Path: s.path, Value: v, Err: ErrTypeMismatch}
		}
		*s.dst = str
	}

	if v, ok := loader.Lookup(data, "shell.scripts"); ok {
		scripts, err := stringList(v)
		if err != nil {
			return &SettingError{Path: "shell.scripts", Value: v, Err: err}
		}
		c.Shell.Scripts = scripts
	}

	if v, ok := loader.Lookup(data, "shell.scriptTimeout"); ok {
		d, err := toDuration(v)
		if err != nil {
			return &SettingError{Path: "shell.scriptTimeout", Value: v, Err: err}
		}
		c.Shell.ScriptTimeout = d
	}

	return c.Validate()
}

// Validate checks enumerated and bounded settings.
func (c *Config) Validate() error {
	if c.Array.Capacity < 0 || c.Array.Capacity > MaxCapacity {
		return &SettingError{Path: "array.capacity", Value: c.Array.Capacity, Err: ErrValidationFailed}
	}
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Shell.Color) {
		return &SettingError{Path: "shell.color", Value: c.Shell.Color, Err: ErrValidationFailed}
	}
	if !slices.Contains([]string{FormatJSON, FormatYAML}, c.Shell.Format) {
		return &SettingError{Path: "shell.format", Value: c.Shell.Format, Err: ErrValidationFailed}
	}
	if c.Shell.ScriptTimeout < 0 {
		return &SettingError{Path: "shell.scriptTimeout", Value: c.Shell.ScriptTimeout, Err: ErrValidationFailed}
	}
	return nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int:
		return n, nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("%w: want integer, got %T", ErrTypeMismatch, v)
}

// toDuration accepts a Go duration string such as "2s" or a number of seconds.
func toDuration(v any) (time.Duration, error) {
	switch d := v.(type) {
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return parsed, nil
	case int64:
		return time.Duration(d) * time.Second, nil
	case int:
		return time.Duration(d) * time.Second, nil
	case float64:
		return time.Duration(d * float64(time.Second)), nil
	}
	return 0, fmt.Errorf("%w: want duration, got %T", ErrTypeMismatch, v)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("%w: want number, got %T", ErrTypeMismatch, v)
}

func floatList(v any) ([]float64, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: want array, got %T", ErrTypeMismatch, v)
	}
	values := make([]float64, 0, len(list))
	for _, item := range list {
		f, err := toFloat(item)
		if err != nil {
			return nil, err
		}
		values = append(values, f)
	}
	return values, nil
}

func stringList(v any) ([]string, error) {
	switch list := v.(type) {
	case string:
		return []string{list}, nil
	case []any:
		values := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: want string, got %T", ErrTypeMismatch, item)
			}
			values = append(values, s)
		}
		return values, nil
	}
	return nil, fmt.Errorf("%w: want array of strings, got %T", ErrTypeMismatch, v)
}
