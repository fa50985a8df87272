// Package config loads the optional YAML file that seeds a session: the log
// level and the initial variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"calclang/pkg/binding"
	"calclang/pkg/syntax"
	"calclang/pkg/value"
)

// Config is the validated contents of a session file.
type Config struct {
	Path      string
	LogLevel  string
	Variables map[string]value.Value
}

type configFile struct {
	LogLevel  string         `yaml:"log_level"`
	Variables map[string]any `yaml:"variables"`
}

// ValidationError aggregates every problem found in a config file.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{LogLevel: "warn", Variables: map[string]value.Value{}}
}

// Load parses and validates the YAML file at path.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", absPath, err)
	}
	cfg.Path = absPath
	return cfg, nil
}

// Decode reads one YAML document from r. An empty document yields Default.
func Decode(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	return raw.toConfig()
}

func (f configFile) toConfig() (*Config, error) {
	var errs ValidationError
	cfg := Default()
	if f.LogLevel != "" {
		if _, ok := parseLevel(f.LogLevel); !ok {
			errs.Issues = append(errs.Issues, fmt.Sprintf("log_level %q must be one of debug, info, warn, error", f.LogLevel))
		}
		cfg.LogLevel = f.LogLevel
	}

	names := make([]string, 0, len(f.Variables))
	for name := range f.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !isIdentifier(name) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("variables.%s: name must be letters and underscores and not a keyword", name))
			continue
		}
		if binding.IsConstant(name) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("variables.%s: name is reserved for a constant", name))
			continue
		}
		v, err := value.FromAny(f.Variables[name])
		if err != nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("variables.%s: %v", name, err))
			continue
		}
		cfg.Variables[name] = v
	}

	if len(errs.Issues) > 0 {
		return nil, &errs
	}
	return cfg, nil
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// Environment returns a fresh environment holding the configured variables.
func (c *Config) Environment() *value.Environment {
	env := value.NewEnvironment()
	for name, v := range c.Variables {
		env.Assign(name, v)
	}
	return env
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	level, ok := parseLevel(s)
	if !ok {
		return level, fmt.Errorf("unknown log level: %s", s)
	}
	return level, nil
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelWarn, false
}

// isIdentifier mirrors the lexer: letters and underscores only, and not a
// keyword.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != '_' {
			return false
		}
	}
	return syntax.KeywordType(name) == syntax.IDENTIFIER
}
