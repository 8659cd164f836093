// Package config loads the YAML configuration of the nativebridge tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Script engines.
const (
	EngineAuto = "auto"
	EngineJS   = "js"
	EngineTCL  = "tcl"
)

// Tree output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the tool configuration.
type Config struct {
	// Engine selects the script language. auto picks it from the file extension.
	Engine string `yaml:"engine"`
	// PreferredWidth is the width given to the application container on open.
	PreferredWidth float32 `yaml:"preferredWidth"`
	// AllocationLimit caps the number of live widgets. Zero means unlimited.
	AllocationLimit int    `yaml:"allocationLimit"`
	Output          string `yaml:"output"`
	Log             Log    `yaml:"log"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Engine:         EngineAuto,
		PreferredWidth: 1024,
		Output:         OutputJSON,
		Log: Log{
			Level: "warn",
		},
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Engine {
	case EngineAuto, EngineJS, EngineTCL:
	default:
		return fmt.Errorf("invalid engine %q: must be auto, js, or tcl", c.Engine)
	}
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q: must be json or yaml", c.Output)
	}
	if c.PreferredWidth <= 0 {
		return fmt.Errorf("invalid preferredWidth %v: must be positive", c.PreferredWidth)
	}
	if c.AllocationLimit < 0 {
		return fmt.Errorf("invalid allocationLimit %d: must not be negative", c.AllocationLimit)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// EngineFor resolves the engine for a script path.
func (c Config) EngineFor(path string) (string, error) {
	if c.Engine != EngineAuto {
		return c.Engine, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs":
		return EngineJS, nil
	case ".tcl":
		return EngineTCL, nil
	}
	return "", fmt.Errorf("cannot pick an engine for %q: use --engine", path)
}

// NewLogger builds the logger described by c.Log.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
