// Package config loads the optional agentcheck configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sigs.k8s.io/yaml"
)

const (
	KindCheckConfig = "CheckConfig"

	defaultDebounce = 500 * time.Millisecond
)

// CheckConfig is the top level document of a config file:
//
//	kind: CheckConfig
//	config:
//	  dir: ./agents
//	  output: text
//	  strict: true
//	  watch:
//	    debounce: 250ms
type CheckConfig struct {
	Config Settings `json:"config"`
}

type Settings struct {
	// Dir holds the agent documents. Relative paths resolve against the
	// config file's directory.
	Dir    string `json:"dir,omitempty"`
	Output string `json:"output,omitempty"`
	// Strict makes any diagnostic fail the run.
	Strict bool        `json:"strict,omitempty"`
	Watch  WatchConfig `json:"watch,omitempty"`
}

type WatchConfig struct {
	Debounce string `json:"debounce,omitempty"`
}

// DebounceDelay returns the parsed debounce, falling back to the default when
// unset or invalid.
func (w WatchConfig) DebounceDelay() time.Duration {
	if w.Debounce == "" {
		return defaultDebounce
	}
	d, err := time.ParseDuration(w.Debounce)
	if err != nil || d <= 0 {
		return defaultDebounce
	}
	return d
}

// Default returns the settings used when no config file is given.
func Default() *CheckConfig {
	return &CheckConfig{
		Config: Settings{
			Dir:    ".",
			Output: "text",
		},
	}
}

func (c *CheckConfig) UnmarshalJSON(data []byte) error {
	type Doppleganger CheckConfig

	tmp := (*Doppleganger)(c)
	return unmarshalWithKind(data, tmp, KindCheckConfig)
}

// unmarshalWithKind decodes data into target after checking that its "kind"
// field equals expectedKind.
func unmarshalWithKind(data []byte, target any, expectedKind string) error {
	tmp := struct {
		Kind string `json:"kind"`
	}{}

	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	if tmp.Kind != expectedKind {
		return fmt.Errorf("cannot decode kind '%s' as kind '%s'", tmp.Kind, expectedKind)
	}

	return json.Unmarshal(data, target)
}

// Read parses a config document. Relative paths are resolved against basePath.
func Read(data []byte, basePath string) (*CheckConfig, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Config.Dir == "" {
		cfg.Config.Dir = "."
	}
	if !filepath.IsAbs(cfg.Config.Dir) {
		cfg.Config.Dir = filepath.Join(basePath, cfg.Config.Dir)
	}

	return cfg, nil
}

// FromFile reads and parses the config file at path.
func FromFile(path string) (*CheckConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for '%s': %w", path, err)
	}

	cfg, err := Read(data, filepath.Dir(absPath))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	return cfg, nil
}
