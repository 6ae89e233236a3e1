// Package config resolves muv settings from muv.yaml, MUV_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	muverrors "github.com/muv-academia/muv/pkg/errors"
	"github.com/muv-academia/muv/pkg/log"
)

// FileName is the optional project configuration file.
const FileName = "muv.yaml"

// Config represents the optional muv.yaml configuration.
type Config struct {
	Content   ContentConfig   `yaml:"content"`
	Log       LogConfig       `yaml:"log"`
	Animation AnimationConfig `yaml:"animation"`
}

// ContentConfig selects the page content.
type ContentConfig struct {
	Path  string `yaml:"path,omitempty"`
	Watch *bool  `yaml:"watch,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// AnimationConfig contains count-up settings.
type AnimationConfig struct {
	Duration string `yaml:"duration,omitempty"`
}

// Settings are the values flags bind to. Flag names match the keys used in
// the changed map.
type Settings struct {
	ContentPath string
	Watch       bool
	LogLevel    string
	LogFile     string
	Duration    time.Duration
}

// Default returns the settings used when nothing overrides them.
func Default() Settings {
	return Settings{LogLevel: "info"}
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string
	ContentPath string
	Watch       bool
	LogLevel    zerolog.Level
	LogFile     string
	Duration    time.Duration
}

// LoadOptional reads muv.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &muverrors.Error{Op: "config.LoadOptional", Kind: muverrors.KindConfig, Path: path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &muverrors.Error{Op: "config.LoadOptional", Kind: muverrors.KindConfig, Path: path, Err: err}
	}
	return &cfg, nil
}

// Resolve layers muv.yaml from dir and the MUV_* environment under s,
// skipping every flag named in changed, then validates the result.
func Resolve(dir string, s Settings, changed map[string]bool) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	if err := ApplyFile(&s, cfg, changed); err != nil {
		return nil, err
	}
	if err := ApplyEnv(&s, changed, os.Getenv); err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, muverrors.E("config.Resolve", muverrors.KindConfig, err)
	}
	if s.Duration < 0 {
		return nil, muverrors.E("config.Resolve", muverrors.KindConfig, fmt.Errorf("duration must not be negative: %v", s.Duration))
	}
	if s.Watch && s.ContentPath == "" {
		return nil, muverrors.E("config.Resolve", muverrors.KindConfig, errors.New("watch requires a content file"))
	}

	return &Resolved{
		Root:        dir,
		ContentPath: resolvePath(dir, s.ContentPath),
		Watch:       s.Watch,
		LogLevel:    level,
		LogFile:     resolvePath(dir, s.LogFile),
		Duration:    s.Duration,
	}, nil
}

// ApplyFile copies values set in cfg into s unless the matching flag was
// set explicitly.
func ApplyFile(s *Settings, cfg *Config, changed map[string]bool) error {
	set := setter{changed: changed}

	set.str("content", strings.TrimSpace(cfg.Content.Path), &s.ContentPath)
	set.boolPtr("watch", cfg.Content.Watch, &s.Watch)
	set.str("log-level", strings.TrimSpace(cfg.Log.Level), &s.LogLevel)
	set.str("log-file", strings.TrimSpace(cfg.Log.File), &s.LogFile)
	return set.duration("duration", strings.TrimSpace(cfg.Animation.Duration), &s.Duration)
}

// ApplyEnv applies MUV_* variables read through getenv. Explicit flags win.
func ApplyEnv(s *Settings, changed map[string]bool, getenv func(string) string) error {
	set := setter{changed: changed}

	set.str("content", getenv("MUV_CONTENT"), &s.ContentPath)
	if err := set.boolString("watch", getenv("MUV_WATCH"), &s.Watch); err != nil {
		return err
	}
	set.str("log-level", getenv("MUV_LOG_LEVEL"), &s.LogLevel)
	set.str("log-file", getenv("MUV_LOG_FILE"), &s.LogFile)
	return set.duration("duration", getenv("MUV_DURATION"), &s.Duration)
}

// FindProjectRoot walks up from the current directory looking for muv.yaml.
// Without one it returns the current directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// setter applies a value only when it is present and its flag was not
// changed on the command line.
type setter struct {
	changed map[string]bool
}

func (s setter) str(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s setter) boolPtr(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s setter) boolString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return muverrors.E("config", muverrors.KindConfig, fmt.Errorf("parse %s: %w", flag, err))
	}
	*dst = b
	return nil
}

func (s setter) duration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return muverrors.E("config", muverrors.KindConfig, fmt.Errorf("parse %s: %w", flag, err))
	}
	*dst = d
	return nil
}
