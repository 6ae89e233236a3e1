package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	muverrors "github.com/muv-academia/muv/pkg/errors"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"MUV_CONTENT", "MUV_WATCH", "MUV_LOG_LEVEL", "MUV_LOG_FILE", "MUV_DURATION"} {
		t.Setenv(k, "")
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Content.Path != "" || cfg.Content.Watch != nil {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadOptional_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "content: [unterminated")

	_, err := LoadOptional(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if muverrors.KindOf(err) != muverrors.KindConfig {
		t.Errorf("expected config kind, got %v", muverrors.KindOf(err))
	}
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	r, err := Resolve(dir, Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.ContentPath != "" || r.Watch || r.Duration != 0 {
		t.Errorf("unexpected resolved config %+v", r)
	}
	if r.LogLevel != zerolog.InfoLevel {
		t.Errorf("expected info level, got %v", r.LogLevel)
	}
	if r.Root != dir {
		t.Errorf("root = %q, want %q", r.Root, dir)
	}
}

func TestResolve_FileValues(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
content:
  path: page.yaml
  watch: true
log:
  level: debug
  file: muv.log
animation:
  duration: 2s
`)

	r, err := Resolve(dir, Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.ContentPath != filepath.Join(dir, "page.yaml") {
		t.Errorf("content path = %q", r.ContentPath)
	}
	if !r.Watch {
		t.Error("expected watch from file")
	}
	if r.LogLevel != zerolog.DebugLevel {
		t.Errorf("level = %v", r.LogLevel)
	}
	if r.LogFile != filepath.Join(dir, "muv.log") {
		t.Errorf("log file = %q", r.LogFile)
	}
	if r.Duration != 2*time.Second {
		t.Errorf("duration = %v", r.Duration)
	}
}

func TestResolve_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
content:
  path: from-file.yaml
log:
  level: debug
animation:
  duration: 2s
`)
	t.Setenv("MUV_LOG_LEVEL", "warn")
	t.Setenv("MUV_DURATION", "3s")

	s := Default()
	s.Duration = 500 * time.Millisecond
	changed := map[string]bool{"duration": true}

	r, err := Resolve(dir, s, changed)
	if err != nil {
		t.Fatal(err)
	}
	if r.ContentPath != filepath.Join(dir, "from-file.yaml") {
		t.Errorf("file should set content, got %q", r.ContentPath)
	}
	if r.LogLevel != zerolog.WarnLevel {
		t.Errorf("env should override file level, got %v", r.LogLevel)
	}
	if r.Duration != 500*time.Millisecond {
		t.Errorf("flag should override env and file, got %v", r.Duration)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{"bad level", "log:\n  level: loud\n", nil},
		{"bad duration", "animation:\n  duration: soon\n", nil},
		{"negative duration", "animation:\n  duration: -1s\n", nil},
		{"watch without content", "content:\n  watch: true\n", nil},
		{"bad env bool", "", map[string]string{"MUV_WATCH": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			dir := t.TempDir()
			if tt.file != "" {
				writeConfig(t, dir, tt.file)
			}
			_, err := Resolve(dir, Default(), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if muverrors.KindOf(err) != muverrors.KindConfig {
				t.Errorf("expected config kind, got %v: %v", muverrors.KindOf(err), err)
			}
		})
	}
}

func TestApplyEnv_SkipsChangedFlags(t *testing.T) {
	env := map[string]string{
		"MUV_CONTENT": "env.toml",
		"MUV_WATCH":   "1",
	}
	s := Settings{ContentPath: "flag.yaml"}

	err := ApplyEnv(&s, map[string]bool{"content": true}, func(k string) string { return env[k] })
	if err != nil {
		t.Fatal(err)
	}
	if s.ContentPath != "flag.yaml" {
		t.Errorf("changed flag overwritten: %q", s.ContentPath)
	}
	if !s.Watch {
		t.Error("expected MUV_WATCH=1 to enable watch")
	}
}

func TestResolve_AbsolutePathsKept(t *testing.T) {
	clearEnv(t)
	abs := filepath.Join(t.TempDir(), "page.toml")
	s := Default()
	s.ContentPath = abs

	r, err := Resolve(t.TempDir(), s, map[string]bool{"content": true})
	if err != nil {
		t.Fatal(err)
	}
	if r.ContentPath != abs {
		t.Errorf("content path = %q, want %q", r.ContentPath, abs)
	}
}
