package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	muverrors "github.com/muv-academia/muv/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	page := Default()
	if err := page.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if len(page.Program.Stats) != 1 || page.Program.Stats[0].Target != 100 {
		t.Errorf("Program.Stats = %+v, want the 100 children badge", page.Program.Stats)
	}
	want := []string{"Jiu-Jitsu", "Funcional", "Boxe", "MMA"}
	got := page.Modalities()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Modalities = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Page)
		want   string
	}{
		{"negative target", func(p *Page) { p.Program.Stats[0].Target = -1 }, "negative target"},
		{"negative duration", func(p *Page) { p.Program.Stats[0].DurationMs = -5 }, "negative duration"},
		{"empty nav", func(p *Page) { p.Nav = nil }, "navigation has no items"},
		{"duplicate anchor", func(p *Page) { p.Contact.Anchor = "soma" }, "duplicate anchor"},
		{"unknown nav anchor", func(p *Page) { p.Nav[0].Anchor = "precos" }, "unknown anchor"},
		{"too many stars", func(p *Page) { p.Testimonials.Items[0].Stars = 6 }, "6 stars"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Default()
			tt.mutate(page)
			err := page.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestParseYAMLOverridesSection(t *testing.T) {
	data := []byte(`
program:
  anchor: soma
  title: Projeto SOMA
  stats:
    - label: Crianças atendidas
      target: 150
    - label: Faixas entregues
      target: 40
      duration_ms: 800
`)
	page, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(page.Program.Stats) != 2 || page.Program.Stats[1].DurationMs != 800 {
		t.Errorf("Stats = %+v", page.Program.Stats)
	}
	if page.Program.Description != "" {
		t.Errorf("a section in the file replaces the default section, got description %q", page.Program.Description)
	}
	if page.Hero.Headline != Default().Hero.Headline {
		t.Errorf("missing sections should keep defaults, Hero = %+v", page.Hero)
	}
}

func TestParseYAMLEmpty(t *testing.T) {
	page, err := Parse(nil, FormatYAML)
	if err != nil {
		t.Fatalf("Parse(empty): %v", err)
	}
	if page.Meta.Brand != "MUV" {
		t.Errorf("Brand = %q, want defaults", page.Meta.Brand)
	}
}

func TestParseYAMLUnknownField(t *testing.T) {
	_, err := Parse([]byte("hero:\n  subtitle: nope\n"), FormatYAML)
	if err == nil {
		t.Fatal("expected unknown field to fail")
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[meta]
brand = "MUV NH"

[[nav]]
label = "Contato"
anchor = "contato"

[program]
anchor = "soma"
title = "Projeto SOMA"

[[program.stats]]
label = "Crianças atendidas"
target = 120
`)
	page, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if page.Meta.Brand != "MUV NH" {
		t.Errorf("Brand = %q", page.Meta.Brand)
	}
	if len(page.Nav) != 1 {
		t.Errorf("Nav = %+v, want exactly the file's item", page.Nav)
	}
	if page.Program.Stats[0].Target != 120 {
		t.Errorf("Target = %d, want 120", page.Program.Stats[0].Target)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	data := []byte("program:\n  anchor: soma\n  stats:\n    - label: x\n      target: -3\n")
	if _, err := Parse(data, FormatYAML); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "page.yml")
	if err := os.WriteFile(yamlPath, []byte("meta:\n  brand: MUV\n  lang: pt-BR\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(yamlPath); err != nil {
		t.Errorf("Load(yaml): %v", err)
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	if muverrors.KindOf(err) != muverrors.KindContent {
		t.Errorf("missing file kind = %v, want content", muverrors.KindOf(err))
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}

	if _, err := Load(filepath.Join(dir, "page.json")); err == nil {
		t.Error("expected unsupported extension error")
	}
}

func TestEncodeThenParse(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		data, err := Encode(Default(), format)
		if err != nil {
			t.Fatalf("Encode(%s): %v", format, err)
		}
		page, err := Parse(data, format)
		if err != nil {
			t.Fatalf("Parse(%s): %v", format, err)
		}
		if page.Program.Stats[0].Label != "Crianças atendidas" {
			t.Errorf("%s: stats lost in encoding: %+v", format, page.Program.Stats)
		}
	}
}
