package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	muverrors "github.com/muv-academia/muv/pkg/errors"
)

// Format is a content file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("content: unsupported file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Load reads a page from path. Top-level sections absent from the file keep
// their Default values; a section present in the file replaces the default
// section as a whole. The result is validated.
func Load(path string) (*Page, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, &muverrors.Error{Op: "content.Load", Kind: muverrors.KindContent, Path: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &muverrors.Error{Op: "content.Load", Kind: muverrors.KindContent, Path: path, Err: err}
	}
	page, err := Parse(data, format)
	if err != nil {
		return nil, &muverrors.Error{Op: "content.Load", Kind: muverrors.KindContent, Path: path, Err: err}
	}
	return page, nil
}

// Parse decodes data, fills missing sections from Default and validates the
// result.
func Parse(data []byte, format Format) (*Page, error) {
	page := &Page{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(page); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(page); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("content: unknown format %q", format)
	}
	fillDefaults(page, Default())
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}

// fillDefaults copies every zero top-level section of def into page.
func fillDefaults(page, def *Page) {
	pv := reflect.ValueOf(page).Elem()
	dv := reflect.ValueOf(def).Elem()
	for i := 0; i < pv.NumField(); i++ {
		if pv.Field(i).IsZero() {
			pv.Field(i).Set(dv.Field(i))
		}
	}
}

// Encode writes page in the given format.
func Encode(page *Page, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(page); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		return toml.Marshal(page)
	default:
		return nil, fmt.Errorf("content: unknown format %q", format)
	}
}
