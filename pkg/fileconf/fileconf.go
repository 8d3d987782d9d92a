// Package fileconf decodes small YAML or JSON registry files picked by extension.
package fileconf

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type decoder struct {
	name string
	exts []string
	fn   func([]byte, any) error
}

var decoders = []decoder{
	{name: "yaml", exts: []string{".yaml", ".yml"}, fn: yaml.Unmarshal},
	{name: "json", exts: []string{".json"}, fn: json.Unmarshal},
}

func (d decoder) handles(ext string) bool {
	for _, e := range d.exts {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads path and decodes it into T. Files with a missing or unknown
// extension are tried as YAML and then JSON. what names the file in error messages.
func Load[T any](path, what string) (T, error) {
	var zero T
	path = strings.TrimSpace(path)
	if path == "" {
		return zero, fmt.Errorf("%s file path is empty", what)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("read %s file: %w", what, err)
	}
	return Decode[T](raw, filepath.Ext(path), what)
}

// Decode parses data as the format implied by ext, or tries every format
// when ext is not one of them.
func Decode[T any](data []byte, ext, what string) (T, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !knownExt(ext) {
		ext = ""
	}

	var errs []error
	for _, d := range decoders {
		if ext != "" && !d.handles(ext) {
			continue
		}
		var out T
		err := d.fn(data, &out)
		if err == nil {
			return out, nil
		}
		errs = append(errs, fmt.Errorf("decode %s %s: %w", d.name, what, err))
	}

	var zero T
	return zero, errors.Join(errs...)
}

func knownExt(ext string) bool {
	for _, d := range decoders {
		if d.handles(ext) {
			return true
		}
	}
	return false
}
