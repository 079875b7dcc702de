package abbrev

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a table file encoding.
type Format string

// Supported table file formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath returns the format implied by a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// File is the on-disk layout of a table. It documents the format and backs
// Schema; loading goes through a generic decode so unknown keys can be
// reported.
type File struct {
	// Abbreviations maps ordinary words to their short forms.
	Abbreviations map[string]string `json:"abbreviations" yaml:"abbreviations" toml:"abbreviations" jsonschema:"required,description=Ordinary words with common abbreviations"`

	// Directions maps compass directions to their short forms.
	Directions map[string]string `json:"directions" yaml:"directions" toml:"directions" jsonschema:"required,description=Directional words"`

	// Classifications maps road name suffixes to their short forms.
	Classifications map[string]string `json:"classifications" yaml:"classifications" toml:"classifications" jsonschema:"required,description=Road name suffixes"`
}

// Load parses a table from r.
func Load(r io.Reader, format Format) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("read: %w", err)}
	}
	t, err := parse(data, format)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return t, nil
}

// LoadFile reads and parses a table file. The format comes from the file
// extension.
func LoadFile(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("read: %w", err)}
	}

	t, err := parse(data, format)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return t, nil
}

// MustLoadFile is like LoadFile but panics on error. Use it during process
// startup where a missing table is fatal.
func MustLoadFile(path string) *Table {
	t, err := LoadFile(path)
	if err != nil {
		panic(err)
	}
	return t
}

func parse(data []byte, format Format) (*Table, error) {
	var raw map[string]map[string]string

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	m := make(map[Category]map[string]string, numCategories)
	for key, words := range raw {
		c, ok := categoryForKey(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
		}
		if words == nil {
			words = map[string]string{}
		}
		m[c] = words
	}

	return NewTable(m)
}

// categoryForKey matches only the exact table file keys.
func categoryForKey(key string) (Category, bool) {
	for _, c := range precedence {
		if categoryNames[c] == key {
			return c, true
		}
	}
	return 0, false
}
