// Package catalog loads crop catalogs from JSON, YAML, TOML and XLSX files.
// Every format is normalized to a JSON document and checked against the
// embedded crop schema before it is decoded into domain.Crop values.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/ft-calc/internal/domain"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed crops.schema.json
var schemaBytes []byte

const schemaURL = "crops.schema.json"

// Ensure Loader implements domain.CatalogLoader.
var _ domain.CatalogLoader = (*Loader)(nil)

// Catalog file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatXLSX = "xlsx"
)

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaBytes)); err != nil {
		return nil, fmt.Errorf("add catalog schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// Loader reads crop catalogs from disk.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// FormatOf returns the catalog format implied by the file extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q (use .json, .yaml, .yml, .toml or .xlsx)", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads, validates and decodes the catalog at path.
func (l *Loader) Load(path string) ([]domain.Crop, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return Parse(format, data)
}

// Parse decodes catalog data in the given format.
func Parse(format string, data []byte) ([]domain.Crop, error) {
	doc, err := decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogParse, err)
	}

	normalized, err := json.Marshal(unwrapCrops(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogParse, err)
	}

	if err := validate(normalized); err != nil {
		return nil, err
	}

	var crops []domain.Crop
	if err := json.Unmarshal(normalized, &crops); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogParse, err)
	}
	for i, c := range crops {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w: /%d: %w", domain.ErrCatalogInvalid, i, err)
		}
	}
	if crops == nil {
		crops = []domain.Crop{}
	}
	return crops, nil
}

// decode parses data into a generic document.
func decode(format string, data []byte) (any, error) {
	var doc any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected data after the catalog document")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, errors.New("catalog must be a single YAML document")
		}
	case FormatTOML:
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
		doc = table
	case FormatXLSX:
		rows, err := readSheet(data)
		if err != nil {
			return nil, err
		}
		doc = rows
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return doc, nil
}

// unwrapCrops accepts both a bare list and a document with a top-level "crops" key.
func unwrapCrops(doc any) any {
	if m, ok := doc.(map[string]any); ok {
		if crops, ok := m["crops"]; ok {
			return crops
		}
	}
	return doc
}

// validate checks a normalized JSON document against the crop schema.
func validate(normalized []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.UseNumber()
	var instance any
	if err := dec.Decode(&instance); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCatalogParse, err)
	}

	if err := schema.Validate(instance); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return formatValidationError(validationErr)
		}
		return fmt.Errorf("%w: %w", domain.ErrCatalogInvalid, err)
	}
	return nil
}

// formatValidationError flattens a schema validation error into one message per location.
func formatValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCatalogInvalid, err.Message)
	}
	return fmt.Errorf("%w:\n  %s", domain.ErrCatalogInvalid, strings.Join(messages, "\n  "))
}
