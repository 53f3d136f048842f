// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citation-engine/pkg/types"
)

// Format identifies the encoding of a record file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var (
	// ErrUnsupportedFormat is returned for file extensions Load cannot read.
	ErrUnsupportedFormat = errors.New("unsupported record file format")

	// ErrNoRecords is returned when a file decodes to no records.
	ErrNoRecords = errors.New("no records found")
)

// document is a file holding a list of records under "records".
type document struct {
	Records []entry `yaml:"records" toml:"records" json:"records"`
}

// FormatFromPath chooses the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads the records in the file at path.
func Load(path string) ([]types.Record, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record file: %w", err)
	}
	recs, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Decode parses records from data. The data may hold a single record at top
// level, a "records" list, or (YAML and JSON only) a bare list of records.
func Decode(data []byte, f Format) ([]types.Record, error) {
	var (
		entries []entry
		err     error
	)
	switch f {
	case FormatYAML:
		entries, err = decodeYAML(data)
	case FormatJSON:
		entries, err = decodeJSON(data)
	case FormatTOML:
		entries, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}

	recs := make([]types.Record, 0, len(entries))
	for _, e := range entries {
		if e.isZero() {
			continue
		}
		recs = append(recs, e.toRecord())
	}
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}
	return recs, nil
}

func decodeYAML(data []byte) ([]entry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	node := root.Content[0]
	if node.Kind == yaml.SequenceNode {
		var entries []entry
		if err := node.Decode(&entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	var doc document
	if err := node.Decode(&doc); err != nil {
		return nil, err
	}
	if len(doc.Records) > 0 {
		return doc.Records, nil
	}
	var e entry
	if err := node.Decode(&e); err != nil {
		return nil, err
	}
	return []entry{e}, nil
}

func decodeJSON(data []byte) ([]entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var entries []entry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	if len(doc.Records) > 0 {
		return doc.Records, nil
	}
	var e entry
	if err := json.Unmarshal(trimmed, &e); err != nil {
		return nil, err
	}
	return []entry{e}, nil
}

func decodeTOML(data []byte) ([]entry, error) {
	var doc document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, err
	}
	if len(doc.Records) > 0 {
		return doc.Records, nil
	}
	var e entry
	if _, err := toml.Decode(string(data), &e); err != nil {
		return nil, err
	}
	return []entry{e}, nil
}
