package logfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromFilename picks the metadata format from a file extension,
// defaulting to JSON.
func FormatFromFilename(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadMetadata reads turbine metadata from filename.
func LoadMetadata(filename string) (*Metadata, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	meta, err := ParseMetadata(f, FormatFromFilename(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return meta, nil
}

// ParseMetadata decodes a metadata document. Absent and null fields stay nil.
func ParseMetadata(r io.Reader, format Format) (*Metadata, error) {
	meta := new(Metadata)
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(meta); err != nil {
			return nil, fmt.Errorf("decode %s metadata: %w", format, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(meta); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode %s metadata: %w", format, err)
		}
	default:
		return nil, fmt.Errorf("unsupported metadata format %d", format)
	}
	return meta, nil
}
