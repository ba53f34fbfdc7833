package loader

import (
	"bytes"
	"path/filepath"
)

// SourceFormat identifies the textual syntax of a source document.
type SourceFormat int

const (
	// SourceFormatUnknown means the format could not be determined.
	SourceFormatUnknown SourceFormat = iota
	// SourceFormatJSON indicates a JSON source document.
	SourceFormatJSON
	// SourceFormatYAML indicates a YAML source document.
	SourceFormatYAML
)

// String returns the lowercase format name.
func (f SourceFormat) String() string {
	switch f {
	case SourceFormatJSON:
		return "json"
	case SourceFormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// detectFormatFromPath detects the source format from a file extension.
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from content bytes.
// JSON documents start with '{' or '['; anything else is treated as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
