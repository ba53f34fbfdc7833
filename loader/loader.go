// Package loader reads JSON or YAML bytes into the oasdoc document model.
//
// The loader is the collaborator responsible for everything outside the pure
// decode/encode core: reading files or streams, detecting the textual syntax,
// bounding input size and nesting depth, and surfacing structured errors.
//
//	result, err := loader.Load(loader.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.SourceFormat, result.Document.OpenAPI)
//
// Loading is all-or-nothing: a malformed nested value invalidates the whole
// document, and the returned error carries enough context (source path,
// offending key, expected kind) to report a precise location.
package loader

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdoc/docerrors"
	"github.com/erraggy/oasdoc/document"
)

// Result holds the outcome of a load operation.
type Result struct {
	// Document is the decoded typed model.
	Document *document.Document
	// Object is the raw ordered value tree the document was decoded from.
	Object *document.Object
	// SourceFormat is the detected syntax of the source.
	SourceFormat SourceFormat
	// SourcePath identifies the source (file path or WithSourceName override).
	SourcePath string
}

// Load reads a source document and decodes it into the typed model using
// functional options:
//
//	result, err := loader.Load(
//		loader.WithBytes(data),
//		loader.WithSourceName("inline.yaml"),
//		loader.WithMaxDepth(50),
//	)
func Load(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid options: %w", err)
	}

	data, sourcePath, err := readSource(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.sourceName != nil {
		sourcePath = *cfg.sourceName
	}
	log := cfg.logger.With("source", sourcePath)

	if int64(len(data)) > cfg.maxInputSize {
		return nil, &docerrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        cfg.maxInputSize,
			Actual:       int64(len(data)),
		}
	}

	format := detectFormatFromPath(sourcePath)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	log.Debug("detected source format", "format", format.String(), "size", len(data))

	obj := document.NewObject()
	switch format {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, obj); err != nil {
			return nil, &docerrors.ParseError{
				Path:    sourcePath,
				Message: "invalid JSON document",
				Cause:   err,
			}
		}
	case SourceFormatYAML:
		if err := yaml.Unmarshal(data, obj); err != nil {
			return nil, &docerrors.ParseError{
				Path:    sourcePath,
				Message: "invalid YAML document",
				Cause:   err,
			}
		}
	default:
		return nil, &docerrors.ParseError{
			Path:    sourcePath,
			Message: "empty or unrecognized document",
		}
	}

	if depth := treeDepth(obj); depth > cfg.maxDepth {
		return nil, &docerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(cfg.maxDepth),
			Actual:       int64(depth),
		}
	}

	doc := new(document.Document)
	if err := doc.DecodeObject(obj); err != nil {
		return nil, &docerrors.ParseError{
			Path:    sourcePath,
			Message: "failed to decode document",
			Cause:   err,
		}
	}
	log.Debug("decoded document", "paths", doc.Paths.Len())

	return &Result{
		Document:     doc,
		Object:       obj,
		SourceFormat: format,
		SourcePath:   sourcePath,
	}, nil
}

// readSource materializes the input bytes from whichever source was set.
func readSource(cfg *config) ([]byte, string, error) {
	switch {
	case cfg.filePath != nil:
		data, err := os.ReadFile(*cfg.filePath)
		if err != nil {
			return nil, "", &docerrors.ParseError{
				Path:    *cfg.filePath,
				Message: "failed to read file",
				Cause:   err,
			}
		}
		return data, *cfg.filePath, nil
	case cfg.reader != nil:
		// Read one byte past the limit so oversized input is detected
		// without buffering an unbounded stream.
		data, err := io.ReadAll(io.LimitReader(cfg.reader, cfg.maxInputSize+1))
		if err != nil {
			return nil, "", &docerrors.ParseError{
				Message: "failed to read input",
				Cause:   err,
			}
		}
		return data, "", nil
	default:
		return cfg.bytes, "", nil
	}
}

// treeDepth returns the nesting depth of a value tree. Scalars have depth
// zero; each object or array level adds one.
func treeDepth(v any) int {
	switch value := v.(type) {
	case *document.Object:
		deepest := 0
		for _, child := range value.Entries() {
			if d := treeDepth(child); d > deepest {
				deepest = d
			}
		}
		return deepest + 1
	case []any:
		deepest := 0
		for _, child := range value {
			if d := treeDepth(child); d > deepest {
				deepest = d
			}
		}
		return deepest + 1
	default:
		return 0
	}
}
