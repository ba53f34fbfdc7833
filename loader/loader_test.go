package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdoc/docerrors"
)

const sampleYAML = `openapi: 3.1.0
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      summary: List pets
`

const sampleJSON = `{
	"openapi": "3.1.0",
	"paths": {"/pets": {"get": {"summary": "List pets"}}}
}`

func TestLoadYAMLBytes(t *testing.T) {
	result, err := Load(WithBytes([]byte(sampleYAML)), WithSourceName("inline.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "inline.yaml", result.SourcePath)
	require.NotNil(t, result.Document)
	assert.Equal(t, "3.1.0", result.Document.OpenAPI)
	assert.Equal(t, 1, result.Document.Paths.Len())
	require.NotNil(t, result.Object)
	assert.Equal(t, []string{"openapi", "info", "paths"}, result.Object.Keys())
}

func TestLoadJSONBytes(t *testing.T) {
	result, err := Load(WithBytes([]byte(sampleJSON)))
	require.NoError(t, err)

	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	item, ok := result.Document.Paths.Get("/pets")
	require.True(t, ok)
	assert.Equal(t, "List pets", item.Value.Get.Summary)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	result, err := Load(WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat, "format detected from extension")
	assert.Equal(t, path, result.SourcePath)
}

func TestLoadFromReader(t *testing.T) {
	result, err := Load(WithReader(strings.NewReader(sampleJSON)), WithSourceName("stream"))
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat, "format detected from content")
	assert.Equal(t, "stream", result.SourcePath)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(WithFilePath(filepath.Join(t.TempDir(), "absent.yaml")))
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrParse)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidSources(t *testing.T) {
	t.Run("no source", func(t *testing.T) {
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no input source")
	})

	t.Run("multiple sources", func(t *testing.T) {
		_, err := Load(WithBytes([]byte("{}")), WithFilePath("x.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "multiple input sources")
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := Load(WithBytes([]byte("{}")), WithLogger(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logger must not be nil")
	})

	t.Run("non-positive depth", func(t *testing.T) {
		_, err := Load(WithBytes([]byte("{}")), WithMaxDepth(0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max depth must be positive")
	})
}

func TestLoadInputSizeLimit(t *testing.T) {
	_, err := Load(WithBytes([]byte(sampleYAML)), WithMaxInputSize(8))
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrResourceLimit)

	var rlErr *docerrors.ResourceLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "input_size", rlErr.ResourceType)
	assert.Equal(t, int64(8), rlErr.Limit)
}

func TestLoadReaderSizeLimit(t *testing.T) {
	_, err := Load(WithReader(strings.NewReader(sampleJSON)), WithMaxInputSize(8))
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrResourceLimit)
}

func TestLoadNestingDepthLimit(t *testing.T) {
	// paths -> /pets -> get is three levels of nesting plus the root.
	_, err := Load(WithBytes([]byte(sampleJSON)), WithMaxDepth(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrResourceLimit)

	var rlErr *docerrors.ResourceLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "nesting_depth", rlErr.ResourceType)

	// The same document passes with a generous limit.
	_, err = Load(WithBytes([]byte(sampleJSON)), WithMaxDepth(10))
	assert.NoError(t, err)
}

func TestLoadMalformedDocuments(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		_, err := Load(WithBytes([]byte(`{"openapi": `)))
		require.Error(t, err)
		assert.ErrorIs(t, err, docerrors.ErrParse)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		_, err := Load(WithBytes([]byte("a: [1, 2\n")))
		require.Error(t, err)
		assert.ErrorIs(t, err, docerrors.ErrParse)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Load(WithBytes([]byte("   \n")))
		require.Error(t, err)
		assert.ErrorIs(t, err, docerrors.ErrParse)
	})

	t.Run("wrong field shape surfaces the offending key", func(t *testing.T) {
		_, err := Load(WithBytes([]byte(`{"openapi": 3}`)), WithSourceName("bad.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, docerrors.ErrParse)
		assert.ErrorIs(t, err, docerrors.ErrTypeMismatch)

		var tmErr *docerrors.TypeMismatchError
		require.ErrorAs(t, err, &tmErr)
		assert.Equal(t, "openapi", tmErr.Key)

		var pErr *docerrors.ParseError
		require.ErrorAs(t, err, &pErr)
		assert.Equal(t, "bad.json", pErr.Path)
	})
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		content  string
		expected SourceFormat
	}{
		{name: "json extension", path: "api.json", expected: SourceFormatJSON},
		{name: "yaml extension", path: "api.yaml", expected: SourceFormatYAML},
		{name: "yml extension", path: "api.yml", expected: SourceFormatYAML},
		{name: "unknown extension", path: "api.txt", expected: SourceFormatUnknown},
		{name: "json content", content: `  {"a": 1}`, expected: SourceFormatJSON},
		{name: "yaml content", content: "a: 1\n", expected: SourceFormatYAML},
		{name: "empty content", content: " \t\n", expected: SourceFormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.path != "" {
				assert.Equal(t, tt.expected, detectFormatFromPath(tt.path))
			} else {
				assert.Equal(t, tt.expected, detectFormatFromContent([]byte(tt.content)))
			}
		})
	}
}

func TestSourceFormatString(t *testing.T) {
	assert.Equal(t, "json", SourceFormatJSON.String())
	assert.Equal(t, "yaml", SourceFormatYAML.String())
	assert.Equal(t, "unknown", SourceFormatUnknown.String())
}
