package loader

import (
	"fmt"
	"io"
)

// Default resource limits.
const (
	// DefaultMaxInputSize is the maximum accepted source size (10 MiB).
	DefaultMaxInputSize int64 = 10 * 1024 * 1024
	// DefaultMaxDepth is the maximum accepted nesting depth of the value tree.
	DefaultMaxDepth = 100
)

// Option is a function that configures a load operation.
type Option func(*config) error

// config holds configuration for a load operation.
type config struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Source identification; overrides the path reported in errors and results
	sourceName *string

	logger Logger

	// Resource limits (0 means use default)
	maxInputSize int64
	maxDepth     int
}

// WithFilePath loads the document from the given file path.
func WithFilePath(path string) Option {
	return func(cfg *config) error {
		if err := cfg.checkNoSource(); err != nil {
			return err
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader loads the document from r.
func WithReader(r io.Reader) Option {
	return func(cfg *config) error {
		if err := cfg.checkNoSource(); err != nil {
			return err
		}
		if r == nil {
			return fmt.Errorf("reader must not be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes loads the document from data.
func WithBytes(data []byte) Option {
	return func(cfg *config) error {
		if err := cfg.checkNoSource(); err != nil {
			return err
		}
		if data == nil {
			return fmt.Errorf("bytes must not be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithSourceName overrides the source path reported in results and errors.
// Useful with WithReader and WithBytes, where no file path exists.
func WithSourceName(name string) Option {
	return func(cfg *config) error {
		cfg.sourceName = &name
		return nil
	}
}

// WithLogger sets the logger used during loading.
// The default is [NopLogger].
func WithLogger(logger Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithMaxInputSize sets the maximum accepted source size in bytes.
func WithMaxInputSize(size int64) Option {
	return func(cfg *config) error {
		if size <= 0 {
			return fmt.Errorf("max input size must be positive, got %d", size)
		}
		cfg.maxInputSize = size
		return nil
	}
}

// WithMaxDepth sets the maximum accepted nesting depth of the value tree.
// The document model recurses once per nesting level with no built-in
// limit, so the loader bounds depth before decoding begins.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) error {
		if depth <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		cfg.maxDepth = depth
		return nil
	}
}

func (cfg *config) checkNoSource() error {
	if cfg.filePath != nil || cfg.reader != nil || cfg.bytes != nil {
		return fmt.Errorf("multiple input sources specified")
	}
	return nil
}

// applyOptions builds a validated config from the given options.
func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		logger:       NopLogger{},
		maxInputSize: DefaultMaxInputSize,
		maxDepth:     DefaultMaxDepth,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.filePath == nil && cfg.reader == nil && cfg.bytes == nil {
		return nil, fmt.Errorf("no input source specified")
	}
	return cfg, nil
}
