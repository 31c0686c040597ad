// Package document turns resume and job description files into plain text.
package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrUnsupportedFormat is returned for file extensions no reader handles.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrExtractionFailure is returned when a reader fails on a supported file.
	ErrExtractionFailure = errors.New("document text extraction failed")
)

// Error reports a failure for a single document.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Reader extracts plain text from raw document bytes.
type Reader interface {
	ReadText(ctx context.Context, content []byte) (string, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(ctx context.Context, content []byte) (string, error)

func (f ReaderFunc) ReadText(ctx context.Context, content []byte) (string, error) {
	return f(ctx, content)
}

// Registry maps lower-case file extensions (".pdf") to readers.
type Registry struct {
	readers map[string]Reader
	logger  *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used by the built-in readers.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns a registry with the text, PDF and DOCX readers.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{readers: make(map[string]Reader), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	r.Register(".txt", ReaderFunc(readPlain))
	r.Register(".pdf", pdfReader{logger: r.logger})
	r.Register(".docx", ReaderFunc(readDOCX))
	return r
}

// Register adds or replaces the reader for ext.
func (r *Registry) Register(ext string, reader Reader) {
	r.readers[normalizeExt(ext)] = reader
}

// Supports reports whether path has a registered extension.
func (r *Registry) Supports(path string) bool {
	_, ok := r.readers[normalizeExt(filepath.Ext(path))]
	return ok
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.readers))
	for ext := range r.readers {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Text reads the file at path and returns its plain text. Failures are
// returned as *Error wrapping ErrUnsupportedFormat or ErrExtractionFailure.
func (r *Registry) Text(ctx context.Context, path string) (string, error) {
	reader, ok := r.readers[normalizeExt(filepath.Ext(path))]
	if !ok {
		return "", &Error{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Path: path, Err: fmt.Errorf("%w: %w", ErrExtractionFailure, err)}
	}

	text, err := reader.ReadText(ctx, content)
	if err != nil {
		return "", &Error{Path: path, Err: fmt.Errorf("%w: %w", ErrExtractionFailure, err)}
	}

	return text, nil
}

// List walks dir recursively and returns every file with a registered
// extension, in lexical order.
func (r *Registry) List(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !r.Supports(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing documents in %q: %w", dir, err)
	}

	return paths, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func readPlain(_ context.Context, content []byte) (string, error) {
	return strings.ToValidUTF8(string(content), ""), nil
}
