package document

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create(docxBody)
	require.NoError(t, err)
	_, err = f.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestRegistryTextPlain(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.TXT")
	writeFile(t, path, []byte("Jane Doe\nSkills\nGo"))

	text, err := NewRegistry().Text(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills\nGo", text)
}

func TestRegistryTextDOCX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.docx")
	writeFile(t, path, buildDOCX(t,
		`<w:p><w:r><w:t>Jane </w:t></w:r><w:r><w:t>Doe</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Skills</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Python, SQL</w:t></w:r></w:p>`))

	text, err := NewRegistry().Text(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills\nPython, SQL", text)
}

func TestRegistryErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	unsupported := filepath.Join(dir, "resume.odt")
	writeFile(t, unsupported, []byte("text"))
	brokenDOCX := filepath.Join(dir, "broken.docx")
	writeFile(t, brokenDOCX, []byte("not a zip"))
	brokenPDF := filepath.Join(dir, "broken.pdf")
	writeFile(t, brokenPDF, []byte("not a pdf"))

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{name: "unsupported extension", path: unsupported, target: ErrUnsupportedFormat},
		{name: "corrupt docx", path: brokenDOCX, target: ErrExtractionFailure},
		{name: "corrupt pdf", path: brokenPDF, target: ErrExtractionFailure},
		{name: "missing file", path: filepath.Join(dir, "missing.txt"), target: ErrExtractionFailure},
	}

	reg := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Text(context.Background(), tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)

			var docErr *Error
			require.True(t, errors.As(err, &docErr))
			assert.Equal(t, tt.path, docErr.Path)
		})
	}
}

func TestRegistryCustomReader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.md")
	writeFile(t, path, []byte("# Title"))

	reg := NewRegistry()
	assert.False(t, reg.Supports(path))

	reg.Register("MD", ReaderFunc(func(_ context.Context, content []byte) (string, error) {
		return string(bytes.TrimPrefix(content, []byte("# "))), nil
	}))
	assert.True(t, reg.Supports(path))
	assert.Equal(t, []string{".docx", ".md", ".pdf", ".txt"}, reg.Extensions())

	text, err := reg.Text(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Title", text)
}

func TestRegistryList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), []byte("b"))
	writeFile(t, filepath.Join(dir, "a.pdf"), []byte("a"))
	writeFile(t, filepath.Join(dir, "nested", "c.docx"), []byte("c"))
	writeFile(t, filepath.Join(dir, "skip.png"), []byte("x"))

	paths, err := NewRegistry().List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "nested", "c.docx"),
	}, paths)

	_, err = NewRegistry().List(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestJoinPagesSkipsBrokenPages(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)

	pages := map[int]string{1: "first page", 3: "third page"}
	text, err := joinPages(context.Background(), 3, func(i int) (string, error) {
		if i == 2 {
			return "", errors.New("bad font")
		}
		return pages[i], nil
	}, zap.New(core))

	require.NoError(t, err)
	assert.Equal(t, "first page\nthird page", text)

	entries := observed.FilterMessage("skipping unreadable pdf page").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["page"])
}

func TestJoinPagesErrors(t *testing.T) {
	tests := []struct {
		name   string
		ctx    func() context.Context
		page   func(int) (string, error)
		errMsg string
	}{
		{
			name:   "every page broken",
			ctx:    context.Background,
			page:   func(int) (string, error) { return "", errors.New("bad font") },
			errMsg: "no extractable text",
		},
		{
			name: "cancelled",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			page:   func(int) (string, error) { return "text", nil },
			errMsg: context.Canceled.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := joinPages(tt.ctx(), 2, tt.page, zap.NewNop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
