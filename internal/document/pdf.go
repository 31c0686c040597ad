package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

type pdfReader struct {
	logger *zap.Logger
}

func (r pdfReader) ReadText(ctx context.Context, content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	return joinPages(ctx, reader.NumPage(), func(i int) (string, error) {
		page := reader.Page(i)
		if page.V.IsNull() {
			return "", nil
		}
		return page.GetPlainText(make(map[string]*pdf.Font))
	}, r.logger)
}

// joinPages concatenates pages 1..n. Pages that fail to decode are skipped.
func joinPages(ctx context.Context, n int, page func(int) (string, error), logger *zap.Logger) (string, error) {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := page(i)
		if err != nil {
			logger.Debug("skipping unreadable pdf page", zap.Int("page", i), zap.Error(err))
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("pdf has no extractable text")
	}
	return out, nil
}
