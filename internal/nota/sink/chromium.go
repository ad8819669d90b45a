package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dimaswi/pos-emas/internal/nota/render"
)

// ChromiumSink converts the composed document to PDF through a Chromium-based
// HTML converter (Gotenberg) and drops the result into the print spool
// directory, where the OS print queue picks it up.
type ChromiumSink struct {
	baseURL    string
	spoolDir   string
	httpClient *http.Client
	log        *zap.Logger
}

func NewChromiumSink(baseURL, spoolDir string, log *zap.Logger) *ChromiumSink {
	return &ChromiumSink{
		baseURL:  baseURL,
		spoolDir: spoolDir,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

func (s *ChromiumSink) Present(ctx context.Context, markup, stylesheet string) (Outcome, error) {
	html := render.Compose(markup, stylesheet)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return OutcomeBlocked, err
	}
	if _, err := io.Copy(part, bytes.NewBufferString(html)); err != nil {
		return OutcomeBlocked, err
	}
	// The stylesheet's @page rule carries the exact sheet size.
	if err := writer.WriteField("preferCssPageSize", "true"); err != nil {
		return OutcomeBlocked, err
	}
	if err := writer.Close(); err != nil {
		return OutcomeBlocked, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/forms/chromium/convert/html", s.baseURL), body)
	if err != nil {
		return OutcomeBlocked, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return OutcomeBlocked, fmt.Errorf("print surface unreachable: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return OutcomeBlocked, fmt.Errorf("print surface refused with status %d", resp.StatusCode)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return OutcomeBlocked, err
	}

	if err := os.MkdirAll(s.spoolDir, 0o755); err != nil {
		return OutcomeBlocked, err
	}
	name := filepath.Join(s.spoolDir, fmt.Sprintf("nota-%s.pdf", uuid.New().String()))
	if err := os.WriteFile(name, pdf, 0o644); err != nil {
		return OutcomeBlocked, err
	}

	s.log.Info("nota spooled for printing",
		zap.String("file", name),
		zap.Int("bytes", len(pdf)),
	)
	return OutcomeStarted, nil
}
