package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dimaswi/pos-emas/internal/nota/render"
)

// FileSink writes the composed HTML document to a directory. Used headless:
// tests, development without a converter, or manual reprint from a browser.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Present(_ context.Context, markup, stylesheet string) (Outcome, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return OutcomeBlocked, err
	}
	name := filepath.Join(s.dir, fmt.Sprintf("nota-%s.html", uuid.New().String()))
	if err := os.WriteFile(name, []byte(render.Compose(markup, stylesheet)), 0o644); err != nil {
		return OutcomeBlocked, err
	}
	return OutcomeStarted, nil
}
