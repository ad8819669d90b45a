// Package service orchestrates nota printing: document assembly, pagination,
// validation-code issuance, rendering, and dispatch to the print surface.
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dimaswi/pos-emas/internal/config"
	"github.com/dimaswi/pos-emas/internal/nota/domain"
	"github.com/dimaswi/pos-emas/internal/nota/paginate"
	"github.com/dimaswi/pos-emas/internal/nota/pdf"
	"github.com/dimaswi/pos-emas/internal/nota/qr"
	"github.com/dimaswi/pos-emas/internal/nota/render"
	"github.com/dimaswi/pos-emas/internal/nota/sink"
	"github.com/dimaswi/pos-emas/internal/observability/metrics"
	txdomain "github.com/dimaswi/pos-emas/internal/transaction/domain"
)

type Params struct {
	fx.In

	Transactions txdomain.Repository
	Renderer     render.Renderer
	Encoder      qr.Encoder
	Sink         sink.DocumentSink
	Archive      *pdf.ArchiveWriter
	Config       config.Config
	Log          *zap.Logger
	Metrics      *metrics.NotaMetrics
}

type Service struct {
	transactions txdomain.Repository
	renderer     render.Renderer
	encoder      qr.Encoder
	sink         sink.DocumentSink
	archive      *pdf.ArchiveWriter
	baseURL      string
	archiveDir   string
	log          *zap.Logger
	metrics      *metrics.NotaMetrics
}

func NewService(p Params) domain.Service {
	return &Service{
		transactions: p.Transactions,
		renderer:     p.Renderer,
		encoder:      p.Encoder,
		sink:         p.Sink,
		archive:      p.Archive,
		baseURL:      p.Config.Nota.ValidationBaseURL,
		archiveDir:   p.Config.Nota.ArchiveDir,
		log:          p.Log,
		metrics:      p.Metrics,
	}
}

// Modes is the print-mode gate: with more than one item the operator must
// choose between one consolidated note and one note per item; with exactly
// one item there is no meaningful choice and single mode applies directly.
func (s *Service) Modes(ctx context.Context, txID snowflake.ID) (domain.ModeOptions, error) {
	tx, err := s.transactions.FindByID(ctx, txID)
	if err != nil {
		return domain.ModeOptions{}, err
	}
	if len(tx.Items) == 0 {
		return domain.ModeOptions{}, domain.ErrNoItems
	}
	if !paginate.ChoiceRequired(len(tx.Items)) {
		return domain.ModeOptions{
			Modes:          []domain.PrintMode{domain.ModeSingle},
			ChoiceRequired: false,
		}, nil
	}
	return domain.ModeOptions{
		Modes:          []domain.PrintMode{domain.ModeSingle, domain.ModePerItem},
		ChoiceRequired: true,
	}, nil
}

// Print rebuilds the printable document from the committed transaction and
// hands it to the print surface. Printing never mutates transaction state; a
// blocked surface is terminal for this invocation and surfaced as a warning.
func (s *Service) Print(ctx context.Context, txID snowflake.ID, mode domain.PrintMode) error {
	start := time.Now()

	markup, stylesheet, pageCount, err := s.compose(ctx, txID, mode)
	if err != nil {
		return err
	}

	outcome, presentErr := s.sink.Present(ctx, markup, stylesheet)
	if outcome == sink.OutcomeBlocked {
		s.metrics.DispatchBlocked.Inc()
		s.log.Warn("print surface blocked",
			zap.String("transaction_id", txID.String()),
			zap.Error(presentErr),
		)
		return fmt.Errorf("%w: %v", domain.ErrSinkBlocked, presentErr)
	}
	if presentErr != nil {
		return presentErr
	}

	s.metrics.DocumentsPrinted.WithLabelValues(string(mode)).Inc()
	s.metrics.PagesRendered.WithLabelValues(string(mode)).Add(float64(pageCount))
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())

	s.log.Info("nota dispatched",
		zap.String("transaction_id", txID.String()),
		zap.String("mode", string(mode)),
		zap.Int("pages", pageCount),
	)
	return nil
}

// Preview runs the same pipeline but returns the composed document instead of
// dispatching it.
func (s *Service) Preview(ctx context.Context, txID snowflake.ID, mode domain.PrintMode) (string, error) {
	markup, stylesheet, _, err := s.compose(ctx, txID, mode)
	if err != nil {
		return "", err
	}
	return render.Compose(markup, stylesheet), nil
}

// ArchivePDF writes a plain-paper PDF copy of the consolidated note and
// returns its bytes.
func (s *Service) ArchivePDF(ctx context.Context, txID snowflake.ID) ([]byte, error) {
	tx, err := s.transactions.FindByID(ctx, txID)
	if err != nil {
		return nil, err
	}
	items := toLineItems(tx.Items)
	if len(items) == 0 {
		return nil, domain.ErrNoItems
	}

	pages, err := paginate.Paginate(items, domain.ModeSingle)
	if err != nil {
		return nil, err
	}
	doc := s.buildDocument(tx, items)
	if s.baseURL != "" {
		doc.ValidationURL = qr.ValidationURL(s.baseURL, tx.Code, -1)
	}

	out, err := s.archive.Render(ctx, doc, pages)
	if err != nil {
		return nil, err
	}

	if s.archiveDir != "" {
		if err := os.MkdirAll(s.archiveDir, 0o755); err != nil {
			return nil, err
		}
		name := filepath.Join(s.archiveDir, fmt.Sprintf("%s.pdf", tx.Code))
		if err := os.WriteFile(name, out, 0o644); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// compose builds the full print document: one consolidated note in single
// mode, or one standalone note per item. It is invoked fresh on every print,
// so a reprint re-derives everything from the source transaction.
func (s *Service) compose(ctx context.Context, txID snowflake.ID, mode domain.PrintMode) (markup, stylesheet string, pageCount int, err error) {
	tx, err := s.transactions.FindByID(ctx, txID)
	if err != nil {
		return "", "", 0, err
	}
	items := toLineItems(tx.Items)
	if len(items) == 0 {
		return "", "", 0, domain.ErrNoItems
	}

	pages, err := paginate.Paginate(items, mode)
	if err != nil {
		return "", "", 0, err
	}
	stylesheet = s.renderer.Stylesheet()

	parts := make([]string, 0, len(pages))
	switch mode {
	case domain.ModeSingle:
		doc := s.buildDocument(tx, items)
		dataURL, qErr := s.issueQR(ctx, tx.Code, -1, &doc)
		if qErr != nil {
			return "", "", 0, qErr
		}
		for _, page := range pages {
			block, rErr := s.renderer.RenderPage(doc, page, mode, dataURL)
			if rErr != nil {
				return "", "", 0, rErr
			}
			parts = append(parts, block)
		}

	case domain.ModePerItem:
		// One document per item, built in item order so the validation
		// suffix -{i+1} always maps to the item at position i.
		for i, page := range pages {
			doc := s.buildItemDocument(tx, items[i], i)
			dataURL, qErr := s.issueQR(ctx, tx.Code, i, &doc)
			if qErr != nil {
				return "", "", 0, qErr
			}
			block, rErr := s.renderer.RenderPage(doc, page, mode, dataURL)
			if rErr != nil {
				return "", "", 0, rErr
			}
			parts = append(parts, block)
		}
	}

	return strings.Join(parts, "\n"), stylesheet, len(pages), nil
}

// issueQR renders the validation raster for one document. A missing base URL
// degrades gracefully: the note prints without a scannable code.
func (s *Service) issueQR(ctx context.Context, code string, itemIndex int, doc *domain.PrintableDocument) (string, error) {
	if s.baseURL == "" {
		return "", nil
	}
	url := qr.ValidationURL(s.baseURL, code, itemIndex)
	doc.ValidationURL = url
	png, err := s.encoder.Encode(ctx, url, qr.RasterSize)
	if err != nil {
		return "", fmt.Errorf("issue validation code: %w", err)
	}
	s.metrics.QRIssued.Inc()
	return qr.DataURL(png), nil
}

func (s *Service) buildDocument(tx *txdomain.Transaction, items []domain.LineItem) domain.PrintableDocument {
	doc := domain.PrintableDocument{
		Code:  tx.Code,
		Date:  tx.CreatedAt,
		Items: items,
		Payment: &domain.PaymentSummary{
			Subtotal:     tx.Subtotal,
			Discount:     tx.Discount,
			GrandTotal:   tx.GrandTotal,
			PaidAmount:   tx.PaidAmount,
			ChangeAmount: tx.ChangeAmount,
			Method:       tx.PaymentMethod,
		},
	}
	if tx.Member != nil {
		doc.CustomerName = tx.Member.Name
		doc.CustomerAddress = tx.Member.Address
	}
	return doc
}

// buildItemDocument makes one standalone per-item note. Its total is the
// item's own price, not a share of the transaction grand total: each physical
// note must stand alone as a complete sales document.
func (s *Service) buildItemDocument(tx *txdomain.Transaction, item domain.LineItem, index int) domain.PrintableDocument {
	doc := domain.PrintableDocument{
		Code:  fmt.Sprintf("%s-%d", tx.Code, index+1),
		Date:  tx.CreatedAt,
		Items: []domain.LineItem{item},
		Payment: &domain.PaymentSummary{
			Subtotal:   item.LinePrice,
			GrandTotal: item.LinePrice,
			Method:     tx.PaymentMethod,
		},
	}
	if tx.Member != nil {
		doc.CustomerName = tx.Member.Name
		doc.CustomerAddress = tx.Member.Address
	}
	return doc
}

func toLineItems(items []txdomain.TransactionItem) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.LineItem{
			Quantity:     item.Quantity,
			Name:         item.Name,
			Karat:        item.CategoryName,
			CategoryCode: item.CategoryCode,
			Purity:       item.Purity,
			NetWeight:    item.NetWeight,
			LinePrice:    item.LinePrice,
		})
	}
	return out
}
