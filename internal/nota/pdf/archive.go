// Package pdf renders a plain-paper archive copy of a nota. The pre-printed
// form path goes through the HTML renderer; this rendition redraws labels and
// rules so the copy is readable on blank stock.
package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dimaswi/pos-emas/internal/nota/domain"
	"github.com/dimaswi/pos-emas/internal/nota/format"
)

// Sheet size in millimeters, matching the nota stock.
const (
	pageWidthMm  = 165.0
	pageHeightMm = 105.0
)

type ArchiveWriter struct{}

func NewArchiveWriter() *ArchiveWriter {
	return &ArchiveWriter{}
}

// Render produces one PDF with one sheet per nota page.
func (w *ArchiveWriter) Render(_ context.Context, doc domain.PrintableDocument, pages []domain.Page) ([]byte, error) {
	if len(pages) == 0 {
		return nil, domain.ErrNoItems
	}

	cfg := config.NewBuilder().
		WithDimensions(pageWidthMm, pageHeightMm).
		WithLeftMargin(10).
		WithTopMargin(8).
		WithRightMargin(10).
		WithBottomMargin(8).
		Build()

	m := maroto.New(cfg)
	for _, p := range pages {
		m.AddPages(w.buildPage(doc, p))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate archive pdf: %w", err)
	}
	return out.GetBytes(), nil
}

func (w *ArchiveWriter) buildPage(doc domain.PrintableDocument, p domain.Page) core.Page {
	pg := page.New()

	pg.Add(row.New(10).Add(
		text.NewCol(6, doc.Code, props.Text{Size: 11, Style: fontstyle.Bold}),
		text.NewCol(6, format.LongDate(doc.Date), props.Text{Size: 10, Align: align.Right}),
	))

	if doc.CustomerName != "" {
		pg.Add(row.New(6).Add(
			col.New(6),
			text.NewCol(6, doc.CustomerName, props.Text{Size: 9, Align: align.Right}),
		))
	}
	if doc.CustomerAddress != "" {
		pg.Add(row.New(6).Add(
			col.New(6),
			text.NewCol(6, doc.CustomerAddress, props.Text{Size: 8, Align: align.Right}),
		))
	}

	pg.Add(row.New(6).Add(
		text.NewCol(1, "Qty", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(5, "Nama Barang", props.Text{Size: 8, Style: fontstyle.Bold}),
		text.NewCol(2, "Kadar", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(2, "Berat", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Harga", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
	))

	for _, item := range p.Items {
		title := item.Name
		if item.Karat != "" {
			title = title + " " + item.Karat
		}
		pg.Add(row.New(7).Add(
			text.NewCol(1, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 8, Align: align.Center}),
			text.NewCol(5, format.ItemTitle(title, item.NetWeight), props.Text{Size: 8}),
			text.NewCol(2, format.Purity(item.Purity), props.Text{Size: 8, Align: align.Center}),
			text.NewCol(2, format.Weight(item.NetWeight), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, format.Rupiah(item.LinePrice), props.Text{Size: 8, Align: align.Right}),
		))
	}

	if p.IsLast && doc.Payment != nil {
		pg.Add(row.New(9).Add(
			col.New(7),
			text.NewCol(2, "Total", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.NewCol(3, format.Rupiah(doc.Payment.GrandTotal), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		))
	}

	if doc.ValidationURL != "" {
		pg.Add(row.New(16).Add(
			col.New(10),
			code.NewQrCol(2, doc.ValidationURL, props.Rect{Center: true, Percent: 90}),
		))
	}

	if p.TotalPages > 1 {
		pg.Add(row.New(5).Add(
			text.NewCol(12, fmt.Sprintf("Hal. %d/%d", p.Index, p.TotalPages), props.Text{Size: 7}),
		))
	}

	return pg
}
