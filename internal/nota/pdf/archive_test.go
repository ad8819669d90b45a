package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaswi/pos-emas/internal/nota/domain"
)

func TestRender(t *testing.T) {
	w := NewArchiveWriter()
	doc := domain.PrintableDocument{
		Code: "SE-20260901-0001",
		Date: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		Items: []domain.LineItem{
			{Quantity: 1, Name: "Cincin", Karat: "22K", Purity: 0.916, NetWeight: 10.29, LinePrice: 10290000},
		},
		ValidationURL: "https://toko.example.com/validate/SE-20260901-0001",
		Payment:       &domain.PaymentSummary{GrandTotal: 10290000},
	}
	pages := []domain.Page{{Items: doc.Items, Index: 1, TotalPages: 1, IsLast: true}}

	out, err := w.Render(context.Background(), doc, pages)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_MultiPage(t *testing.T) {
	// Exercises every row variant: header, customer lines, item rows on both
	// sheets, the total row, the QR column, and the page indicator.
	w := NewArchiveWriter()
	items := []domain.LineItem{
		{Quantity: 1, Name: "Cincin", Karat: "22K", Purity: 0.916, NetWeight: 2.5, LinePrice: 2500000},
		{Quantity: 1, Name: "Gelang", Karat: "22K", Purity: 0.916, NetWeight: 5, LinePrice: 5000000},
		{Quantity: 2, Name: "Anting", Karat: "18K", Purity: 0.75, NetWeight: 1.2, LinePrice: 1200000},
		{Quantity: 1, Name: "Kalung", Karat: "22K", Purity: 0.916, NetWeight: 8, LinePrice: 8000000},
	}
	doc := domain.PrintableDocument{
		Code:            "SE-20260901-0002",
		Date:            time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		CustomerName:    "Budi Santoso",
		CustomerAddress: "Jl. Melati No. 7",
		Items:           items,
		ValidationURL:   "https://toko.example.com/validate/SE-20260901-0002",
		Payment:         &domain.PaymentSummary{GrandTotal: 16700000},
	}
	pages := []domain.Page{
		{Items: items[0:3], Index: 1, TotalPages: 2, IsLast: false},
		{Items: items[3:4], Index: 2, TotalPages: 2, IsLast: true},
	}

	out, err := w.Render(context.Background(), doc, pages)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_NoPages(t *testing.T) {
	w := NewArchiveWriter()
	_, err := w.Render(context.Background(), domain.PrintableDocument{}, nil)
	assert.ErrorIs(t, err, domain.ErrNoItems)
}
