// Package paginate splits a transaction's line items across the fixed-capacity
// pages of the pre-printed nota stock.
package paginate

import (
	"github.com/dimaswi/pos-emas/internal/nota/domain"
)

// PageCapacity is the number of item rows on one sheet of nota stock.
const PageCapacity = 3

// ChoiceRequired reports whether the operator must pick a print mode before
// printing. A single item offers no meaningful choice, so the prompt is
// skipped and single mode is used directly.
func ChoiceRequired(itemCount int) bool {
	return itemCount > 1
}

// Paginate partitions items into pages for the given mode.
//
// Single mode produces ceil(n/3) pages in order; only the final page is
// marked IsLast and carries the payment summary. Per-item mode produces one
// page per item, every page IsLast: each physical note must stand alone as a
// complete sales document with its own total.
func Paginate(items []domain.LineItem, mode domain.PrintMode) ([]domain.Page, error) {
	if len(items) == 0 {
		return nil, domain.ErrNoItems
	}

	switch mode {
	case domain.ModeSingle:
		total := (len(items) + PageCapacity - 1) / PageCapacity
		pages := make([]domain.Page, 0, total)
		for k := 1; k <= total; k++ {
			lo := (k - 1) * PageCapacity
			hi := k * PageCapacity
			if hi > len(items) {
				hi = len(items)
			}
			pages = append(pages, domain.Page{
				Items:      items[lo:hi],
				Index:      k,
				TotalPages: total,
				IsLast:     k == total,
			})
		}
		return pages, nil

	case domain.ModePerItem:
		pages := make([]domain.Page, 0, len(items))
		for i := range items {
			pages = append(pages, domain.Page{
				Items:      items[i : i+1],
				Index:      i + 1,
				TotalPages: len(items),
				IsLast:     true,
			})
		}
		return pages, nil

	default:
		return nil, domain.ErrUnknownMode
	}
}
