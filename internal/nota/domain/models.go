// Package domain contains the transient document model used for nota printing.
//
// Nothing in this package persists: a PrintableDocument is rebuilt from the
// source transaction every time a print is invoked and discarded once the
// print surface closes.
package domain

import (
	"errors"
	"time"
)

// PrintMode selects how a multi-item transaction maps onto physical notes.
type PrintMode string

const (
	// ModeSingle prints one consolidated note, up to three items per page.
	ModeSingle PrintMode = "single"
	// ModePerItem prints one standalone note per line item, each with its
	// own validation code.
	ModePerItem PrintMode = "per_item"
)

var (
	ErrNoItems     = errors.New("nota: transaction has no printable items")
	ErrUnknownMode = errors.New("nota: unknown print mode")
	ErrSinkBlocked = errors.New("nota: print surface blocked")
)

// LineItem is the printable unit of a transaction. It is owned by the
// transaction that produced it and is never mutated once printed.
type LineItem struct {
	Quantity     int
	Name         string
	Karat        string
	CategoryCode string
	Purity       float64 // fraction in (0,1]; 0 when unknown
	NetWeight    float64 // grams
	LinePrice    float64
}

// PaymentSummary is the optional payment block carried by the last page.
// The physical form only prints the grand total line.
type PaymentSummary struct {
	Subtotal     float64
	Discount     float64
	GrandTotal   float64
	PaidAmount   float64
	ChangeAmount float64
	Method       string
}

// PrintableDocument is one printable note: a consolidated multi-item note in
// single mode, or one note per item in per-item mode (code and validation URL
// then carry a 1-based item suffix).
type PrintableDocument struct {
	Code            string
	Date            time.Time
	CustomerName    string
	CustomerAddress string
	Items           []LineItem
	ValidationURL   string
	Payment         *PaymentSummary
}

// Page is an ordered subset of at most three items belonging to one document.
// Only the last page carries the payment summary.
type Page struct {
	Items      []LineItem
	Index      int // 1-based
	TotalPages int
	IsLast     bool
}
