// Package format renders numbers and dates the way the pre-printed nota
// expects them: id-ID digit grouping, long-form dates, gram weights.
//
// Every function here is PURE and NaN-safe: a malformed figure falls back to
// a zero-equivalent display instead of reaching paper as "NaN".
package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Rupiah formats a monetary amount with id-ID grouping and no decimal places.
func Rupiah(v float64) string {
	if !finite(v) {
		v = 0
	}
	return printer.Sprintf("Rp %v", number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
}

// LongDate renders the long day/month-name/year form, e.g. "2 Januari 2006".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// Weight renders grams to two decimals with the "gr" suffix.
func Weight(v float64) string {
	if !finite(v) || v < 0 {
		v = 0
	}
	return printer.Sprintf("%v gr", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Purity renders a purity fraction as a whole percentage, blank when absent.
func Purity(p float64) string {
	if !finite(p) || p <= 0 {
		return ""
	}
	return fmt.Sprintf("%d%%", int(math.Round(p*100)))
}

// ItemTitle is the item-name cell on the form: display name followed by the
// net weight.
func ItemTitle(name string, netWeight float64) string {
	return fmt.Sprintf("%s %s", name, Weight(netWeight))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
