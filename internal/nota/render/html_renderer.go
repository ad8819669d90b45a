package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/dimaswi/pos-emas/internal/nota/domain"
	"github.com/dimaswi/pos-emas/internal/nota/format"
)

const notaPageTemplate = `<div class="nota-page">
  <div class="nota-date">{{.Date}}</div>
  {{if .CustomerName}}<div class="nota-customer-name">{{.CustomerName}}</div>{{end}}
  {{if .CustomerAddress}}<div class="nota-customer-address">{{.CustomerAddress}}</div>{{end}}
  <table class="nota-items">
    <tbody>
      {{range .Rows}}
      <tr>
        <td class="col-qty">{{.Quantity}}</td>
        <td class="col-name">{{.Title}}</td>
        <td class="col-purity">{{.Purity}}</td>
        <td class="col-weight">{{.Weight}}</td>
        <td class="col-price">{{.Price}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  {{if .ShowPayment}}<div class="nota-payment">{{.GrandTotal}}</div>{{end}}
  {{if .ShowIndicator}}<div class="nota-page-indicator">{{.Indicator}}</div>{{end}}
  {{if .QRDataURL}}<img class="nota-qr" src="{{.QRDataURL}}" alt="" />{{end}}
</div>`

type rowView struct {
	Quantity int
	Title    string
	Purity   string
	Weight   string
	Price    string
}

type pageView struct {
	Date            string
	CustomerName    string
	CustomerAddress string
	Rows            []rowView
	ShowPayment     bool
	GrandTotal      string
	ShowIndicator   bool
	Indicator       string
	QRDataURL       template.URL
}

// Renderer produces the physical-unit-positioned markup for one page and the
// stylesheet shared by all pages of a document.
type Renderer interface {
	RenderPage(doc domain.PrintableDocument, page domain.Page, mode domain.PrintMode, qrDataURL string) (string, error)
	Stylesheet() string
}

type HTMLRenderer struct {
	tpl *template.Template
	css string
}

// NewRenderer parses the page template and pre-builds the stylesheet from the
// layout table.
func NewRenderer() Renderer {
	return &HTMLRenderer{
		tpl: template.Must(template.New("nota-page").Parse(notaPageTemplate)),
		css: buildStylesheet(),
	}
}

func (r *HTMLRenderer) RenderPage(doc domain.PrintableDocument, page domain.Page, mode domain.PrintMode, qrDataURL string) (string, error) {
	view := pageView{
		Date:            format.LongDate(doc.Date),
		CustomerName:    doc.CustomerName,
		CustomerAddress: doc.CustomerAddress,
		Rows:            buildRows(page.Items),
		ShowIndicator:   mode == domain.ModeSingle && page.TotalPages > 1,
		// The raster is produced by our own encoder, never from user input.
		QRDataURL: template.URL(qrDataURL),
	}
	if view.ShowIndicator {
		view.Indicator = fmt.Sprintf("Hal. %d/%d", page.Index, page.TotalPages)
	}
	if page.IsLast && doc.Payment != nil {
		view.ShowPayment = true
		view.GrandTotal = format.Rupiah(doc.Payment.GrandTotal)
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render nota page %d: %w", page.Index, err)
	}
	return buf.String(), nil
}

func (r *HTMLRenderer) Stylesheet() string {
	return r.css
}

func buildRows(items []domain.LineItem) []rowView {
	rows := make([]rowView, 0, len(items))
	for _, item := range items {
		title := item.Name
		if item.Karat != "" {
			title = title + " " + item.Karat
		}
		rows = append(rows, rowView{
			Quantity: item.Quantity,
			Title:    format.ItemTitle(title, item.NetWeight),
			Purity:   format.Purity(item.Purity),
			Weight:   format.Weight(item.NetWeight),
			Price:    format.Rupiah(item.LinePrice),
		})
	}
	return rows
}

// buildStylesheet turns the layout table into the absolute-position rules the
// pre-printed form requires. The @page directive makes the print dialog
// default to the exact physical sheet size without manual paper selection.
func buildStylesheet() string {
	var b strings.Builder

	fmt.Fprintf(&b, "@page { size: %s %s; margin: 0; }\n", cm(PageWidthCm), cm(PageHeightCm))
	b.WriteString("* { margin: 0; padding: 0; box-sizing: border-box; }\n")
	b.WriteString("body { font-family: \"Courier New\", monospace; font-size: 10pt; color: #000; }\n")
	fmt.Fprintf(&b, ".nota-page { position: relative; width: %s; height: %s; overflow: hidden; page-break-after: always; }\n",
		cm(PageWidthCm), cm(PageHeightCm))
	b.WriteString(".nota-page:last-child { page-break-after: auto; }\n")

	for _, f := range Fields {
		fmt.Fprintf(&b, ".%s { position: absolute;", f.Class)
		if f.TopCm > 0 {
			fmt.Fprintf(&b, " top: %s;", cm(f.TopCm))
		}
		if f.BottomCm > 0 {
			fmt.Fprintf(&b, " bottom: %s;", cm(f.BottomCm))
		}
		if f.LeftCm > 0 {
			fmt.Fprintf(&b, " left: %s;", cm(f.LeftCm))
		}
		if f.RightCm > 0 {
			fmt.Fprintf(&b, " right: %s;", cm(f.RightCm))
		}
		if f.WidthCm > 0 {
			fmt.Fprintf(&b, " width: %s;", cm(f.WidthCm))
		}
		if f.HeightCm > 0 {
			fmt.Fprintf(&b, " height: %s;", cm(f.HeightCm))
		}
		if f.Align != "" {
			fmt.Fprintf(&b, " text-align: %s;", f.Align)
		}
		b.WriteString(" }\n")
	}

	b.WriteString(".nota-items { border-collapse: collapse; table-layout: fixed; }\n")
	b.WriteString(".nota-items td { vertical-align: top; overflow: hidden; white-space: nowrap; }\n")
	for _, c := range Columns {
		fmt.Fprintf(&b, ".nota-items .%s { width: %s; text-align: %s; }\n", c.Class, cm(c.WidthCm), c.Align)
	}

	return b.String()
}

// Compose wraps the concatenated page blocks and the shared stylesheet into a
// single self-contained document for the print surface.
func Compose(markup, stylesheet string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="id">
<head>
<meta charset="utf-8" />
<title>Nota</title>
<style>
%s</style>
</head>
<body>
%s
</body>
</html>
`, stylesheet, markup)
}

func cm(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".") + "cm"
}
