package render

// Align is the horizontal text alignment of a layout field.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Page geometry of the nota stock. The printer's device margin is handled by
// hardware calibration, so the page itself carries none.
const (
	PageWidthCm  = 16.5
	PageHeightCm = 10.5
)

// Field pins one slot of the pre-printed form. Measurements are centimeters
// from the page edges; a zero measurement leaves that edge unpinned.
type Field struct {
	Name     string
	Class    string
	TopCm    float64
	BottomCm float64
	LeftCm   float64
	RightCm  float64
	WidthCm  float64
	HeightCm float64
	Align    Align
}

// Fields mirrors the physical template loaded in the printer. Changing a
// value here moves ink on paper, so treat it as calibration data.
var Fields = []Field{
	{Name: "date", Class: "nota-date", TopCm: 1.0, RightCm: 2.5, Align: AlignRight},
	{Name: "customer_name", Class: "nota-customer-name", TopCm: 1.5, RightCm: 2.5, Align: AlignRight},
	{Name: "customer_address", Class: "nota-customer-address", TopCm: 2.0, RightCm: 2.5, Align: AlignRight},
	{Name: "item_table", Class: "nota-items", TopCm: 5.2, LeftCm: 1.0, RightCm: 1.0},
	{Name: "payment", Class: "nota-payment", BottomCm: 2.8, RightCm: 1.0, WidthCm: 5.5, Align: AlignRight},
	{Name: "page_indicator", Class: "nota-page-indicator", BottomCm: 0.5, LeftCm: 1.0, Align: AlignLeft},
	{Name: "qr", Class: "nota-qr", BottomCm: 1.0, RightCm: 5.0, WidthCm: 1.5, HeightCm: 1.5},
}

// Column is one fixed-width column of the item table.
type Column struct {
	Name    string
	Class   string
	WidthCm float64
	Align   Align
}

// Columns lists the item-table columns left to right.
var Columns = []Column{
	{Name: "qty", Class: "col-qty", WidthCm: 1.0, Align: AlignCenter},
	{Name: "name", Class: "col-name", WidthCm: 6.0, Align: AlignLeft},
	{Name: "purity", Class: "col-purity", WidthCm: 1.5, Align: AlignCenter},
	{Name: "weight", Class: "col-weight", WidthCm: 2.0, Align: AlignRight},
	{Name: "price", Class: "col-price", WidthCm: 2.5, Align: AlignRight},
}
