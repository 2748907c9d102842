// Package invoice renders and dispatches the PDF invoice for a committed
// order. Rendering is a pure snapshot-to-bytes transformation: it performs no
// writes and re-rendering the same order yields identical textual content.
package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/nexmart/checkout/internal/order"
)

// NoSellerPlaceholder is printed when a line item's seller reference is
// absent (weak reference, seller account removed).
const NoSellerPlaceholder = "N/A"

type Row struct {
	Product   string
	Quantity  int
	UnitPrice string
	Seller    string
}

// Document is the deterministic text model behind the PDF layout.
type Document struct {
	Code             string
	OrderDate        string
	DeliveryLocation string
	Landmark         string
	Rows             []Row
	Total            string
}

// BuildDocument flattens a committed order snapshot into the text model.
// sellerNames maps seller ids to display names; missing entries and nil
// seller references both render as the placeholder.
func BuildDocument(o *order.Order, items []order.LineItem, sellerNames map[string]string) Document {
	doc := Document{
		Code:             o.Code,
		OrderDate:        o.CreatedAt.Format("2006-01-02 15:04"),
		DeliveryLocation: o.DeliveryLocation,
		Landmark:         o.Landmark,
		Total:            money(o.TotalAmount),
	}
	for _, it := range items {
		seller := NoSellerPlaceholder
		if it.SellerID != nil {
			if name, ok := sellerNames[*it.SellerID]; ok && name != "" {
				seller = name
			}
		}
		doc.Rows = append(doc.Rows, Row{
			Product:   it.ProductName,
			Quantity:  it.Quantity,
			UnitPrice: money(it.Price),
			Seller:    seller,
		})
	}
	return doc
}

// money formats a decimal string to 2 places; malformed input is passed
// through untouched rather than invented.
func money(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.StringFixed(2)
}

// Render produces the single-page PDF: title block, order metadata, a QR code
// encoding the order code as plain text, the item table and the total row.
func Render(o *order.Order, items []order.LineItem, sellerNames map[string]string) ([]byte, error) {
	doc := BuildDocument(o, items, sellerNames)

	png, err := qrcode.Encode(doc.Code, qrcode.Medium, 128)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "NexMart Order Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Order Code: "+doc.Code, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Order Date: "+doc.OrderDate, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Delivery Location: "+doc.DeliveryLocation, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Landmark: "+doc.Landmark, "", 1, "L", false, 0, "")

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("order-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("order-qr", 160, 10, 35, 35, false, opts, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(80, 8, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, "Seller", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range doc.Rows {
		pdf.CellFormat(80, 8, row.Product, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", row.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, row.UnitPrice, "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 8, row.Seller, "1", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(105, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(85, 8, doc.Total, "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
