package pdf_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/dhaliwal-pos/internal/application/billing"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/receipt"
	"github.com/jhoicas/dhaliwal-pos/internal/infrastructure/pdf"
)

var testShop = appbilling.ShopProfile{
	Name:           "Dhaliwal's Food Court",
	AddressLine:    "Meerut, UP | Ph: +91-9259317713",
	Footer:         "Thank you for visiting!",
	CurrencySymbol: "Rs.",
}

func testDoc(items []entity.LineItem, customer entity.CustomerInfo) appbilling.ReceiptDocument {
	return appbilling.ReceiptDocument{
		Shop:     testShop,
		Items:    items,
		Customer: customer,
		Totals:   receipt.ComputeTotals(items, receipt.DefaultPolicy()),
		IssuedAt: time.Date(2025, 3, 5, 19, 42, 7, 0, time.UTC),
	}
}

func textRows(rows []pdf.Row) []pdf.Row {
	var out []pdf.Row
	for _, r := range rows {
		if r.Kind == pdf.RowText {
			out = append(out, r)
		}
	}
	return out
}

func TestBuildLayout_OrdenYEtiquetas(t *testing.T) {
	items := []entity.LineItem{
		{ItemName: "Dal", Size: entity.SizeFull, Price: decimal.NewFromInt(120)},
		{ItemName: "Roti", Size: entity.SizeHalf, Price: decimal.NewFromInt(15)},
	}
	doc := testDoc(items, entity.CustomerInfo{Name: "Aman", Phone: "98765", Address: "Civil Lines"})

	rows := textRows(pdf.BuildLayout(doc))

	type pairRow struct{ l, r string }
	var got []pairRow
	for _, r := range rows {
		if r.Center != "" {
			got = append(got, pairRow{l: "[c]" + r.Center})
			continue
		}
		got = append(got, pairRow{r.Left, r.Right})
	}
	want := []pairRow{
		{l: "[c]Dhaliwal's Food Court"},
		{l: "[c]Meerut, UP | Ph: +91-9259317713"},
		{"Bill Time: 05 Mar 2025 19:42:07", ""},
		{"Customer: Aman", ""},
		{"Phone: 98765", ""},
		{"Address: Civil Lines", ""},
		{"Item", "Price"},
		{"Dal (Full)", "Rs.120.00"},
		{"Roti (Half)", "Rs.15.00"},
		{"Subtotal", "Rs.135.00"},
		{"Tax (5.0%)", "Rs.6.75"},
		{"Discount", "-Rs.0.00"},
		{"Grand Total", "Rs.141.75"},
		{l: "[c]Thank you for visiting!"},
	}
	assert.Equal(t, want, got)
}

func TestBuildLayout_EstilosYSeparadores(t *testing.T) {
	rows := pdf.BuildLayout(testDoc(nil, entity.CustomerInfo{}))

	rules := 0
	for _, r := range rows {
		if r.Kind == pdf.RowRule {
			rules++
		}
	}
	assert.Equal(t, 3, rules, "tres separadores: tras encabezado, tras datos, tras ítems")

	text := textRows(rows)
	assert.Equal(t, fontstyle.Bold, text[0].Style, "nombre del local en negrita")
	assert.Greater(t, text[0].Size, text[1].Size, "la línea de dirección es más pequeña")
	for _, r := range text {
		if r.Left == "Item" || r.Left == "Grand Total" {
			assert.Equal(t, fontstyle.Bold, r.Style, r.Left)
		}
	}
	assert.Equal(t, fontstyle.Italic, text[len(text)-1].Style)
}

func TestBuildLayout_ClienteVacioYSaneado(t *testing.T) {
	doc := testDoc(
		[]entity.LineItem{{ItemName: "Chole\nBhature ₹", Size: entity.SizeHalf, Price: decimal.NewFromInt(60)}},
		entity.CustomerInfo{Name: "", Phone: "\r\n", Address: "House 4\nSector 2"},
	)

	rows := textRows(pdf.BuildLayout(doc))

	var lefts []string
	for _, r := range rows {
		lefts = append(lefts, r.Left)
	}
	assert.Contains(t, lefts, "Customer: -", "nombre vacío imprime guion")
	assert.Contains(t, lefts, "Phone:   ", "los saltos se convierten en espacios")
	assert.Contains(t, lefts, "Address: House 4 Sector 2")
	assert.Contains(t, lefts, "Chole Bhature  (Half)", "se descartan caracteres fuera de Windows-1252")
}

func TestBuildLayout_CuentaVacia(t *testing.T) {
	rows := textRows(pdf.BuildLayout(testDoc(nil, entity.CustomerInfo{})))

	values := map[string]string{}
	for _, r := range rows {
		values[r.Left] = r.Right
	}
	assert.Equal(t, "Rs.0.00", values["Subtotal"])
	assert.Equal(t, "Rs.0.00", values["Tax (5.0%)"])
	assert.Equal(t, "-Rs.0.00", values["Discount"])
	assert.Equal(t, "Rs.0.00", values["Grand Total"])
}

func TestMarotoReceiptRenderer_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoReceiptRenderer(true)
	require.True(t, g.Available())

	items := []entity.LineItem{{ItemName: "Paneer", Size: entity.SizeHalf, Price: decimal.NewFromInt(90)}}
	out, err := g.RenderReceipt(context.Background(), testDoc(items, entity.CustomerInfo{Name: "José"}))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "la salida debe ser un PDF")
}

// Una cuenta más larga que la página no debe fallar.
func TestMarotoReceiptRenderer_CuentaLarga(t *testing.T) {
	var items []entity.LineItem
	for i := 0; i < 120; i++ {
		items = append(items, entity.LineItem{
			ItemName: fmt.Sprintf("Plato %03d %s", i, strings.Repeat("x", i%20)),
			Size:     entity.SizeFull,
			Price:    decimal.NewFromFloat(99.5),
		})
	}

	out, err := pdf.NewMarotoReceiptRenderer(true).RenderReceipt(context.Background(), testDoc(items, entity.CustomerInfo{}))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestMarotoReceiptRenderer_Deshabilitado(t *testing.T) {
	g := pdf.NewMarotoReceiptRenderer(false)
	assert.False(t, g.Available())

	_, err := g.RenderReceipt(context.Background(), testDoc(nil, entity.CustomerInfo{}))
	assert.Error(t, err)
}
