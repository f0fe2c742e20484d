package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/jhoicas/dhaliwal-pos/internal/application/billing"
)

// Dimensiones del papel térmico en mm.
const (
	PageWidth  = 80.0
	PageHeight = 200.0
	margin     = 3.0
)

// MarotoReceiptRenderer implementa billing.ReceiptRenderer usando Maroto v2.
type MarotoReceiptRenderer struct {
	enabled bool
}

var _ appbilling.ReceiptRenderer = (*MarotoReceiptRenderer)(nil)

// NewMarotoReceiptRenderer construye el generador. Con enabled=false el
// generador se reporta como no disponible (RECEIPT_PDF_ENABLED=false).
func NewMarotoReceiptRenderer(enabled bool) *MarotoReceiptRenderer {
	return &MarotoReceiptRenderer{enabled: enabled}
}

// Available indica si el backend de PDF está habilitado.
func (g *MarotoReceiptRenderer) Available() bool { return g != nil && g.enabled }

// RenderReceipt genera el PDF y devuelve sus bytes. Las filas que no caben en
// los 200 mm continúan en otra página del mismo tamaño.
func (g *MarotoReceiptRenderer) RenderReceipt(ctx context.Context, doc appbilling.ReceiptDocument) ([]byte, error) {
	if !g.Available() {
		return nil, fmt.Errorf("pdf: backend deshabilitado")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithDimensions(PageWidth, PageHeight).
		WithLeftMargin(margin).WithRightMargin(margin).
		WithTopMargin(margin).WithBottomMargin(margin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: sizeBody}).
		WithTitle("Receipt", true).
		WithAuthor(doc.Shop.Name, true).
		Build()

	m := maroto.New(cfg)
	for _, r := range BuildLayout(doc) {
		m.AddRows(toMarotoRow(r))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func toMarotoRow(r Row) core.Row {
	switch r.Kind {
	case RowRule:
		return line.NewRow(r.Height, props.Line{Thickness: 0.2})
	case RowSpace:
		return row.New(r.Height)
	}

	txt := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Size: r.Size, Style: r.Style, Align: a, Top: 0.4})
	}
	if r.Center != "" {
		return row.New(r.Height).Add(col.New(12).Add(txt(r.Center, align.Center)))
	}
	if r.Right == "" {
		return row.New(r.Height).Add(col.New(12).Add(txt(r.Left, align.Left)))
	}
	return row.New(r.Height).Add(
		col.New(8).Add(txt(r.Left, align.Left)),
		col.New(4).Add(txt(r.Right, align.Right)),
	)
}
