package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/dhaliwal-pos/internal/domain"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/receipt"
	"github.com/jhoicas/dhaliwal-pos/pkg/logger"
)

// ReceiptFilename nombre del archivo descargado.
const ReceiptFilename = "receipt.pdf"

// ReceiptUseCase genera el recibo térmico de la cuenta de una sesión.
type ReceiptUseCase struct {
	renderer ReceiptRenderer
	policy   receipt.Policy
	shop     ShopProfile
	log      *logger.Logger
	now      func() time.Time
}

// NewReceiptUseCase construye el caso de uso. renderer puede ser nil: en ese
// caso cada intento devuelve domain.ErrRenderUnavailable.
func NewReceiptUseCase(renderer ReceiptRenderer, policy receipt.Policy, shop ShopProfile, log *logger.Logger) *ReceiptUseCase {
	return &ReceiptUseCase{
		renderer: renderer,
		policy:   policy,
		shop:     shop,
		log:      log.Component("receipt"),
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj usado para "Bill Time".
func (uc *ReceiptUseCase) WithClock(now func() time.Time) *ReceiptUseCase {
	uc.now = now
	return uc
}

// Available indica si hoy se puede generar un recibo (la UI deshabilita el botón si no).
func (uc *ReceiptUseCase) Available() bool {
	return uc.renderer != nil && uc.renderer.Available()
}

// DownloadReceipt toma una copia de la sesión, calcula los totales y genera el PDF.
//
// Retorna:
//   - (pdfBytes, "receipt.pdf", nil)   si todo sale bien.
//   - domain.ErrRenderUnavailable      si el generador de PDF no está disponible.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, sess *entity.Session) (pdfBytes []byte, filename string, err error) {
	if !uc.Available() {
		uc.log.Warn().Str("session", sess.ID).Msg("generador de PDF no disponible")
		return nil, "", domain.ErrRenderUnavailable
	}

	snap := sess.Snapshot()
	doc := ReceiptDocument{
		Shop:     uc.shop,
		Items:    snap.Items,
		Customer: snap.Customer,
		Totals:   receipt.ComputeTotals(snap.Items, uc.policy),
		IssuedAt: uc.now(),
	}

	pdfBytes, err = uc.renderer.RenderReceipt(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}
	uc.log.Info().
		Str("session", sess.ID).
		Int("items", len(doc.Items)).
		Str("grand_total", doc.Totals.GrandTotal.StringFixed(2)).
		Int("bytes", len(pdfBytes)).
		Msg("recibo generado")
	return pdfBytes, ReceiptFilename, nil
}
