// Package browser abre la UI en el navegador del sistema una sola vez por proceso.
package browser

import (
	"sync/atomic"
	"time"

	pkgbrowser "github.com/pkg/browser"

	"github.com/jhoicas/dhaliwal-pos/pkg/logger"
)

// opened es global al proceso: ni recargas del servidor ni llamadas repetidas
// vuelven a abrir una pestaña.
var opened atomic.Bool

// opener se reemplaza en tests.
var opener = pkgbrowser.OpenURL

// OpenOnce programa la apertura de url tras delay. Devuelve false si ya se
// programó antes en este proceso. Un fallo del navegador solo se registra.
func OpenOnce(url string, delay time.Duration, log *logger.Logger) bool {
	if !opened.CompareAndSwap(false, true) {
		return false
	}
	time.AfterFunc(delay, func() {
		if err := opener(url); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("no se pudo abrir el navegador")
			return
		}
		log.Info().Str("url", url).Msg("navegador abierto")
	})
	return true
}
