package repository

import (
	"time"

	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
)

// SessionRepository registro de sesiones de caja activas.
type SessionRepository interface {
	// GetOrCreate devuelve la sesión con ese id, creándola si no existe.
	GetOrCreate(id string) *entity.Session
	// Delete termina la sesión; no falla si no existe.
	Delete(id string)
	// Sweep elimina las sesiones sin actividad desde cutoff y devuelve cuántas quitó.
	Sweep(cutoff time.Time) int
}
