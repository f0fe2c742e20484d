package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrSizeNotOffered = errors.New("la porción no se ofrece para este ítem")

	// ErrMenuUnavailable cubre archivo inexistente, columnas faltantes o fuente ilegible.
	// Nunca es fatal: el menú se muestra vacío con un aviso.
	ErrMenuUnavailable = errors.New("menú no disponible")
	// ErrMenuSave indica que el cambio no se aplicó (el almacén queda como estaba).
	ErrMenuSave = errors.New("no se pudo guardar el menú")
	// ErrRenderUnavailable indica que el generador de PDF no está disponible.
	ErrRenderUnavailable = errors.New("generación de recibos no disponible")
)
