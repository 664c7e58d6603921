package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos se muestran al usuario como mensajes en formularios; ninguno es fatal.
var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUserExists         = errors.New("el usuario ya existe")
	ErrPendingApproval    = errors.New("el usuario está pendiente de aprobación")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
)
