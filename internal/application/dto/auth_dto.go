package dto

// LoginRequest credenciales de entrada al login.
type LoginRequest struct {
	Username string
	Password string
}

// RegisterRequest datos de registro; el usuario queda pendiente de aprobación.
type RegisterRequest struct {
	Username string
	Password string
}

// UserResponse usuario expuesto a la UI (nunca incluye el hash).
type UserResponse struct {
	Username string
	Role     string
}
