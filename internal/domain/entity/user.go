package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema. El username es único y case-sensitive.
// Un username aparece a lo sumo en una de las dos colecciones: usuarios activos
// o usuarios pendientes (misma forma, colección separada hasta la aprobación).
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"` // bcrypt hash, nunca plano en dominio después de persistir
	Role         string `json:"role"`     // admin, user
}
