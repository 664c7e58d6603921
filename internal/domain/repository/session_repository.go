package repository

// SessionRepository define el puerto para la sesión actual (a lo sumo una).
// Get devuelve username y role, o ok=false si no hay sesión válida.
type SessionRepository interface {
	Set(username, role string) error
	Get() (username, role string, ok bool, err error)
	Clear() error
}
