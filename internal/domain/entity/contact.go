package entity

// Tipos válidos para Contact.
const (
	ContactClient   = "client"
	ContactSupplier = "supplier"
)

// ValidContactType indica si el tipo pertenece al enumerado.
func ValidContactType(t string) bool {
	return t == ContactClient || t == ContactSupplier
}

// Contact representa un cliente o proveedor del taller.
// El ID se asigna al crear y es inmutable. NIF es el identificador fiscal (texto libre).
type Contact struct {
	ID      string `json:"id"`
	Type    string `json:"type"` // client, supplier
	Name    string `json:"name"`
	NIF     string `json:"nif"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
