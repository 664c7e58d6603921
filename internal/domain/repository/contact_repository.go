package repository

import "github.com/jhoicas/eletror-app/internal/domain/entity"

// ContactRepository define el puerto de persistencia para contactos (clientes/proveedores).
type ContactRepository interface {
	List() ([]entity.Contact, error)
	Replace(contacts []entity.Contact) error
}
