package forms

import (
	"github.com/jhoicas/eletror-app/internal/domain"
	"github.com/jhoicas/eletror-app/internal/domain/entity"
)

// ContactForm borrador del diálogo de contacto. Mismo patrón que ItemForm.
type ContactForm struct {
	id string

	Type    string
	Name    string
	NIF     string
	Email   string
	Phone   string
	Address string
}

// NewContactForm construye el formulario reiniciado para un alta de cliente.
func NewContactForm() *ContactForm {
	f := &ContactForm{}
	f.Reset(nil)
	return f
}

// Reset reinicia el borrador al registro en edición o a valores por defecto.
func (f *ContactForm) Reset(initial *entity.Contact) {
	if initial != nil {
		f.id = initial.ID
		f.Type = initial.Type
		f.Name = initial.Name
		f.NIF = initial.NIF
		f.Email = initial.Email
		f.Phone = initial.Phone
		f.Address = initial.Address
		return
	}
	*f = ContactForm{Type: entity.ContactClient}
}

// Submit valida los campos obligatorios y devuelve el registro completo.
func (f *ContactForm) Submit() (*entity.Contact, error) {
	if f.Name == "" || !entity.ValidContactType(f.Type) {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Contact{
		ID:      f.id,
		Type:    f.Type,
		Name:    f.Name,
		NIF:     f.NIF,
		Email:   f.Email,
		Phone:   f.Phone,
		Address: f.Address,
	}, nil
}
