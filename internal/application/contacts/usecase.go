package contacts

import (
	"github.com/google/uuid"

	"github.com/jhoicas/eletror-app/internal/domain"
	"github.com/jhoicas/eletror-app/internal/domain/entity"
	"github.com/jhoicas/eletror-app/internal/domain/repository"
)

// UseCase casos de uso CRUD de contactos (clientes y proveedores).
// Mismo patrón de upsert que inventario, sin timestamp.
type UseCase struct {
	repo repository.ContactRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ContactRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Contacts devuelve todos los contactos (siembra en primera lectura).
func (uc *UseCase) Contacts() ([]entity.Contact, error) {
	return uc.repo.List()
}

// Save hace upsert del contacto y devuelve el registro persistido.
func (uc *UseCase) Save(contact entity.Contact) (*entity.Contact, error) {
	if contact.Name == "" || !entity.ValidContactType(contact.Type) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range list {
		if contact.ID != "" && list[i].ID == contact.ID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		list[idx] = contact
	} else {
		contact.ID = uuid.New().String()
		list = append(list, contact)
	}
	if err := uc.repo.Replace(list); err != nil {
		return nil, err
	}
	return &contact, nil
}

// Delete elimina por ID; un ID inexistente es un no-op silencioso.
func (uc *UseCase) Delete(id string) error {
	list, err := uc.repo.List()
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, c := range list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return uc.repo.Replace(kept)
}
