package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/eletror-app/internal/domain"
	"github.com/jhoicas/eletror-app/internal/domain/entity"
	"github.com/jhoicas/eletror-app/internal/domain/repository"
)

// UseCase casos de uso CRUD del inventario. El guardado es un upsert por ID:
// ID vacío o desconocido inserta con ID nuevo; ID existente actualiza en sitio.
type UseCase struct {
	repo repository.ItemRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ItemRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Items devuelve el inventario completo (siembra en primera lectura).
func (uc *UseCase) Items() ([]entity.InventoryItem, error) {
	return uc.repo.List()
}

// Save hace upsert del artículo y devuelve el registro persistido.
// En inserción asigna un ID nuevo; en actualización preserva el ID.
// UpdatedAt se refresca en ambos casos.
func (uc *UseCase) Save(item entity.InventoryItem) (*entity.InventoryItem, error) {
	if item.Name == "" || item.Quantity < 0 || item.Price.IsNegative() || !entity.ValidCategory(item.Category) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now()
	idx := indexByID(items, item.ID)
	if idx >= 0 {
		items[idx] = item
	} else {
		item.ID = uuid.New().String()
		items = append(items, item)
	}
	if err := uc.repo.Replace(items); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete elimina por ID; un ID inexistente es un no-op silencioso.
func (uc *UseCase) Delete(id string) error {
	items, err := uc.repo.List()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return uc.repo.Replace(kept)
}

func indexByID(items []entity.InventoryItem, id string) int {
	if id == "" {
		return -1
	}
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
