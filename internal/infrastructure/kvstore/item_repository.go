package kvstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/eletror-app/internal/domain/entity"
	"github.com/jhoicas/eletror-app/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre el almacén clave-valor.
type ItemRepo struct {
	kv      KV
	latency time.Duration
}

// NewItemRepository construye el adaptador.
func NewItemRepository(kv KV, latency time.Duration) *ItemRepo {
	return &ItemRepo{kv: kv, latency: latency}
}

// List devuelve el inventario completo. En la primera lectura siembra el
// dataset inicial y lo persiste antes de devolverlo.
func (r *ItemRepo) List() ([]entity.InventoryItem, error) {
	simulate(r.latency)
	data, ok, err := r.kv.Get(KeyItems)
	if err != nil {
		return nil, err
	}
	if !ok {
		items := seedItems(time.Now())
		if err := r.Replace(items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var items []entity.InventoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decodificar artículos: %w", err)
	}
	return items, nil
}

// Replace sobrescribe la colección completa (last-write-wins).
func (r *ItemRepo) Replace(items []entity.InventoryItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("codificar artículos: %w", err)
	}
	return r.kv.Set(KeyItems, data)
}
