package repository

import "github.com/jhoicas/eletror-app/internal/domain/entity"

// ItemRepository define el puerto de persistencia para artículos del inventario.
// Replace sobrescribe la colección completa (last-write-wins, sin merge).
type ItemRepository interface {
	List() ([]entity.InventoryItem, error)
	Replace(items []entity.InventoryItem) error
}
