package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías del inventario auto-eléctrico (valores del taller, en portugués).
const (
	CategoryAlternadores    = "Alternadores"
	CategoryMotoresArranque = "Motores de Arranque"
	CategoryBaterias        = "Baterias"
	CategoryIluminacao      = "Iluminação"
	CategoryCablagem        = "Cablagem"
	CategoryDiversos        = "Diversos"
)

// Categories lista las categorías en el orden que muestra la UI.
var Categories = []string{
	CategoryAlternadores,
	CategoryMotoresArranque,
	CategoryBaterias,
	CategoryIluminacao,
	CategoryCablagem,
	CategoryDiversos,
}

// ValidCategory indica si la categoría pertenece al enumerado.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// InventoryItem representa un artículo del inventario.
// El ID se asigna al crear y es inmutable; UpdatedAt se refresca en cada guardado.
// Image acepta una URL o datos embebidos (data URI).
type InventoryItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
