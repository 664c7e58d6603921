// Package forms implementa los diálogos de edición como formularios controlados:
// un borrador que se reinicia al abrir (registro en edición o valores por
// defecto) y que en el submit entrega un registro completo al llamador.
// Los formularios no persisten nada; eso es trabajo del shell y los casos de uso.
package forms

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/eletror-app/internal/domain"
	"github.com/jhoicas/eletror-app/internal/domain/entity"
)

// ItemForm borrador del diálogo de artículo. El id viaja oculto: vacío en alta,
// el original en edición; la asignación de ID/timestamp queda en el caso de uso.
type ItemForm struct {
	id string

	Name        string
	Description string
	Category    string
	Quantity    int
	Price       decimal.Decimal
	Image       string
}

// NewItemForm construye el formulario ya reiniciado a valores por defecto.
func NewItemForm() *ItemForm {
	f := &ItemForm{}
	f.Reset(nil)
	return f
}

// Reset reinicia el borrador: con initial copia el registro en edición;
// sin initial deja los valores por defecto de alta (Diversos, stock 1, precio 0).
func (f *ItemForm) Reset(initial *entity.InventoryItem) {
	if initial != nil {
		f.id = initial.ID
		f.Name = initial.Name
		f.Description = initial.Description
		f.Category = initial.Category
		f.Quantity = initial.Quantity
		f.Price = initial.Price
		f.Image = initial.Image
		return
	}
	*f = ItemForm{
		Category: entity.CategoryDiversos,
		Quantity: 1,
		Price:    decimal.Zero,
	}
}

// AttachImage embebe el archivo como data URI base64 (sin subida externa).
// El content type se toma de la extensión y, si no se conoce, del contenido.
func (f *ItemForm) AttachImage(filename string, data []byte) error {
	if len(data) == 0 {
		return domain.ErrInvalidInput
	}
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	f.Image = fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	return nil
}

// Submit valida los campos obligatorios y devuelve el registro completo.
// En edición conserva el ID original; en alta lo deja vacío.
func (f *ItemForm) Submit() (*entity.InventoryItem, error) {
	if f.Name == "" || f.Quantity < 0 || f.Price.IsNegative() || !entity.ValidCategory(f.Category) {
		return nil, domain.ErrInvalidInput
	}
	return &entity.InventoryItem{
		ID:          f.id,
		Name:        f.Name,
		Description: f.Description,
		Category:    f.Category,
		Quantity:    f.Quantity,
		Price:       f.Price,
		Image:       f.Image,
	}, nil
}
