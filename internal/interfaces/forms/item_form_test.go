package forms_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eletror-app/internal/domain"
	"github.com/jhoicas/eletror-app/internal/domain/entity"
	"github.com/jhoicas/eletror-app/internal/interfaces/forms"
)

func TestItemFormDefaults(t *testing.T) {
	f := forms.NewItemForm()

	assert.Equal(t, entity.CategoryDiversos, f.Category)
	assert.Equal(t, 1, f.Quantity)
	assert.True(t, f.Price.IsZero())
	assert.Empty(t, f.Name)
}

func TestItemFormResetCopiesEditTarget(t *testing.T) {
	f := forms.NewItemForm()
	f.Reset(&entity.InventoryItem{
		ID:       "abc",
		Name:     "Alternador Bosch",
		Category: entity.CategoryAlternadores,
		Quantity: 3,
		Price:    decimal.RequireFromString("120.00"),
	})

	assert.Equal(t, "Alternador Bosch", f.Name)

	item, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "abc", item.ID, "en edición el submit conserva el ID original")
}

func TestItemFormSubmitNewLeavesIDEmpty(t *testing.T) {
	f := forms.NewItemForm()
	f.Name = "Bomba de Água"

	item, err := f.Submit()
	require.NoError(t, err)
	assert.Empty(t, item.ID, "la asignación de ID es del caso de uso, no del formulario")
	assert.True(t, item.UpdatedAt.IsZero(), "el timestamp lo pone el guardado")
}

func TestItemFormSubmitValidatesRequiredFields(t *testing.T) {
	f := forms.NewItemForm()
	_, err := f.Submit()
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el nombre es obligatorio")

	f.Name = "x"
	f.Quantity = -1
	_, err = f.Submit()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f.Quantity = 1
	f.Category = "Inexistente"
	_, err = f.Submit()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemFormResetClearsPreviousDraft(t *testing.T) {
	f := forms.NewItemForm()
	f.Reset(&entity.InventoryItem{ID: "abc", Name: "Alternador", Category: entity.CategoryAlternadores})

	// Reabrir en modo alta debe descartar el borrador anterior, ID incluido.
	f.Reset(nil)
	f.Name = "Novo artigo"
	item, err := f.Submit()
	require.NoError(t, err)
	assert.Empty(t, item.ID)
	assert.Equal(t, entity.CategoryDiversos, item.Category)
}

func TestItemFormAttachImageEmbedsDataURI(t *testing.T) {
	f := forms.NewItemForm()

	// Cabecera PNG mínima: el content type sale de la extensión.
	data := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	require.NoError(t, f.AttachImage("foto.png", data))
	assert.True(t, strings.HasPrefix(f.Image, "data:image/png;base64,"), "imagen embebida como data URI: %s", f.Image)

	require.Error(t, f.AttachImage("vacia.png", nil))
}

func TestContactFormLifecycle(t *testing.T) {
	f := forms.NewContactForm()
	assert.Equal(t, entity.ContactClient, f.Type)

	_, err := f.Submit()
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el nombre es obligatorio")

	f.Name = "Oficina Central do Porto"
	f.NIF = "501234567"
	contact, err := f.Submit()
	require.NoError(t, err)
	assert.Empty(t, contact.ID)
	assert.Equal(t, "501234567", contact.NIF)

	f.Reset(&entity.Contact{ID: "c1", Type: entity.ContactSupplier, Name: "AutoPeças Norte"})
	contact, err = f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "c1", contact.ID)
	assert.Equal(t, entity.ContactSupplier, contact.Type)
}
