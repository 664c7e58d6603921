package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eletror-app/internal/application/inventory"
	"github.com/jhoicas/eletror-app/internal/domain"
	"github.com/jhoicas/eletror-app/internal/domain/entity"
	"github.com/jhoicas/eletror-app/internal/infrastructure/kvstore"
)

func newUseCase(t *testing.T) *inventory.UseCase {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	return inventory.NewUseCase(kvstore.NewItemRepository(kv, 0))
}

func TestItemsSeedsOnFirstRead(t *testing.T) {
	uc := newUseCase(t)

	items, err := uc.Items()
	require.NoError(t, err)
	require.Len(t, items, 3, "la primera lectura siembra el dataset inicial")
	assert.Equal(t, "Alternador Bosch 12V 90A", items[0].Name)

	// La segunda lectura devuelve lo persistido, no re-siembra.
	again, err := uc.Items()
	require.NoError(t, err)
	assert.Len(t, again, 3)
}

func TestSaveNewItemAssignsIDAndTimestamp(t *testing.T) {
	uc := newUseCase(t)

	before := time.Now()
	saved, err := uc.Save(entity.InventoryItem{
		Name:     "Bomba de Água",
		Category: entity.CategoryDiversos,
		Quantity: 1,
		Price:    decimal.RequireFromString("45.00"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID, "la inserción asigna un ID nuevo")
	assert.False(t, saved.UpdatedAt.Before(before), "UpdatedAt debe ser la hora del guardado")

	items, err := uc.Items()
	require.NoError(t, err)
	assert.Len(t, items, 4, "3 sembrados + 1 nuevo")
}

func TestSaveExistingItemPreservesID(t *testing.T) {
	uc := newUseCase(t)

	items, err := uc.Items()
	require.NoError(t, err)
	original := items[0]

	edited := original
	edited.Quantity = 99
	saved, err := uc.Save(edited)
	require.NoError(t, err)
	assert.Equal(t, original.ID, saved.ID, "la actualización preserva el ID")
	assert.Equal(t, 99, saved.Quantity)
	assert.True(t, saved.UpdatedAt.After(original.UpdatedAt) || saved.UpdatedAt.Equal(original.UpdatedAt))

	items, err = uc.Items()
	require.NoError(t, err)
	assert.Len(t, items, 3, "actualizar no cambia la cardinalidad")
}

func TestSaveUnknownIDInsertsWithFreshID(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Items()
	require.NoError(t, err)

	saved, err := uc.Save(entity.InventoryItem{
		ID:       "no-existe",
		Name:     "Relé auxiliar",
		Category: entity.CategoryCablagem,
		Quantity: 5,
		Price:    decimal.RequireFromString("3.20"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, "no-existe", saved.ID, "un ID desconocido se trata como inserción con ID nuevo")
}

func TestSaveValidatesInput(t *testing.T) {
	uc := newUseCase(t)

	cases := []entity.InventoryItem{
		{Name: "", Category: entity.CategoryDiversos, Quantity: 1, Price: decimal.Zero},
		{Name: "x", Category: "Inexistente", Quantity: 1, Price: decimal.Zero},
		{Name: "x", Category: entity.CategoryDiversos, Quantity: -1, Price: decimal.Zero},
		{Name: "x", Category: entity.CategoryDiversos, Quantity: 1, Price: decimal.RequireFromString("-1")},
	}
	for _, c := range cases {
		_, err := uc.Save(c)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestDeleteMissingIDPreservesCardinality(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Items()
	require.NoError(t, err)

	require.NoError(t, uc.Delete("no-existe"))

	items, err := uc.Items()
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestDeleteRemovesItem(t *testing.T) {
	uc := newUseCase(t)
	items, err := uc.Items()
	require.NoError(t, err)

	require.NoError(t, uc.Delete(items[0].ID))

	items, err = uc.Items()
	require.NoError(t, err)
	assert.Len(t, items, 2)
	for _, it := range items {
		assert.NotEqual(t, "1", it.ID)
	}
}
