package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/eletror-app/internal/domain/entity"
	"github.com/jhoicas/eletror-app/internal/interfaces/shell"
)

func sampleItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: "1", Name: "Alternador Bosch", Description: "Recondicionado", Category: entity.CategoryAlternadores},
		{ID: "2", Name: "Bomba de Água", Description: "Para Clio II", Category: entity.CategoryDiversos},
		{ID: "3", Name: "Farol LED", Description: "Iluminação dianteira", Category: entity.CategoryIluminacao},
	}
}

func TestFilterItemsMatchesNameOrDescription(t *testing.T) {
	items := sampleItems()

	got := shell.FilterItems(items, "bosch", shell.CategoryAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// "clio" solo aparece en la descripción.
	got = shell.FilterItems(items, "clio", shell.CategoryAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterItemsIgnoresCaseAndAccents(t *testing.T) {
	items := sampleItems()

	// "agua" sin acento debe encontrar "Água".
	got := shell.FilterItems(items, "agua", shell.CategoryAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = shell.FilterItems(items, "ILUMINACAO", shell.CategoryAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestFilterItemsByCategory(t *testing.T) {
	items := sampleItems()

	got := shell.FilterItems(items, "", entity.CategoryIluminacao)
	assert.Len(t, got, 1)

	got = shell.FilterItems(items, "", shell.CategoryAll)
	assert.Len(t, got, 3, "la categoría Todos no excluye nada")

	// Búsqueda Y categoría se combinan con AND.
	got = shell.FilterItems(items, "bosch", entity.CategoryIluminacao)
	assert.Empty(t, got)
}

func TestFilterItemsIdempotent(t *testing.T) {
	items := sampleItems()

	first := shell.FilterItems(items, "a", entity.CategoryAlternadores)
	second := shell.FilterItems(items, "a", entity.CategoryAlternadores)
	assert.Equal(t, first, second, "aplicar el mismo filtro dos veces da el mismo resultado")
}

func TestFilterContactsMatchesNameNIFOrEmail(t *testing.T) {
	list := []entity.Contact{
		{ID: "1", Type: entity.ContactClient, Name: "Oficina Central do Porto", NIF: "501234567", Email: "compras@oficinaporto.pt"},
		{ID: "2", Type: entity.ContactSupplier, Name: "AutoPeças Norte", NIF: "509876543", Email: "vendas@autopecasnorte.pt"},
	}

	got := shell.FilterContacts(list, entity.ContactClient, "")
	assert.Len(t, got, 1, "el tipo filtra siempre")

	got = shell.FilterContacts(list, entity.ContactSupplier, "509876")
	assert.Len(t, got, 1)

	got = shell.FilterContacts(list, entity.ContactSupplier, "VENDAS@")
	assert.Len(t, got, 1)

	got = shell.FilterContacts(list, entity.ContactSupplier, "autopecas")
	assert.Len(t, got, 1, "la búsqueda ignora acentos también en contactos")

	got = shell.FilterContacts(list, entity.ContactClient, "509876")
	assert.Empty(t, got, "el NIF de un proveedor no aparece en la vista de clientes")
}
