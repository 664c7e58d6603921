package contacts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eletror-app/internal/application/contacts"
	"github.com/jhoicas/eletror-app/internal/domain"
	"github.com/jhoicas/eletror-app/internal/domain/entity"
	"github.com/jhoicas/eletror-app/internal/infrastructure/kvstore"
)

func newUseCase(t *testing.T) *contacts.UseCase {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	return contacts.NewUseCase(kvstore.NewContactRepository(kv, 0))
}

func TestContactsSeedsOnFirstRead(t *testing.T) {
	uc := newUseCase(t)

	list, err := uc.Contacts()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.ContactClient, list[0].Type)
	assert.Equal(t, entity.ContactSupplier, list[1].Type)
}

func TestSaveContactUpsert(t *testing.T) {
	uc := newUseCase(t)

	saved, err := uc.Save(entity.Contact{
		Type:  entity.ContactSupplier,
		Name:  "Eletro Peças Gaia",
		NIF:   "502111222",
		Email: "geral@eletropecasgaia.pt",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	// Editar preserva el ID y no duplica.
	saved.Phone = "220000000"
	again, err := uc.Save(*saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)

	list, err := uc.Contacts()
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestSaveContactValidatesInput(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Save(entity.Contact{Type: entity.ContactClient, Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Save(entity.Contact{Type: "otro", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteContactMissingIDIsNoOp(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Contacts()
	require.NoError(t, err)

	require.NoError(t, uc.Delete("no-existe"))

	list, err := uc.Contacts()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
