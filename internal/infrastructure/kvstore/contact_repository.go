package kvstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/eletror-app/internal/domain/entity"
	"github.com/jhoicas/eletror-app/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación de ContactRepository sobre el almacén clave-valor.
type ContactRepo struct {
	kv      KV
	latency time.Duration
}

// NewContactRepository construye el adaptador.
func NewContactRepository(kv KV, latency time.Duration) *ContactRepo {
	return &ContactRepo{kv: kv, latency: latency}
}

// List devuelve los contactos. En la primera lectura siembra el dataset inicial.
func (r *ContactRepo) List() ([]entity.Contact, error) {
	simulate(r.latency)
	data, ok, err := r.kv.Get(KeyContacts)
	if err != nil {
		return nil, err
	}
	if !ok {
		contacts := seedContacts()
		if err := r.Replace(contacts); err != nil {
			return nil, err
		}
		return contacts, nil
	}
	var contacts []entity.Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("decodificar contactos: %w", err)
	}
	return contacts, nil
}

// Replace sobrescribe la colección completa (last-write-wins).
func (r *ContactRepo) Replace(contacts []entity.Contact) error {
	data, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("codificar contactos: %w", err)
	}
	return r.kv.Set(KeyContacts, data)
}
