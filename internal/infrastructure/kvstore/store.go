// Package kvstore implementa los adaptadores de persistencia sobre un almacén
// clave-valor embebido: claves string, valores texto JSON. Cada operación de
// repositorio simula una latencia fija para imitar I/O remoto.
package kvstore

import "time"

// Claves de las cinco entradas persistidas.
const (
	KeyUsers        = "eletror_users"
	KeyPendingUsers = "eletror_pending_users"
	KeyItems        = "eletror_items"
	KeyContacts     = "eletror_contacts"
	KeyCurrentUser  = "eletror_current_user"
)

// KV define el almacén clave-valor inyectable (archivo en producción, memoria en tests).
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// simulate duerme la latencia fija configurada (0 = sin simulación).
func simulate(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
