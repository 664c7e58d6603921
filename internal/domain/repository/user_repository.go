package repository

import "github.com/jhoicas/eletror-app/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios activos y pendientes (DIP).
// Las implementaciones siembran el admin por defecto en la primera lectura y
// reparan su hash contra la contraseña configurada en cada carga.
type UserRepository interface {
	List() ([]entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	Append(user entity.User) error

	ListPending() ([]entity.User, error)
	FindPending(username string) (*entity.User, error)
	AppendPending(user entity.User) error
	RemovePending(username string) error
}
