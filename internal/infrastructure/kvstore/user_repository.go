package kvstore

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/eletror-app/internal/domain/entity"
	"github.com/jhoicas/eletror-app/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// AdminSeed credenciales del administrador sembrado. El hash persistido se
// verifica contra Password en cada carga y se re-hashea si no coincide
// (regla de reparación del seed, configurable, no mecanismo de seguridad).
type AdminSeed struct {
	Username string
	Password string
}

// UserRepo implementación de UserRepository sobre el almacén clave-valor.
type UserRepo struct {
	kv      KV
	admin   AdminSeed
	latency time.Duration
}

// NewUserRepository construye el adaptador.
func NewUserRepository(kv KV, admin AdminSeed, latency time.Duration) *UserRepo {
	return &UserRepo{kv: kv, admin: admin, latency: latency}
}

// List devuelve los usuarios activos. En la primera lectura siembra el admin;
// en las siguientes repara su hash contra la contraseña configurada.
func (r *UserRepo) List() ([]entity.User, error) {
	simulate(r.latency)
	return r.loadUsers()
}

// FindByUsername busca un usuario activo por username exacto (case-sensitive).
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	simulate(r.latency)
	users, err := r.loadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Append agrega un usuario activo y persiste la colección completa.
func (r *UserRepo) Append(user entity.User) error {
	simulate(r.latency)
	users, err := r.loadUsers()
	if err != nil {
		return err
	}
	users = append(users, user)
	return r.persist(KeyUsers, users)
}

// ListPending devuelve los usuarios pendientes de aprobación (vacío si no hay clave).
func (r *UserRepo) ListPending() ([]entity.User, error) {
	simulate(r.latency)
	return r.loadPending()
}

// FindPending busca un usuario pendiente por username.
func (r *UserRepo) FindPending(username string) (*entity.User, error) {
	simulate(r.latency)
	pending, err := r.loadPending()
	if err != nil {
		return nil, err
	}
	for i := range pending {
		if pending[i].Username == username {
			return &pending[i], nil
		}
	}
	return nil, nil
}

// AppendPending agrega un usuario a la colección de pendientes.
func (r *UserRepo) AppendPending(user entity.User) error {
	simulate(r.latency)
	pending, err := r.loadPending()
	if err != nil {
		return err
	}
	pending = append(pending, user)
	return r.persist(KeyPendingUsers, pending)
}

// RemovePending elimina un pendiente por username; no-op silencioso si no existe.
func (r *UserRepo) RemovePending(username string) error {
	simulate(r.latency)
	pending, err := r.loadPending()
	if err != nil {
		return err
	}
	kept := pending[:0]
	for _, u := range pending {
		if u.Username != username {
			kept = append(kept, u)
		}
	}
	return r.persist(KeyPendingUsers, kept)
}

func (r *UserRepo) loadUsers() ([]entity.User, error) {
	data, ok, err := r.kv.Get(KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		admin, err := r.seedAdmin()
		if err != nil {
			return nil, err
		}
		users := []entity.User{admin}
		if err := r.persist(KeyUsers, users); err != nil {
			return nil, err
		}
		return users, nil
	}
	var users []entity.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decodificar usuarios: %w", err)
	}
	return r.repairAdmin(users)
}

func (r *UserRepo) loadPending() ([]entity.User, error) {
	data, ok, err := r.kv.Get(KeyPendingUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []entity.User{}, nil
	}
	var pending []entity.User
	if err := json.Unmarshal(data, &pending); err != nil {
		return nil, fmt.Errorf("decodificar pendientes: %w", err)
	}
	return pending, nil
}

// repairAdmin re-hashea la contraseña del admin si el hash almacenado ya no
// verifica contra la configurada (repara datos existentes en cada carga).
func (r *UserRepo) repairAdmin(users []entity.User) ([]entity.User, error) {
	for i := range users {
		if users[i].Username != r.admin.Username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(r.admin.Password)) == nil {
			return users, nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(r.admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		users[i].PasswordHash = string(hash)
		if err := r.persist(KeyUsers, users); err != nil {
			return nil, err
		}
		return users, nil
	}
	return users, nil
}

func (r *UserRepo) seedAdmin() (entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(r.admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, err
	}
	return entity.User{
		Username:     r.admin.Username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}, nil
}

func (r *UserRepo) persist(key string, users []entity.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("codificar usuarios: %w", err)
	}
	return r.kv.Set(key, data)
}
