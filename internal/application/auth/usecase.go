package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/eletror-app/internal/application/dto"
	"github.com/jhoicas/eletror-app/internal/domain"
	"github.com/jhoicas/eletror-app/internal/domain/entity"
	"github.com/jhoicas/eletror-app/internal/domain/repository"
)

// UseCase casos de uso de autenticación y gestión de altas:
// login/logout, registro pendiente y aprobación/rechazo por el admin.
type UseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *UseCase {
	return &UseCase{userRepo: userRepo, sessionRepo: sessionRepo}
}

// Login verifica username/password contra los usuarios activos y persiste la
// sesión. Un fallo devuelve ErrInvalidCredentials y no toca la sesión.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := uc.sessionRepo.Set(user.Username, user.Role); err != nil {
		return nil, err
	}
	return &dto.UserResponse{Username: user.Username, Role: user.Role}, nil
}

// Logout limpia la sesión actual.
func (uc *UseCase) Logout() error {
	return uc.sessionRepo.Clear()
}

// Register hashea la contraseña y agrega el usuario a pendientes con rol "user".
// Rechaza si el username ya existe activo (ErrUserExists) o pendiente (ErrPendingApproval).
func (uc *UseCase) Register(in dto.RegisterRequest) error {
	if in.Username == "" || in.Password == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrUserExists
	}
	pending, err := uc.userRepo.FindPending(in.Username)
	if err != nil {
		return err
	}
	if pending != nil {
		return domain.ErrPendingApproval
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.AppendPending(entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
	})
}

// CurrentUser lee la sesión persistida; nil si no hay sesión válida.
func (uc *UseCase) CurrentUser() (*dto.UserResponse, error) {
	username, role, ok, err := uc.sessionRepo.Get()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &dto.UserResponse{Username: username, Role: role}, nil
}

// PendingUsers devuelve los usernames pendientes en orden de registro.
func (uc *UseCase) PendingUsers() ([]string, error) {
	pending, err := uc.userRepo.ListPending()
	if err != nil {
		return nil, err
	}
	usernames := make([]string, 0, len(pending))
	for _, u := range pending {
		usernames = append(usernames, u.Username)
	}
	return usernames, nil
}

// Approve mueve el pendiente a usuarios activos; no-op silencioso si no existe.
func (uc *UseCase) Approve(username string) error {
	pending, err := uc.userRepo.FindPending(username)
	if err != nil {
		return err
	}
	if pending == nil {
		return nil
	}
	if err := uc.userRepo.Append(*pending); err != nil {
		return err
	}
	return uc.userRepo.RemovePending(username)
}

// Reject elimina el registro pendiente; no-op silencioso si no existe.
func (uc *UseCase) Reject(username string) error {
	return uc.userRepo.RemovePending(username)
}
