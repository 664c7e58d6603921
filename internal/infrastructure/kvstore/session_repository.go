package kvstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/eletror-app/internal/domain/repository"
	pkgjwt "github.com/jhoicas/eletror-app/pkg/jwt"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionConfig parámetros del token de sesión firmado.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionRepo persiste la sesión actual como un token firmado bajo la clave
// de sesión. Un token inválido, expirado o manipulado se lee como "sin sesión"
// en lugar de permitir forjar un rol.
type SessionRepo struct {
	kv      KV
	cfg     SessionConfig
	latency time.Duration
}

// NewSessionRepository construye el adaptador.
func NewSessionRepository(kv KV, cfg SessionConfig, latency time.Duration) *SessionRepo {
	return &SessionRepo{kv: kv, cfg: cfg, latency: latency}
}

// Set genera y persiste el token de sesión para el usuario.
func (r *SessionRepo) Set(username, role string) error {
	simulate(r.latency)
	token, err := pkgjwt.Generate(r.cfg.Secret, username, role, r.cfg.Issuer, r.cfg.ExpMinutes)
	if err != nil {
		return fmt.Errorf("generar sesión: %w", err)
	}
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("codificar sesión: %w", err)
	}
	return r.kv.Set(KeyCurrentUser, data)
}

// Get lee la sesión actual. ok=false si no hay clave o el token no valida.
func (r *SessionRepo) Get() (username, role string, ok bool, err error) {
	simulate(r.latency)
	data, found, err := r.kv.Get(KeyCurrentUser)
	if err != nil {
		return "", "", false, err
	}
	if !found {
		return "", "", false, nil
	}
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return "", "", false, nil
	}
	username, role, err = pkgjwt.Parse(r.cfg.Secret, token)
	if err != nil {
		return "", "", false, nil
	}
	return username, role, true, nil
}

// Clear elimina la sesión actual.
func (r *SessionRepo) Clear() error {
	simulate(r.latency)
	return r.kv.Delete(KeyCurrentUser)
}
