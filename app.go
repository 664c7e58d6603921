// Package eletror arma la aplicación de inventario y contactos del taller:
// almacén clave-valor embebido, casos de uso y shell. No expone red ni CLI;
// el host de UI consume el shell y los formularios directamente.
package eletror

import (
	"github.com/jhoicas/eletror-app/internal/application/auth"
	"github.com/jhoicas/eletror-app/internal/application/contacts"
	"github.com/jhoicas/eletror-app/internal/application/inventory"
	"github.com/jhoicas/eletror-app/internal/infrastructure/kvstore"
	"github.com/jhoicas/eletror-app/internal/interfaces/shell"
	"github.com/jhoicas/eletror-app/pkg/config"
	"github.com/jhoicas/eletror-app/pkg/logger"
)

// App raíz de composición: equivale al main de un servicio, pero como
// constructor inyectable porque el módulo se consume como biblioteca.
type App struct {
	Shell *shell.Shell
	Log   *logger.Logger
}

// New construye la aplicación completa a partir de la configuración.
// El almacén es el archivo JSON configurado; Confirm es la callback de
// confirmación de acciones destructivas que aporta la UI (nil = siempre sí).
func New(cfg *config.Config, confirm func(msg string) bool) *App {
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	kv := kvstore.NewFileStore(cfg.Storage.Path)
	latency := cfg.Storage.Latency()

	userRepo := kvstore.NewUserRepository(kv, kvstore.AdminSeed{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}, latency)
	sessionRepo := kvstore.NewSessionRepository(kv, kvstore.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	}, latency)
	itemRepo := kvstore.NewItemRepository(kv, latency)
	contactRepo := kvstore.NewContactRepository(kv, latency)

	authUC := auth.NewUseCase(userRepo, sessionRepo)
	itemUC := inventory.NewUseCase(itemRepo)
	contactUC := contacts.NewUseCase(contactRepo)

	sh := shell.New(authUC, itemUC, contactUC, log, shell.Config{
		PollInterval: cfg.Shell.PendingPollInterval(),
		Confirm:      confirm,
	})

	return &App{Shell: sh, Log: log}
}
