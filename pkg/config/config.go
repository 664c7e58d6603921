package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Session SessionConfig
	Admin   AdminConfig
	Shell   ShellConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// StorageConfig configuración del almacén clave-valor embebido.
type StorageConfig struct {
	Path      string // ruta del archivo JSON de datos
	LatencyMS int    // latencia fija simulada por operación (ms)
}

// Latency devuelve la latencia simulada como time.Duration.
func (c StorageConfig) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}

// SessionConfig configuración del token de sesión persistido.
type SessionConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig credenciales del administrador sembrado.
// El hash almacenado se repara contra Password en cada carga de usuarios.
type AdminConfig struct {
	Username string
	Password string
}

// ShellConfig comportamiento del shell de la aplicación.
type ShellConfig struct {
	PendingPollSeconds int // intervalo de sondeo de usuarios pendientes
}

// PendingPollInterval devuelve el intervalo de sondeo como time.Duration.
func (c ShellConfig) PendingPollInterval() time.Duration {
	return time.Duration(c.PendingPollSeconds) * time.Second
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORAGE_PATH, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "eletror"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Path:      getString(v, "STORAGE_PATH", "eletror.json"),
			LatencyMS: getInt(v, "STORAGE_LATENCY_MS", 300),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			Expiration: getInt(v, "SESSION_EXP_MINUTES", 43200), // 30 días: la sesión sobrevive recargas
			Issuer:     getString(v, "SESSION_ISSUER", "eletror"),
		},
		Admin: AdminConfig{
			Username: getString(v, "ADMIN_USERNAME", "admin"),
			Password: getString(v, "ADMIN_PASSWORD", "paulo"),
		},
		Shell: ShellConfig{
			PendingPollSeconds: getInt(v, "PENDING_POLL_SECONDS", 5),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
