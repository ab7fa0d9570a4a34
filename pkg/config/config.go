package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Cache   CacheConfig
	Poll    PollConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP propio (las vistas del back-office).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig configuración del backend REST remoto.
type BackendConfig struct {
	BaseURL        string // ej. https://api.superbodega.example/api
	TimeoutSeconds int    // timeout de red por petición
	LabelaryURL    string // servicio externo de renderizado ZPL → PNG
}

// Timeout devuelve el timeout de red como time.Duration.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheConfig política por defecto del cache de consultas.
type CacheConfig struct {
	StaleSeconds int // TTL de frescura de una entrada
	RetryMax     int // reintentos máximos para errores recuperables
}

// StaleTime devuelve el TTL como time.Duration.
func (c CacheConfig) StaleTime() time.Duration {
	return time.Duration(c.StaleSeconds) * time.Second
}

// PollConfig política del polling de métricas/estado.
type PollConfig struct {
	IntervalSeconds int // intervalo entre ticks
	TimeoutSeconds  int // timeout propio del endpoint de polling
	MaxFailures     int // fallos consecutivos antes de aplicar backoff
}

// Interval devuelve el intervalo como time.Duration.
func (c PollConfig) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// Timeout devuelve el timeout del polling como time.Duration.
func (c PollConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig almacenamiento de la credencial de sesión.
type SessionConfig struct {
	CredencialPath string // archivo donde persiste el token (se relee en cada petición)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, CACHE_STALE_SECONDS, etc.
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
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "super-backoffice"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Backend: BackendConfig{
			BaseURL:        getString(v, "BACKEND_BASE_URL", "http://localhost:3001/api"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 20),
			LabelaryURL:    getString(v, "LABELARY_URL", "http://api.labelary.com/v1/printers/8dpmm/labels/4x6/0/"),
		},
		Cache: CacheConfig{
			StaleSeconds: getInt(v, "CACHE_STALE_SECONDS", 30),
			RetryMax:     getInt(v, "CACHE_RETRY_MAX", 3),
		},
		Poll: PollConfig{
			IntervalSeconds: getInt(v, "POLL_INTERVAL_SECONDS", 10),
			TimeoutSeconds:  getInt(v, "POLL_TIMEOUT_SECONDS", 15),
			MaxFailures:     getInt(v, "POLL_MAX_FAILURES", 3),
		},
		Session: SessionConfig{
			CredencialPath: getString(v, "SESSION_CRED_PATH", ".credencial"),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config: BACKEND_BASE_URL vacío")
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
