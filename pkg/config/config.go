package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Storage StorageConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// MongoConfig configuración del almacén de documentos.
// Si CredentialsFile no está vacío, las credenciales se leen de ese archivo
// JSON al arrancar y tienen prioridad sobre URI/Database.
type MongoConfig struct {
	URI             string
	Database        string
	CredentialsFile string
}

// mongoCredentials formato del archivo de credenciales local.
type mongoCredentials struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

// Resolve aplica el archivo de credenciales (si existe) sobre URI/Database.
func (c *MongoConfig) Resolve() error {
	if c.CredentialsFile == "" {
		return nil
	}
	raw, err := os.ReadFile(c.CredentialsFile)
	if err != nil {
		return fmt.Errorf("leer credenciales de mongo: %w", err)
	}
	var creds mongoCredentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return fmt.Errorf("parsear credenciales de mongo: %w", err)
	}
	if creds.URI != "" {
		c.URI = creds.URI
	}
	if creds.Database != "" {
		c.Database = creds.Database
	}
	return nil
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig configuración del almacenamiento de archivos.
type StorageConfig struct {
	// PublicBaseURL base de las URLs públicas devueltas al subir archivos,
	// p. ej. https://api.frontino.example. Vacío = URLs relativas.
	PublicBaseURL string
	Bucket        string // nombre del bucket GridFS
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde un archivo .env en el directorio de trabajo). Las env vars tienen
// prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, MONGO_URI,
// MONGO_CREDENTIALS_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "frontino-api"),
		},
		Mongo: MongoConfig{
			URI:             getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database:        getString(v, "MONGO_DATABASE", "frontino"),
			CredentialsFile: getString(v, "MONGO_CREDENTIALS_FILE", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "frontino-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Storage: StorageConfig{
			PublicBaseURL: getString(v, "STORAGE_PUBLIC_BASE_URL", ""),
			Bucket:        getString(v, "STORAGE_BUCKET", "storage"),
		},
	}

	if err := cfg.Mongo.Resolve(); err != nil {
		return nil, err
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
