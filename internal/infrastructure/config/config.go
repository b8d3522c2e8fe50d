package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverS3   = "s3"
	StorageDriverDisk = "disk"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	JWT      JWTConfig
	I18n     I18nConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxConns     int
	MinConns     int
	MaxIdleTime  int
	QueryTimeout time.Duration
	LogLevel     string
}

// StorageConfig configura o armazenamento dos avatares
type StorageConfig struct {
	Driver          string
	Bucket          string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
	UsePathStyle    bool
	DataDir         string // somente driver disk
}

type JWTConfig struct {
	Secret string
}

type I18nConfig struct {
	DefaultLanguage string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações das variáveis de ambiente.
// O arquivo envFile (ex.: .env) é opcional.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetInt("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASS"),
			DBName:       v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSL_MODE"),
			MaxConns:     v.GetInt("DB_MAX_CONNS"),
			MinConns:     v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime:  v.GetInt("DB_MAX_IDLE_TIME"),
			QueryTimeout: v.GetDuration("DB_QUERY_TIMEOUT"),
			LogLevel:     v.GetString("DB_LOG_LEVEL"),
		},
		Storage: StorageConfig{
			Driver:          strings.ToLower(v.GetString("STORAGE_DRIVER")),
			Bucket:          v.GetString("STORAGE_BUCKET"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			Region:          v.GetString("STORAGE_REGION"),
			AccessKeyID:     v.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("STORAGE_SECRET_ACCESS_KEY"),
			PublicBaseURL:   v.GetString("STORAGE_PUBLIC_BASE_URL"),
			UsePathStyle:    v.GetBool("STORAGE_USE_PATH_STYLE"),
			DataDir:         v.GetString("STORAGE_DATA_DIR"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		I18n: I18nConfig{
			DefaultLanguage: v.GetString("I18N_DEFAULT_LANGUAGE"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_QUERY_TIMEOUT", "5s")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("STORAGE_DRIVER", StorageDriverDisk)
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_DATA_DIR", "./data/avatars")
	v.SetDefault("STORAGE_PUBLIC_BASE_URL", "http://localhost:8080/avatars")
	v.SetDefault("I18N_DEFAULT_LANGUAGE", "pt-BR")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// Validate verifica se a configuração está completa
func (c *Config) Validate() error {
	var problems []string

	if c.Database.User == "" || c.Database.DBName == "" {
		problems = append(problems, "DB_USER and DB_NAME are required")
	}

	if c.JWT.Secret == "" {
		problems = append(problems, "JWT_SECRET is required")
	}

	switch c.Storage.Driver {
	case StorageDriverS3:
		if c.Storage.Bucket == "" {
			problems = append(problems, "STORAGE_BUCKET is required for s3 driver")
		}
		if c.Storage.PublicBaseURL == "" {
			problems = append(problems, "STORAGE_PUBLIC_BASE_URL is required for s3 driver")
		}
	case StorageDriverDisk:
		if c.Storage.DataDir == "" {
			problems = append(problems, "STORAGE_DATA_DIR is required for disk driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
