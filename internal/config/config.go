package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type ServerConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Env          string `yaml:"env"`
	ReadTimeout  int    `yaml:"read_timeout"`  // секунды
	WriteTimeout int    `yaml:"write_timeout"` // секунды
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // postgres, mysql, sqlite
	DSN    string `yaml:"url"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	TTL    int    `yaml:"ttl"` // минуты, 0 - токен без срока действия
	Issuer string `yaml:"issuer"`
}

type StorageConfig struct {
	Type       string `yaml:"type"`        // local, s3, cloudflare_r2
	BasePath   string `yaml:"base_path"`   // For local storage
	BaseURL    string `yaml:"base_url"`    // Public URL base
	Bucket     string `yaml:"bucket"`      // For S3/R2
	Region     string `yaml:"region"`      // For S3
	AccessKey  string `yaml:"access_key"`  // For S3/R2
	SecretKey  string `yaml:"secret_key"`  // For S3/R2
	Endpoint   string `yaml:"endpoint"`    // For R2 or custom S3
	PublicRead bool   `yaml:"public_read"` // Make files public
}

type UploadConfig struct {
	MaxSize           int64  `yaml:"max_size"` // Max file size in bytes
	DefaultFolder     string `yaml:"default_folder"`
	EnforceReferences bool   `yaml:"enforce_references"` // пути в контенте должны ссылаться на загруженные файлы
	PreviewSize       int    `yaml:"preview_size"`       // сторона превью изображений в px, 0 - без превью
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Storage  StorageConfig  `yaml:"storage"`
	Upload   UploadConfig   `yaml:"upload"`
	CORS     CORSConfig     `yaml:"cors"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
	FirstAdminName     string `yaml:"first_admin_name"`
}

// MaxUploadSize - 50MB
const MaxUploadSize int64 = 50 * 1024 * 1024

// DefaultJWTSecret - секрет из примера конфига, допустим только в development
const DefaultJWTSecret = "change-me"

// Default возвращает конфиг, достаточный для локального запуска и тестов
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Server.Env = "development"
	cfg.Server.ReadTimeout = 30
	cfg.Server.WriteTimeout = 60

	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "compro.db"

	cfg.JWT.Secret = DefaultJWTSecret
	cfg.JWT.Issuer = "compro_backend"

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./storage/app/public"
	cfg.Storage.BaseURL = "/storage"

	cfg.Upload.MaxSize = MaxUploadSize
	cfg.Upload.DefaultFolder = "uploads"
	cfg.Upload.PreviewSize = 400
	cfg.Upload.EnforceReferences = true

	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.FirstAdminName = "Administrator"
	return cfg
}

var AppConfig *Config

// Load читает .env, YAML файл (CONFIG_PATH или config/config.yaml) и переменные окружения.
// Отсутствующий YAML файл - не ошибка: берутся значения по умолчанию.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARNING: failed to load .env file: %v", err)
	}

	cfg := Default()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("Config file %s not found, using defaults and environment", configPath)
	default:
		return nil, fmt.Errorf("failed to open config file at %s: %w", configPath, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig загружает конфиг в AppConfig, при ошибке завершает программу
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database url is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is required")
	}
	if c.JWT.Secret == DefaultJWTSecret && !c.IsDevelopment() {
		return fmt.Errorf("jwt secret %q must be replaced outside development", DefaultJWTSecret)
	}
	if c.JWT.TTL < 0 {
		return errors.New("jwt ttl must not be negative")
	}
	if c.Upload.MaxSize <= 0 {
		c.Upload.MaxSize = MaxUploadSize
	}
	if c.Upload.PreviewSize < 0 {
		return errors.New("upload preview_size must not be negative")
	}
	if c.Upload.DefaultFolder == "" {
		c.Upload.DefaultFolder = "uploads"
	}
	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// TokenTTL - 0 значит токен не истекает
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.TTL) * time.Minute
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// ============================================
// Переменные окружения
// ============================================

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.Env, "SERVER_ENV")

	setString(&cfg.Database.Driver, "DATABASE_DRIVER")
	setString(&cfg.Database.DSN, "DATABASE_URL")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setInt(&cfg.JWT.TTL, "JWT_TTL")

	setString(&cfg.Storage.Type, "STORAGE_TYPE")
	setString(&cfg.Storage.BasePath, "STORAGE_BASE_PATH")
	setString(&cfg.Storage.BaseURL, "STORAGE_BASE_URL")
	setString(&cfg.Storage.Bucket, "STORAGE_BUCKET")
	setString(&cfg.Storage.Region, "STORAGE_REGION")
	setString(&cfg.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "STORAGE_SECRET_KEY")
	setString(&cfg.Storage.Endpoint, "STORAGE_ENDPOINT")

	if v := os.Getenv("UPLOAD_MAX_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Upload.MaxSize = n
		}
	}
	setInt(&cfg.Upload.PreviewSize, "UPLOAD_PREVIEW_SIZE")
	if v := os.Getenv("UPLOAD_ENFORCE_REFERENCES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Upload.EnforceReferences = b
		}
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.AllowedOrigins = origins
	}

	setString(&cfg.FirstAdminEmail, "FIRST_ADMIN_EMAIL")
	setString(&cfg.FirstAdminPassword, "FIRST_ADMIN_PASSWORD")
	setString(&cfg.FirstAdminName, "FIRST_ADMIN_NAME")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	} else {
		log.Printf("WARNING: %s is not an integer: %q", key, v)
	}
}
