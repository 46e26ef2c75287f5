package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	JWT struct {
		Secret     string `yaml:"secret"`
		Algorithm  string `yaml:"algorithm"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"jwt"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Upload struct {
		StorageType string `yaml:"storage_type"` // empty means local
		MaxSize     int64  `yaml:"max_size"`     // byte ceiling for one file
		Dir         string `yaml:"dir"`          // local directory for stored files
		BaseURL     string `yaml:"base_url"`     // public URL prefix
	} `yaml:"upload"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

// AppConfig is built once at startup and never mutated afterwards.
var AppConfig *Config

// DSN builds the MySQL connection string. parseTime is required for
// time.Time scanning; the 5s timeout matches the short connect budget.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&timeout=5s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// LoadConfig reads config.yaml when present and then applies environment
// overrides. A .env file is honored the same way the original deployment
// expected (dotenv).
func LoadConfig() {
	_ = godotenv.Load()

	cfg := defaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	}

	applyEnv(cfg)
	AppConfig = cfg
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Server.Env = "development"
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 3306
	cfg.Database.Name = "jobboard"
	cfg.JWT.Secret = "dev-secret"
	cfg.JWT.Algorithm = "HS256"
	cfg.JWT.TTLMinutes = 60
	cfg.Upload.MaxSize = 8 * 1024 * 1024
	cfg.Upload.Dir = "uploads"
	cfg.Upload.BaseURL = "/uploads"
	return cfg
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.Env, "SERVER_ENV")

	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASS")
	setString(&cfg.Database.Name, "DB_NAME")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.JWT.Algorithm, "JWT_ALGO")
	setInt(&cfg.JWT.TTLMinutes, "JWT_EXPIRES_MIN")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		cfg.CORS.AllowedOrigins = origins
	}

	setString(&cfg.Upload.StorageType, "UPLOAD_STORAGE")
	setInt64(&cfg.Upload.MaxSize, "UPLOAD_MAX_BYTES")
	setString(&cfg.Upload.Dir, "UPLOAD_DIR")

	setString(&cfg.Email.SMTPHost, "SMTP_HOST")
	setInt(&cfg.Email.SMTPPort, "SMTP_PORT")
	setString(&cfg.Email.SMTPUser, "SMTP_USER")
	setString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.Email.FromEmail, "SMTP_FROM_EMAIL")
	setString(&cfg.Email.FromName, "SMTP_FROM_NAME")

	setString(&cfg.FirstAdminEmail, "FIRST_ADMIN_EMAIL")
	setString(&cfg.FirstAdminPassword, "FIRST_ADMIN_PASSWORD")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

// GetConfig returns the process config, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
