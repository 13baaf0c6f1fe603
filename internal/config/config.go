package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 2333
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "smaranika"
	defaultDBCharset  = "utf8mb4"
	defaultRedisURL   = "redis://localhost:6379/0"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int            `yaml:"port"`
	DSN            string         `yaml:"dsn"` // MySQL DSN; assembled from Database when empty
	RedisURL       string         `yaml:"redis_url"`
	Database       DatabaseConfig `yaml:"database"`
	Env            string         `yaml:"env"` // "development" | "production"
	AllowedOrigins []string       `yaml:"allowed_origins"`
	JWTSecret      string         `yaml:"jwt_secret"`
	Backup         BackupConfig   `yaml:"backup"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

// BackupConfig configures the S3 destination for content backups.
type BackupConfig struct {
	Enable    bool   `yaml:"enable"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Prefix    string `yaml:"prefix"`
}

// Load reads and validates the YAML config file.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	cfg.applyDefaults()
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Backup.Enable && (cfg.Backup.Bucket == "" || cfg.Backup.Region == "") {
		return nil, fmt.Errorf("backup.bucket and backup.region are required when backup is enabled")
	}
	return &cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, "development") || strings.EqualFold(c.Env, "dev")
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:     defaultPort,
		Env:      defaultEnv,
		RedisURL: defaultRedisURL,
		Database: DatabaseConfig{
			Host:     defaultDBHost,
			Port:     defaultDBPort,
			User:     defaultDBUser,
			Password: defaultDBPassword,
			Name:     defaultDBName,
			Charset:  defaultDBCharset,
		},
	}
}

func (c *AppConfig) applyDefaults() {
	d := &c.Database
	if d.Host == "" {
		d.Host = defaultDBHost
	}
	if d.Port == 0 {
		d.Port = defaultDBPort
	}
	if d.User == "" {
		d.User = defaultDBUser
	}
	if d.Name == "" {
		d.Name = defaultDBName
	}
	if d.Charset == "" {
		d.Charset = defaultDBCharset
	}
	if c.RedisURL == "" {
		c.RedisURL = defaultRedisURL
	}
	if strings.TrimSpace(c.DSN) == "" {
		c.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
			d.User, d.Password, d.Host, d.Port, d.Name, d.Charset)
	}
}
