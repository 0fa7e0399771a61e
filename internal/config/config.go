package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers understood by the repository package.
const (
	DriverStatic   = "static"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ConnString renders the settings as a libpq keyword/value string.
func (d DBConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// Config holds the configuration for the application.
type Config struct {
	Server struct {
		Addr            string        `mapstructure:"addr"`
		ReadTimeout     time.Duration `mapstructure:"read_timeout"`
		WriteTimeout    time.Duration `mapstructure:"write_timeout"`
		IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`
	Site struct {
		BasePath  string `mapstructure:"base_path"`
		Title     string `mapstructure:"title"`
		SourceURL string `mapstructure:"source_url"`
	} `mapstructure:"site"`
	Storage struct {
		Driver     string   `mapstructure:"driver"`
		DB         DBConfig `mapstructure:"db"`
		SQLitePath string   `mapstructure:"sqlite_path"`
	} `mapstructure:"storage"`
	TLS struct {
		Enable    bool     `mapstructure:"enable"`
		CertFile  string   `mapstructure:"cert_file"`
		KeyFile   string   `mapstructure:"key_file"`
		Hostnames []string `mapstructure:"hostnames"`
	} `mapstructure:"tls"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	MCP struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"mcp"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("site.base_path", "/virtual-team-planner")
	v.SetDefault("site.title", "Virtual Team")
	v.SetDefault("site.source_url", "https://github.com/tjscooper/virtual-team-planner")

	v.SetDefault("storage.driver", DriverStatic)
	v.SetDefault("storage.db.host", "localhost")
	v.SetDefault("storage.db.port", 5432)
	v.SetDefault("storage.db.user", "postgres")
	v.SetDefault("storage.db.password", "")
	v.SetDefault("storage.db.name", "vtp")
	v.SetDefault("storage.db.sslmode", "disable")
	v.SetDefault("storage.sqlite_path", "vtp.db")

	v.SetDefault("tls.enable", false)
	v.SetDefault("tls.cert_file", "certs/dev.crt")
	v.SetDefault("tls.key_file", "certs/dev.key")
	v.SetDefault("tls.hostnames", []string{"localhost", "127.0.0.1"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("mcp.enabled", true)
}

// LoadConfig loads the configuration from a file and the environment.
// With an empty path it looks for config.yaml in . and ./config; a missing
// file there is not an error. Environment variables use the VTP_ prefix,
// e.g. VTP_SERVER_ADDR or VTP_STORAGE_DRIVER.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("VTP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	config.Site.BasePath = normalizeBasePath(config.Site.BasePath)
	config.Storage.Driver = strings.ToLower(strings.TrimSpace(config.Storage.Driver))

	return &config, nil
}

// normalizeBasePath returns p with exactly one leading slash and no
// trailing slash. The root path normalizes to the empty string so it can
// be prefixed onto route paths directly.
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
