// Package config loads runtime startup configuration from YAML with
// environment-variable fallbacks, mirroring the knobs the legacy Node
// deployment read from .env (PORT, MONGO_URI, NODE_ENV, CORS origins).
package config

import (
	"fmt"
	"net"
	neturl "net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 5000
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "portfolio"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"
)

// AppConfig holds runtime startup configuration.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	DSN            string                `yaml:"dsn"`
	Database       DatabaseRuntimeConfig `yaml:"database"`
	Env            string                `yaml:"env"` // "development" | "production"
	AllowedOrigins []string              `yaml:"allowed_origins"`
	LegacyMongoURI string                `yaml:"legacy_mongo_uri"`
}

type DatabaseRuntimeConfig struct {
	DSN      string `yaml:"dsn"`
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

// rawAppConfig accepts every spelling the legacy .env and docker setups used.
type rawAppConfig struct {
	Port           int                   `yaml:"port"`
	DSN            string                `yaml:"dsn"`
	DatabaseURL    string                `yaml:"database_url"`
	Database       DatabaseRuntimeConfig `yaml:"database"`
	Env            string                `yaml:"env"`
	NodeEnv        string                `yaml:"node_env"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
	CORSOrigins    []string              `yaml:"cors_allowed_origins"`
	LegacyMongoURI string                `yaml:"legacy_mongo_uri"`
	MongoURI       string                `yaml:"mongo_uri"`
}

// Load reads the YAML file at path. A missing file is not an error: defaults
// plus environment variables then drive the whole configuration, which keeps
// container deployments config-file free.
func Load(path string) (*AppConfig, error) {
	var raw rawAppConfig

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to env + defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := AppConfig{
		Port:           raw.Port,
		DSN:            firstNonEmpty(raw.DSN, raw.DatabaseURL),
		Database:       raw.Database,
		Env:            firstNonEmpty(raw.Env, raw.NodeEnv),
		AllowedOrigins: raw.AllowedOrigins,
		LegacyMongoURI: firstNonEmpty(raw.LegacyMongoURI, raw.MongoURI),
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = raw.CORSOrigins
	}

	applyEnvOverrides(&cfg)
	normalize(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if cfg.Port == 0 {
		if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv("PORT"))); err == nil && v > 0 {
			cfg.Port = v
		}
	}
	if cfg.DSN == "" {
		cfg.DSN = firstNonEmpty(os.Getenv("DSN"), os.Getenv("DATABASE_URL"))
	}
	if cfg.Env == "" {
		cfg.Env = firstNonEmpty(os.Getenv("APP_ENV"), os.Getenv("NODE_ENV"))
	}
	if cfg.LegacyMongoURI == "" {
		cfg.LegacyMongoURI = os.Getenv("MONGO_URI")
	}
	if len(cfg.AllowedOrigins) == 0 {
		if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
			cfg.AllowedOrigins = strings.Split(v, ",")
		}
	}
}

func normalize(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.DSN == "" {
		cfg.DSN = cfg.Database.DSNValue()
	}

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.AllowedOrigins = origins
}

// DSNValue assembles a MySQL DSN from parts, unless a full DSN/URL is given.
func (c DatabaseRuntimeConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.URL); v != "" {
		return v
	}

	host := firstNonEmpty(c.Host, defaultDBHost)
	port := c.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := firstNonEmpty(c.User, c.Username, defaultDBUser)
	password := firstNonEmpty(c.Password, defaultDBPassword)
	name := firstNonEmpty(c.Name, defaultDBName)
	charset := firstNonEmpty(c.Charset, defaultDBCharset)
	loc := firstNonEmpty(c.Loc, defaultDBLoc)

	params := neturl.Values{}
	params.Set("charset", charset)
	params.Set("parseTime", "True")
	params.Set("loc", loc)

	return fmt.Sprintf("%s:%s@tcp(%s)/%s?%s",
		user, password, net.JoinHostPort(host, strconv.Itoa(port)), name, params.Encode())
}

func (c *AppConfig) IsDev() bool {
	return c.Env != "production"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
