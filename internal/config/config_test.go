package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DSN", "DATABASE_URL", "APP_ENV", "NODE_ENV", "MONGO_URI", "ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultEnv, cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Contains(t, cfg.DSN, "@tcp(")
}

func TestLoadYAMLWithLegacyAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`
port: 8080
node_env: production
mongo_uri: mongodb://localhost:27017/portofolio
cors_allowed_origins:
  - http://localhost:5173
  - " "
database:
  host: db.internal
  username: site
  password: s3cret
  name: portfolio
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "mongodb://localhost:27017/portofolio", cfg.LegacyMongoURI)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Contains(t, cfg.DSN, "site:s3cret@tcp(db.internal:3306)/portfolio")
}

func TestDSNValuePrefersExplicitDSN(t *testing.T) {
	c := DatabaseRuntimeConfig{
		DSN:  "user:pw@tcp(1.2.3.4:3306)/x",
		Host: "ignored",
	}
	assert.Equal(t, "user:pw@tcp(1.2.3.4:3306)/x", c.DSNValue())
}
