package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 24*time.Hour, cfg.Session.Expiration)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.False(t, cfg.Session.CookieSecure, "la cookie no es secure-only por defecto")
	assert.False(t, cfg.Session.UseRedis())
	assert.Equal(t, "price.pdf", cfg.Upload.PriceFile)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
}

func TestRequireDatabase_SinConnectionString(t *testing.T) {
	cfg := fromViper(viper.New())
	assert.ErrorIs(t, cfg.RequireDatabase(), ErrMissingDatabase)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingDatabase)
}

func TestValidate_SinSecret(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgres://u:p@localhost:5432/site")
	cfg := fromViper(v)

	require.NoError(t, cfg.RequireDatabase())
	assert.ErrorIs(t, cfg.Validate(), ErrMissingSessionSecret)

	v.Set("SESSION_SECRET", "otro-secreto")
	assert.NoError(t, fromViper(v).Validate())
}

func TestDBConfig_DSNDesdePartes(t *testing.T) {
	v := viper.New()
	v.Set("DB_HOST", "db")
	v.Set("DB_NAME", "site")
	v.Set("DB_PASSWORD", "p@ss/word")
	v.Set("DB_PORT", "6543")
	cfg := fromViper(v)

	require.True(t, cfg.DB.Configured())
	dsn := cfg.DB.ConnectionString()
	assert.Contains(t, dsn, "db:6543/site")
	assert.Contains(t, dsn, "p%40ss%2Fword", "la contraseña debe ir codificada")
}

func TestSessionConfig_Redis(t *testing.T) {
	v := viper.New()
	v.Set("REDIS_URL", "redis://localhost:6379/0")
	v.Set("SESSION_EXPIRATION_HOURS", "12")
	cfg := fromViper(v)

	assert.True(t, cfg.Session.UseRedis())
	assert.Equal(t, 12*time.Hour, cfg.Session.Expiration)
}
