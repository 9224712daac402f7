package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "bar.db", cfg.DBDSN)
	assert.Equal(t, "1234", cfg.ManagerPasscode)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 500*time.Millisecond, cfg.PersistInterval)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_DSN", "bar:secret@tcp(localhost:3306)/bar?parseTime=true")
	t.Setenv("MANAGER_PASSCODE", "4321")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("PERSIST_INTERVAL", "0s")
	t.Setenv("BAR_TIMEZONE", "America/Sao_Paulo")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "4321", cfg.ManagerPasscode)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, time.Duration(0), cfg.PersistInterval)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("BAR_TIMEZONE", "Mars/Olympus")
	_, err = Load()
	assert.Error(t, err)
}

func TestInitDBSqlite(t *testing.T) {
	cfg := &Config{DBDriver: "sqlite", DBDSN: "file:config_test?mode=memory&cache=shared"}
	db, err := InitDB(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}
