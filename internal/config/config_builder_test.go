package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validLayer carries the settings that have no defaults.
func validLayer() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/courses"}},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_DefaultsAloneFailValidation(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		validLayer(),
		&StructuredConfig{App: App{TokenIssuer: "first", PageSize: 3}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "second", cfg.App.TokenIssuer)
	assert.Equal(t, 3, cfg.App.PageSize)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration, "zero fields keep the default")
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "missing DSN", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero query timeout", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.QueryTimeout = 0 }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative token duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Minute }, wantErr: ErrInvalidAppConfigs},
		{name: "zero page size", mutate: func(cfg *StructuredConfig) { cfg.App.PageSize = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown environment", mutate: func(cfg *StructuredConfig) { cfg.App.Environment = "staging" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown log level", mutate: func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" }, wantErr: ErrInvalidAppConfigs},
		{name: "empty address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.App.TokenSignKey = "secret"
			cfg.Storage.DB.DSN = "postgres://localhost/courses"
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv / withFlags / withJSON ────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown-flag"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_SkippedWithoutPath(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Precedence(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"page_size": 50},
	})

	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_PAGE_SIZE", "20")
	t.Setenv("CONFIG", path)

	cfg, err := GetStructuredConfig([]string{"-token-issuer", "flag-issuer", "-page-size", "30"})
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer, "flags override env")
	assert.Equal(t, 50, cfg.App.PageSize, "json overrides flags")
	assert.Equal(t, 5*time.Second, cfg.Storage.DB.QueryTimeout, "defaults fill the rest")
	assert.False(t, cfg.App.IsProduction())
}

func TestGetStructuredConfig_InvalidFails(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "")
	t.Setenv("APP_TOKEN_SIGN_KEY", "")

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
