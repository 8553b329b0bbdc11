package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_normalize(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		check   func(t *testing.T, c Config)
	}{
		{
			name: "Driver em maiúsculas é aceito",
			config: Config{
				Storage: Storage{Driver: " SQLite "},
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, StorageDriverSQLite, c.Storage.Driver)
			},
		},
		{
			name: "Driver desconhecido",
			config: Config{
				Storage: Storage{Driver: "redis"},
			},
			wantErr: true,
		},
		{
			name: "TTL ausente recebe 24h",
			config: Config{
				Storage: Storage{Driver: StorageDriverMemory},
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 24*time.Hour, c.Auth.TokenTTL)
			},
		},
		{
			name: "Origens vazias são descartadas",
			config: Config{
				Storage: Storage{Driver: StorageDriverMemory},
				Cors:    Cors{AllowedOrigins: []string{" http://localhost:3000 ", "", "  "}},
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, []string{"http://localhost:3000"}, c.Cors.AllowedOrigins)
			},
		},
		{
			name: "Segredo configurado é mantido",
			config: Config{
				Storage: Storage{Driver: StorageDriverMemory},
				Auth:    Auth{Secret: " segredo-do-gestor "},
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "segredo-do-gestor", c.Auth.Secret)
			},
		},
		{
			name: "Segredo ausente recebe valor aleatório",
			config: Config{
				Storage: Storage{Driver: StorageDriverMemory},
			},
			check: func(t *testing.T, c Config) {
				assert.Len(t, c.Auth.Secret, generatedSecretLength)
				assert.NotEqual(t, PlaceholderAuthSecret, c.Auth.Secret)
			},
		},
		{
			name: "Segredo de exemplo é recusado",
			config: Config{
				Storage: Storage{Driver: StorageDriverMemory},
				Auth:    Auth{Secret: PlaceholderAuthSecret},
			},
			wantErr: true,
		},
		{
			name: "DSN do PostgreSQL",
			config: Config{
				Storage: Storage{Driver: StorageDriverPostgres},
				Database: Database{
					Driver:   "postgres",
					User:     "gestor",
					Password: "segredo",
					URL:      "db:5432/sdr?sslmode=disable",
				},
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "postgres://gestor:segredo@db:5432/sdr?sslmode=disable", c.Database.DSN)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.config
			err := c.normalize()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestConfig_normalize_SegredoPorProcesso(t *testing.T) {
	first := Config{Storage: Storage{Driver: StorageDriverMemory}}
	second := Config{Storage: Storage{Driver: StorageDriverMemory}}

	require.NoError(t, first.normalize())
	require.NoError(t, second.normalize())

	assert.NotEqual(t, first.Auth.Secret, second.Auth.Secret)
}
