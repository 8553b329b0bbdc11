package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sdr-dashboard-api/internal/config"
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, password string) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &Service{
		cfg: config.Auth{
			Secret:              "test-secret",
			TokenTTL:            time.Hour,
			ManagerPasswordHash: string(hash),
		},
		now: time.Now,
	}
}

func TestService_Login(t *testing.T) {
	service := newTestService(t, "s3nha-forte")

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "Senha correta", password: "s3nha-forte"},
		{name: "Senha incorreta", password: "errada", wantErr: ErrInvalidCredentials},
		{name: "Senha vazia", password: "", wantErr: ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := service.Login(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, response)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, response.Token)

			claims, err := service.ValidateToken(response.Token)
			require.NoError(t, err)
			assert.Equal(t, domain.ManagerSubject, claims.Subject)
			assert.Equal(t, domain.ManagerSubject, claims.Role)
		})
	}
}

func TestService_Login_WithoutHash(t *testing.T) {
	service := NewService(config.Auth{Secret: "x", TokenTTL: time.Hour})

	_, err := service.Login("qualquer")
	assert.ErrorIs(t, err, ErrLoginDisabled)
	assert.True(t, IsCredentialsError(err))
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(t, "s3nha-forte")
	response, err := service.Login("s3nha-forte")
	require.NoError(t, err)

	t.Run("Token expirado", func(t *testing.T) {
		expired := *service
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err := expired.ValidateToken(response.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token assinado com outro segredo", func(t *testing.T) {
		other := *service
		other.cfg.Secret = "outro"

		_, err := other.ValidateToken(response.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Texto que não é token", func(t *testing.T) {
		_, err := service.ValidateToken("abc")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHashPassword(t *testing.T) {
	_, err := HashPassword("curta")
	assert.ErrorIs(t, err, ErrWeakPassword)

	hash, err := HashPassword("senha-longa-o-bastante")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("senha-longa-o-bastante")))
}
