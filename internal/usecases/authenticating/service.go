package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/sdr-dashboard-api/internal/config"
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
	"github.com/vfg2006/sdr-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength é o tamanho mínimo aceito por HashPassword
const MinPasswordLength = 8

// Authenticator autentica o gestor, único usuário do painel
type Authenticator interface {
	Login(password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg config.Auth
	now func() time.Time
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *Service) Login(password string) (*domain.LoginResponse, error) {
	if password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha é obrigatória")
	}

	if s.cfg.ManagerPasswordHash == "" {
		return nil, NewAuthError(ErrLoginDisabled, apiErrors.ErrInvalidCredentials, "Configure MANAGER_PASSWORD_HASH")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.ManagerPasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	expiresAt := s.now().Add(s.cfg.TokenTTL)
	token, err := generateJWT(s.cfg.Secret, s.now(), expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &domain.LoginResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}

func generateJWT(secretKey string, issuedAt, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		Role: domain.ManagerSubject,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   domain.ManagerSubject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Subject != domain.ManagerSubject {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem o gestor como sujeito")
	}

	return claims, nil
}

// HashPassword gera o hash bcrypt usado em MANAGER_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, fmt.Sprintf("a senha deve conter pelo menos %d caracteres", MinPasswordLength))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
