package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sdr-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-dashboard-api/pkg/log"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// Tentar realizar o login
		response, err := service.Login(req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("login: falha de autenticação")
			handleLoginError(w, err)
			return
		}

		writeJSON(w, r, response)
	}
}

func handleLoginError(w http.ResponseWriter, err error) {
	// Tentar fazer cast para AuthError para obter mais detalhes
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	default:
		// Erro genérico se não conseguirmos identificar especificamente
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
