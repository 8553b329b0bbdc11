package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{code: ErrMissingToken, wantStatus: http.StatusUnauthorized},
		{code: ErrInsufficientPrivilege, wantStatus: http.StatusForbidden},
		{code: ErrInvalidPeriod, wantStatus: http.StatusBadRequest},
		{code: ErrPeriodNotFound, wantStatus: http.StatusNotFound},
		{code: ErrSalespersonNotFound, wantStatus: http.StatusNotFound},
		{code: ErrConfirmationRequired, wantStatus: http.StatusPreconditionRequired},
		{code: ErrDatabaseOperation, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestHTTPStatusMap_OnlyReachableCodes(t *testing.T) {
	// Os códigos de usuário e de serviços externos não existem no painel
	for _, code := range []string{"AUTH_002", "AUTH_003", "AUTH_004", "AUTH_005", "SRV_003", "SRV_004"} {
		_, exists := httpStatusMap[code]
		assert.False(t, exists, code)
	}
}
