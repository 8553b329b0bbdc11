package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sdr-dashboard-api/pkg/log"
)

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{
			name:     "Reaproveita o ID recebido",
			incoming: "req-123",
			reuse:    true,
		},
		{
			name: "Gera um ID quando ausente",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = log.GetCorrelationID(r.Context())
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/periods", nil)
			if tt.incoming != "" {
				req.Header.Set(log.CorrelationIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()

			LoggingMiddleware()(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusTeapot, rec.Code)
			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(log.CorrelationIDHeader))
			if tt.reuse {
				assert.Equal(t, tt.incoming, seen)
			}
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
