package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/vfg2006/sdr-dashboard-api/pkg/log"
)

// Cors libera as origens configuradas em CORS_ALLOWED_ORIGINS ("*" libera todas)
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	allowAll := false
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With", log.CorrelationIDHeader},
		ExposedHeaders:   []string{log.CorrelationIDHeader},
		AllowCredentials: !allowAll,
		MaxAge:           86400, // Cache do CORS por 24 horas
	})
}
