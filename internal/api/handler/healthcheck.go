package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sdr-dashboard-api/internal/scheduler"
)

func HealthcheckHandler(flusher scheduler.PendingFlusher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}
		if flusher != nil {
			body["pending_keys"] = flusher.PendingKeys()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
