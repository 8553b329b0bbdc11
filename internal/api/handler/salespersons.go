package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sdr-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-dashboard-api/pkg/log"
)

// ListSalespersons retorna o roster completo, na ordem de cadastro
func ListSalespersons(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.Roster())
	}
}

// CreateSalesperson adiciona um consultor em todos os períodos
func CreateSalesperson(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateSalespersonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.AddSalesperson(r.Context(), req)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		if result.Applied {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			if err := json.NewEncoder(w).Encode(result); err != nil {
				log.ForContext(r.Context()).WithError(err).Error("salespersons: erro ao codificar resposta")
			}
			return
		}

		writeJSON(w, r, result)
	}
}

// RenameSalesperson troca o nome do consultor; ignorado se o período ativo estiver fechado
func RenameSalesperson(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.RenameSalespersonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.RenameSalesperson(r.Context(), id, req.Name)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, result)
	}
}

// DeleteSalesperson remove o consultor de todos os períodos. Exige ?confirm=true.
func DeleteSalesperson(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
		if !confirmed {
			apiErrors.WriteError(w, apiErrors.ErrConfirmationRequired, "Confirme a remoção com ?confirm=true", map[string]any{"salesperson_id": id})
			return
		}

		result, err := service.RemoveSalesperson(r.Context(), id)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, result)
	}
}
