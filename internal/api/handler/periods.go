package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sdr-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-dashboard-api/pkg/log"
)

// GetAvailablePeriods retorna os períodos já materializados no ledger
func GetAvailablePeriods(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periods := service.AvailablePeriods()

		log.ForContext(r.Context()).WithFields(log.Fields{
			"total_periods": len(periods.Periods),
			"period":        periods.Active,
		}).Debug("periods: períodos disponíveis recuperados")

		writeJSON(w, r, periods)
	}
}

func GetActivePeriod(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.ActivePeriod())
	}
}

// SelectPeriod grava o período se necessário e o torna ativo
func SelectPeriod(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SelectPeriodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		view, err := service.SelectPeriod(r.Context(), domain.Period{Year: req.Year, Month: req.Month})
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, view)
	}
}

// GetPeriod resolve o período sem gravá-lo
func GetPeriod(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodParam(r)
		if err != nil {
			writeInvalidPeriod(w, err)
			return
		}

		writeJSON(w, r, service.Resolve(period))
	}
}

// GetDashboard retorna a visão derivada completa do período
func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodParam(r)
		if err != nil {
			writeInvalidPeriod(w, err)
			return
		}

		writeJSON(w, r, service.Dashboard(period))
	}
}

// UpdateMonthField edita um campo do registro mensal
func UpdateMonthField(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodParam(r)
		if err != nil {
			writeInvalidPeriod(w, err)
			return
		}

		var req domain.UpdateFieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.UpdateMonthField(r.Context(), period, req.Field, req.Value)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, result)
	}
}

// UpdateConsultantField edita um campo do desempenho de um consultor no período
func UpdateConsultantField(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodParam(r)
		if err != nil {
			writeInvalidPeriod(w, err)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateFieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.UpdateConsultantField(r.Context(), period, id, req.Field, req.Value)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, result)
	}
}

// CloseMonth fecha o período de forma irreversível
func CloseMonth(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodParam(r)
		if err != nil {
			writeInvalidPeriod(w, err)
			return
		}

		result, err := service.CloseMonth(r.Context(), period)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, result)
	}
}
