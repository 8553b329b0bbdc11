package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sdr-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON responde com status 200 e o corpo serializado
func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

// writeDashboardError traduz erros do painel para o envelope padrão da API
func writeDashboardError(w http.ResponseWriter, r *http.Request, err error) {
	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		var details any
		if dashErr.SalespersonID != "" {
			details = map[string]any{"salesperson_id": dashErr.SalespersonID}
		}
		apiErrors.WriteError(w, dashErr.Code, dashErr.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("erro não mapeado no painel")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

// periodParam lê o período yyyy-mm (mês zero-based) da rota
func periodParam(r *http.Request) (domain.Period, error) {
	key := httprouter.ParamsFromContext(r.Context()).ByName("period")
	return domain.ParsePeriodKey(key)
}

func writeInvalidPeriod(w http.ResponseWriter, err error) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido. Use yyyy-mm com mês de 00 a 11", err.Error())
}
