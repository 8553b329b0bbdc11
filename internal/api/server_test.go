package api

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sdr-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sdr-dashboard-api/infrastructure/storage/memory"
	"github.com/vfg2006/sdr-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sdr-dashboard-api/internal/config"
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
	"github.com/vfg2006/sdr-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sdr-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-dashboard-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const testPassword = "senha-do-gestor"

// 15 de junho de 2024: período ativo 2024-05
var fixedNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

type testServer struct {
	handler http.Handler
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	hash, err := authenticating.HashPassword(testPassword)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: config.Auth{
			Secret:              "test-secret",
			TokenTTL:            time.Hour,
			ManagerPasswordHash: hash,
		},
		Cors: config.Cors{AllowedOrigins: []string{"*"}},
		PersistenceRetry: config.PersistenceRetry{
			CronSchedule: "*/5 * * * *",
		},
	}

	collectors := metrics.New()
	repo := repository.NewDashboardRepository(memory.New(), "", "")
	service := dashboarding.NewService(repo,
		dashboarding.WithClock(func() time.Time { return fixedNow }),
		dashboarding.WithRand(rand.New(rand.NewPCG(1, 2))),
		dashboarding.WithMetrics(collectors),
	)
	require.NoError(t, service.Load(context.Background()))

	authenticator := authenticating.NewService(cfg.Auth)
	cronServices := handler.CronJobServices{
		PersistenceRetryService: scheduler.NewPersistenceRetryService(service, cfg),
	}

	srv := &testServer{handler: NewHandler(cfg, service, authenticator, cronServices, collectors)}

	rec := srv.do(t, http.MethodPost, "/v1/login", `{"password":"`+testPassword+`"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var login domain.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	srv.token = login.Token

	return srv
}

func (s *testServer) do(t *testing.T, method, path, body string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr.Code
}

func TestServer_Authentication(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Healthcheck é público", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/healthcheck", "", false)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("Rota protegida sem token", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/v1/salespersons", "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingToken, errorCode(t, rec))
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		rec := srv.do(t, http.MethodPost, "/v1/login", `{"password":"outra-senha"}`, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, errorCode(t, rec))
	})

	t.Run("Token inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/salespersons", nil)
		req.Header.Set("Authorization", "Bearer abc.def.ghi")
		rec := httptest.NewRecorder()
		srv.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, errorCode(t, rec))
	})
}

func TestServer_Salespersons(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/v1/salespersons", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var roster []domain.Salesperson
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roster))
	require.Len(t, roster, 3)

	rec = srv.do(t, http.MethodPost, "/v1/salespersons", `{"name":"  ANA  ","gender":"FEMALE"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.RosterResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Applied)
	require.NotNil(t, created.Salesperson)
	assert.Equal(t, "ANA", created.Salesperson.Name)
	assert.Len(t, created.Roster, 4)

	t.Run("Gênero inválido", func(t *testing.T) {
		rec := srv.do(t, http.MethodPost, "/v1/salespersons", `{"name":"BIA","gender":"OTHER"}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("Nome vazio é ignorado sem erro", func(t *testing.T) {
		rec := srv.do(t, http.MethodPost, "/v1/salespersons", `{"name":"   ","gender":"MALE"}`, true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"applied":false`)
	})

	t.Run("Renomear consultor", func(t *testing.T) {
		rec := srv.do(t, http.MethodPut, "/v1/salespersons/"+created.Salesperson.ID, `{"name":"ANA MARIA"}`, true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ANA MARIA")
	})

	t.Run("Renomear consultor inexistente", func(t *testing.T) {
		rec := srv.do(t, http.MethodPut, "/v1/salespersons/nao-existe", `{"name":"X"}`, true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrSalespersonNotFound, errorCode(t, rec))
	})

	t.Run("Remoção sem confirmação", func(t *testing.T) {
		rec := srv.do(t, http.MethodDelete, "/v1/salespersons/"+created.Salesperson.ID, "", true)
		assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
		assert.Equal(t, apiErrors.ErrConfirmationRequired, errorCode(t, rec))
	})

	t.Run("Remoção confirmada", func(t *testing.T) {
		rec := srv.do(t, http.MethodDelete, "/v1/salespersons/"+created.Salesperson.ID+"?confirm=true", "", true)
		assert.Equal(t, http.StatusOK, rec.Code)

		var result domain.RosterResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Applied)
		assert.Len(t, result.Roster, 3)
	})
}

func TestServer_Periods(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCode   string
		wantBody   string
	}{
		{
			name:       "Período ativo",
			method:     http.MethodGet,
			path:       "/v1/active-period",
			wantStatus: http.StatusOK,
			wantBody:   `"key":"2024-05"`,
		},
		{
			name:       "Resolver período inexistente não grava",
			method:     http.MethodGet,
			path:       "/v1/periods/2023-00",
			wantStatus: http.StatusOK,
			wantBody:   `"persisted":false`,
		},
		{
			name:       "Período com mês 12 é inválido",
			method:     http.MethodGet,
			path:       "/v1/periods/2024-12",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidPeriod,
		},
		{
			name:       "Editar campo do mês",
			method:     http.MethodPut,
			path:       "/v1/periods/2024-05/fields",
			body:       `{"field":"nrGoal","value":"1000"}`,
			wantStatus: http.StatusOK,
			wantBody:   `"nrGoal":1000`,
		},
		{
			name:       "Editar campo desconhecido",
			method:     http.MethodPut,
			path:       "/v1/periods/2024-05/fields",
			body:       `{"field":"foo","value":1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrUnknownField,
		},
		{
			name:       "Editar período não materializado",
			method:     http.MethodPut,
			path:       "/v1/periods/2099-00/fields",
			body:       `{"field":"nrGoal","value":1}`,
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrPeriodNotFound,
		},
		{
			name:       "Editar consultor",
			method:     http.MethodPut,
			path:       "/v1/periods/2024-05/consultants/sp1/fields",
			body:       `{"field":"inboundLeads","value":7}`,
			wantStatus: http.StatusOK,
			wantBody:   `"inboundLeads":7`,
		},
		{
			name:       "Editar consultor inexistente",
			method:     http.MethodPut,
			path:       "/v1/periods/2024-05/consultants/nao-existe/fields",
			body:       `{"field":"inboundLeads","value":7}`,
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrSalespersonNotFound,
		},
		{
			name:       "Painel do período",
			method:     http.MethodGet,
			path:       "/v1/periods/2024-05/dashboard",
			wantStatus: http.StatusOK,
			wantBody:   `"key":"2024-05"`,
		},
		{
			name:       "Job desconhecido",
			method:     http.MethodPost,
			path:       "/v1/cron/desconhecido/run",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrUnknownJob,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, tt.method, tt.path, tt.body, true)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestServer_SelectAndCloseMonth(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPut, "/v1/active-period", `{"year":2024,"month":6}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"persisted":true`)

	rec = srv.do(t, http.MethodGet, "/v1/periods", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var available domain.AvailablePeriods
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &available))
	assert.Equal(t, domain.PeriodKey("2024-06"), available.Active)
	assert.Contains(t, available.Periods, domain.PeriodKey("2024-05"))
	assert.Contains(t, available.Periods, domain.PeriodKey("2024-06"))

	rec = srv.do(t, http.MethodPost, "/v1/periods/2024-06/close", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isClosed":true`)

	// Mês fechado: a edição é ignorada sem erro
	rec = srv.do(t, http.MethodPut, "/v1/periods/2024-06/fields", `{"field":"workingDays","value":5}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"applied":false`)
	assert.Contains(t, rec.Body.String(), `"workingDays":21`)
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t)

	srv.do(t, http.MethodGet, "/v1/salespersons", "", true)

	rec := srv.do(t, http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `sdr_dashboard_http_requests_total{method="GET",path="/v1/salespersons",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `sdr_dashboard_persistence_saves_total{outcome="applied"}`)
}
