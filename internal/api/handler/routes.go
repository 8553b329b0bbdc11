package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/sdr-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sdr-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sdr-dashboard-api/pkg/metrics"
	"github.com/vfg2006/sdr-dashboard-api/pkg/middleware"
)

func Healthcheck(flusher scheduler.PendingFlusher) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(flusher),
		},
	}
}

func Metrics(collectors *metrics.Collectors) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(collectors.Registry, promhttp.HandlerOpts{}),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Salespersons(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/salespersons",
			Method:      http.MethodGet,
			Handler:     ListSalespersons(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/salespersons",
			Method:      http.MethodPost,
			Handler:     CreateSalesperson(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/salespersons/:id",
			Method:      http.MethodPut,
			Handler:     RenameSalesperson(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/salespersons/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSalesperson(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}

func Periods(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailablePeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/active-period",
			Method:      http.MethodGet,
			Handler:     GetActivePeriod(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/active-period",
			Method:      http.MethodPut,
			Handler:     SelectPeriod(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/periods/:period",
			Method:      http.MethodGet,
			Handler:     GetPeriod(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/periods/:period/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/periods/:period/fields",
			Method:      http.MethodPut,
			Handler:     UpdateMonthField(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/periods/:period/consultants/:id/fields",
			Method:      http.MethodPut,
			Handler:     UpdateConsultantField(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/periods/:period/close",
			Method:      http.MethodPost,
			Handler:     CloseMonth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}
