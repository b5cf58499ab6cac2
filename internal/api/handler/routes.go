package handler

import (
	"net/http"

	"github.com/vfg2006/appstore-ranking-api/internal/api/handler/router"
	"github.com/vfg2006/appstore-ranking-api/internal/usecases/ingesting"
	"github.com/vfg2006/appstore-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/appstore-ranking-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Rankings expõe as rotas públicas de consulta de rankings
func Rankings(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rankings",
			Method:  http.MethodGet,
			Handler: GetRankings(service),
		},
		{
			Path:    "/v1/rankings/dates",
			Method:  http.MethodGet,
			Handler: GetRankingDates(service),
		},
		{
			Path:    "/v1/rankings/categories",
			Method:  http.MethodGet,
			Handler: GetRankingCategories(service),
		},
	}
}

// RankingIngestion expõe a rota de ingestão manual, protegida pelo segredo de cron
func RankingIngestion(service ingesting.Ingester, cronSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rankings/fetch",
			Method:      http.MethodPost,
			Handler:     FetchRankings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronAuth(cronSecret)},
		},
	}
}

func CronJobs(services CronJobServices, cronSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronAuth(cronSecret)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronAuth(cronSecret)},
		},
	}
}
