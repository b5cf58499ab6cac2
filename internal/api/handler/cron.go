package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
	"github.com/vfg2006/appstore-ranking-api/internal/scheduler"
	"github.com/vfg2006/appstore-ranking-api/internal/usecases/ingesting"
	"github.com/vfg2006/appstore-ranking-api/pkg/apiErrors"
	"github.com/vfg2006/appstore-ranking-api/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRankings = "rankings"
	CronJobTypeFree     = "free"
	CronJobTypePaid     = "paid"
)

// CronJobServices contém os serviços necessários para execução manual de crons
type CronJobServices struct {
	RankingSyncService *scheduler.RankingSyncService
	IngestService      ingesting.Ingester
}

// FetchRankings executa sincronamente a ingestão completa de rankings e
// responde com os totais da execução. A data vem da query string; sem data,
// usa a data corrente.
func FetchRankings(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			date = utils.Today()
		}

		logrus.WithField("date", date).Info("INIT - FetchRankings")

		result, err := service.RunIngestion(date)
		if err != nil {
			if errors.Is(err, ingesting.ErrInvalidDate) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, formato esperado: yyyy-mm-dd", nil)
				return
			}

			logrus.WithError(err).Error("Erro na ingestão manual de rankings")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar ingestão de rankings", nil)
			return
		}

		response := map[string]any{
			"message":              "Ingestão de rankings concluída",
			"date":                 date,
			"total_entries":        result.TotalEntries,
			"categories_processed": result.CategoriesProcessed,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRankings:
			// Ingestão completa em background, mesma rotina do agendador
			if services.RankingSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de rankings não disponível", nil)
				return
			}
			services.RankingSyncService.TriggerManualSync(r.URL.Query().Get("date"))

		case CronJobTypeFree, CronJobTypePaid:
			// Ingestão síncrona apenas do ranking geral do tipo
			if services.IngestService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ingestão não disponível", nil)
				return
			}

			if err := services.IngestService.IngestOne(domain.RankingType(cronType), utils.Today()); err != nil {
				logrus.WithError(err).WithField("type", cronType).Error("Erro na ingestão manual do ranking geral")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao ingerir ranking geral", nil)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: rankings, free, paid", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"rankings": services.RankingSyncService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
