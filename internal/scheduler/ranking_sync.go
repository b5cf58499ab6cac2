// Package scheduler contém os serviços de agendamento para ingestão de rankings
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/appstore-ranking-api/internal/config"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
	"github.com/vfg2006/appstore-ranking-api/internal/usecases/ingesting"
	"github.com/vfg2006/appstore-ranking-api/pkg/utils"
)

type RankingSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RankingSyncService agenda e executa a ingestão diária de rankings. O mutex de
// execução garante uma ingestão por vez neste processo; é ele que evita duas
// ingestões concorrentes para a mesma data.
type RankingSyncService struct {
	scheduler           *gocron.Scheduler
	ingestService       ingesting.Ingester
	config              RankingSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncResult      *domain.IngestionResult
}

func NewRankingSyncService(
	ingestService ingesting.Ingester,
	cfg *config.Config,
) *RankingSyncService {
	syncConfig := RankingSyncConfig{
		CronSchedule: cfg.RankingSync.CronSchedule,
		SyncEnabled:  cfg.RankingSync.SyncEnabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de ingestão de rankings carregada")

	return &RankingSyncService{
		scheduler:     scheduler,
		ingestService: ingestService,
		config:        syncConfig,
	}
}

func (s *RankingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Ingestão agendada de rankings desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de ingestão de rankings")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncRankings(utils.Today())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ingestão de rankings: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de ingestão de rankings")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RankingSyncService) syncRankings(date string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ingestão de rankings já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
		s.lastSyncCompletedAt = time.Now()
	}()

	result, err := s.ingestService.RunIngestion(date)
	if err != nil {
		logrus.WithError(err).WithField("date", date).Error("Erro na ingestão agendada de rankings")
		return
	}

	s.lastSyncResult = result
}

// TriggerManualSync inicia manualmente uma ingestão completa para a data informada
func (s *RankingSyncService) TriggerManualSync(date string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ingestão de rankings já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	if date == "" {
		date = utils.Today()
	}

	logrus.WithField("date", date).Info("Iniciando ingestão manual de rankings")
	go s.syncRankings(date)
}

// GetStatus retorna o status atual do agendador
func (s *RankingSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastSyncResult != nil {
		status["last_sync_total_entries"] = s.lastSyncResult.TotalEntries
		status["last_sync_categories_processed"] = s.lastSyncResult.CategoriesProcessed
	}

	return status
}
