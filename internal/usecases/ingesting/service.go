// Package ingesting implementa o pipeline de ingestão de rankings da App Store:
// busca dos feeds, enriquecimento por lookup e reconciliação dos snapshots.
package ingesting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore"
	appstoredomain "github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore/domain"
	"github.com/vfg2006/appstore-ranking-api/infrastructure/repository"
	"github.com/vfg2006/appstore-ranking-api/internal/config"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
	"github.com/vfg2006/appstore-ranking-api/pkg/utils"
)

type Ingester interface {
	// RunIngestion ingere o ranking geral e todas as categorias do catálogo,
	// nos dois tipos, para a data informada. A falha de uma categoria nunca
	// aborta a execução: é logada e contabilizada como não processada.
	RunIngestion(date string) (*domain.IngestionResult, error)

	// IngestOne ingere apenas o ranking geral (sem categoria) de um tipo.
	// Sem laço externo, os erros propagam diretamente ao chamador.
	IngestOne(rankingType domain.RankingType, date string) error
}

type Service struct {
	appStore        appstore.AppStoreIntegrator
	snapshotRepo    repository.RankingSnapshotRepository
	categories      []domain.Category
	defaultCurrency string
	categoryDelay   time.Duration
	pause           func(time.Duration)
}

func NewService(
	appStore appstore.AppStoreIntegrator,
	snapshotRepo repository.RankingSnapshotRepository,
	cfg *config.Config,
) Ingester {
	return &Service{
		appStore:        appStore,
		snapshotRepo:    snapshotRepo,
		categories:      domain.Categories,
		defaultCurrency: cfg.AppStore.DefaultCurrency,
		categoryDelay:   time.Duration(cfg.AppStore.CategoryDelayMS) * time.Millisecond,
		pause:           time.Sleep,
	}
}

// rankingTypes define a ordem fixa de ingestão dentro de uma categoria
var rankingTypes = []domain.RankingType{domain.RankingTypeFree, domain.RankingTypePaid}

func (s *Service) RunIngestion(date string) (*domain.IngestionResult, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, errors.Wrap(ErrInvalidDate, date)
	}

	startTime := time.Now()
	logrus.WithFields(logrus.Fields{
		"date":       date,
		"categories": len(s.categories) + 1,
	}).Info("Iniciando ingestão completa de rankings")

	result := &domain.IngestionResult{}

	// O ranking geral (categoria nula) entra primeiro, seguido do catálogo na ordem fixa
	targets := make([]*domain.Category, 0, len(s.categories)+1)
	targets = append(targets, nil)
	for i := range s.categories {
		targets = append(targets, &s.categories[i])
	}

	for i, category := range targets {
		if s.ingestCategory(date, category, result) {
			result.CategoriesProcessed++
		}

		// Pausa entre categorias para espalhar a carga nas APIs externas
		if i < len(targets)-1 {
			s.pause(s.categoryDelay)
		}
	}

	logrus.WithFields(logrus.Fields{
		"date":                 date,
		"total_entries":        result.TotalEntries,
		"categories_processed": result.CategoriesProcessed,
		"duration":             time.Since(startTime).String(),
	}).Info("Ingestão completa de rankings concluída")

	return result, nil
}

// ingestCategory processa os dois tipos de ranking de uma categoria, free primeiro.
// Retorna true apenas quando os dois tipos foram ingeridos com sucesso.
func (s *Service) ingestCategory(date string, category *domain.Category, result *domain.IngestionResult) bool {
	var categoryID, categoryName *string
	if category != nil {
		categoryID = &category.ID
		categoryName = &category.Name
	}

	succeeded := true
	for _, rankingType := range rankingTypes {
		count, err := s.ingestPair(rankingType, date, categoryID, categoryName)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"date":         date,
				"ranking_type": rankingType,
				"category_id":  categoryIDForLog(categoryID),
			}).Error("Erro ao ingerir ranking para categoria e tipo")
			succeeded = false
			continue
		}

		result.TotalEntries += count
	}

	return succeeded
}

func (s *Service) IngestOne(rankingType domain.RankingType, date string) error {
	if _, err := utils.ParseDate(date); err != nil {
		return errors.Wrap(ErrInvalidDate, date)
	}

	_, err := s.ingestPair(rankingType, date, nil, nil)
	return err
}

// ingestPair executa o ciclo completo para um par (tipo, categoria):
// feed → enriquecimento → reconciliação
func (s *Service) ingestPair(
	rankingType domain.RankingType,
	date string,
	categoryID *string,
	categoryName *string,
) (int, error) {
	ranked, err := s.appStore.FetchRanking(rankingType, categoryID)
	if err != nil {
		return 0, err
	}

	appIDs := make([]string, 0, len(ranked))
	for _, app := range ranked {
		appIDs = append(appIDs, app.ID)
	}

	metadataByID := s.appStore.LookupAppMetadata(appIDs)

	return s.reconcile(rankingType, date, categoryID, categoryName, ranked, metadataByID)
}

// reconcile substitui o snapshot vivo da chave (date, type, categoryID) pelos
// dados recém-buscados: remove o snapshot anterior com suas entradas, insere o
// novo snapshot e grava as entradas em lote na ordem do feed.
func (s *Service) reconcile(
	rankingType domain.RankingType,
	date string,
	categoryID *string,
	categoryName *string,
	ranked []appstoredomain.RankedApp,
	metadataByID map[string]appstoredomain.AppMetadata,
) (int, error) {
	existing, err := s.snapshotRepo.GetSnapshot(date, rankingType, categoryID)
	if err != nil {
		return 0, errors.Wrap(ErrReconcileFailed, err.Error())
	}

	if existing != nil {
		if err := s.snapshotRepo.DeleteSnapshotWithEntries(existing.ID); err != nil {
			return 0, errors.Wrap(ErrReconcileFailed, err.Error())
		}
	}

	snapshotID, err := s.snapshotRepo.CreateSnapshot(&domain.RankingSnapshot{
		FetchDate:    date,
		RankingType:  rankingType,
		CategoryID:   categoryID,
		CategoryName: categoryName,
	})
	if err != nil {
		return 0, errors.Wrap(ErrReconcileFailed, err.Error())
	}

	entries := make([]*domain.RankingEntry, 0, len(ranked))
	for _, app := range ranked {
		metadata, found := metadataByID[app.ID]
		entries = append(entries, s.buildEntry(snapshotID, app, metadata, found))
	}

	if err := s.snapshotRepo.BulkInsertEntries(entries); err != nil {
		// O snapshot recém-criado fica vazio; a próxima ingestão da mesma
		// chave o substitui
		return 0, errors.Wrap(ErrReconcileFailed, err.Error())
	}

	return len(entries), nil
}

// buildEntry monta uma entrada de ranking juntando o registro do feed com os
// metadados do lookup. Sem metadados, os campos recebem os defaults do domínio.
func (s *Service) buildEntry(
	snapshotID string,
	app appstoredomain.RankedApp,
	metadata appstoredomain.AppMetadata,
	found bool,
) *domain.RankingEntry {
	entry := &domain.RankingEntry{
		SnapshotID:    snapshotID,
		Rank:          app.Position,
		AppID:         app.ID,
		AppName:       app.Name,
		AppIconURL:    app.IconURL,
		DeveloperName: app.ArtistName,
		Currency:      s.defaultCurrency,
		AppStoreURL:   app.StoreURL,
	}

	if !found {
		return entry
	}

	entry.Price = metadata.Price
	entry.Currency = metadata.Currency
	entry.Rating = metadata.Rating
	entry.ReviewCount = metadata.ReviewCount
	entry.PrimaryGenre = metadata.PrimaryGenreName
	entry.PrimaryGenreID = metadata.PrimaryGenreID

	// Os gêneros vêm exclusivamente do lookup; o que o feed traz é ignorado
	genres := make([]domain.Genre, 0, len(metadata.GenreIDs))
	for i, id := range metadata.GenreIDs {
		name := ""
		if i < len(metadata.GenreNames) {
			name = metadata.GenreNames[i]
		}
		genres = append(genres, domain.Genre{ID: id, Name: name})
	}
	entry.Genres = genres

	return entry
}

func categoryIDForLog(categoryID *string) string {
	if categoryID == nil {
		return "overall"
	}
	return *categoryID
}
