package appstore

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore/appstoreclient"
	appstoredomain "github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore/domain"
	"github.com/vfg2006/appstore-ranking-api/internal/config"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
)

type AppStoreIntegrator interface {
	// FetchRanking busca a lista ranqueada de apps de um tipo, no feed geral
	// (categoryID nil) ou no feed legado por categoria
	FetchRanking(rankingType domain.RankingType, categoryID *string) ([]appstoredomain.RankedApp, error)

	// LookupAppMetadata enriquece uma lista de ids com metadados do lookup,
	// em lotes. Lotes com falha são pulados; a chamada nunca retorna erro.
	LookupAppMetadata(appIDs []string) map[string]appstoredomain.AppMetadata
}

type AppStoreService struct {
	cfg    *config.Config
	Client appstoreclient.Client
	pause  func(time.Duration)
}

func New(cfg *config.Config, client appstoreclient.Client) AppStoreIntegrator {
	return &AppStoreService{
		cfg:    cfg,
		Client: client,
		pause:  time.Sleep,
	}
}

func (s *AppStoreService) FetchRanking(
	rankingType domain.RankingType,
	categoryID *string,
) ([]appstoredomain.RankedApp, error) {
	if categoryID == nil {
		return s.fetchTopCharts(rankingType)
	}
	return s.fetchCategoryCharts(rankingType, *categoryID)
}

func (s *AppStoreService) fetchTopCharts(rankingType domain.RankingType) ([]appstoredomain.RankedApp, error) {
	apps, err := s.Client.TopCharts(rankingType)
	if err != nil {
		return nil, err
	}

	ranked := make([]appstoredomain.RankedApp, 0, len(apps))
	for i, app := range apps {
		ranked = append(ranked, appstoredomain.RankedApp{
			ID:         app.ID,
			Name:       app.Name,
			ArtistName: app.ArtistName,
			IconURL:    app.ArtworkURL100,
			StoreURL:   app.URL,
			Position:   i + 1,
		})
	}

	return ranked, nil
}

func (s *AppStoreService) fetchCategoryCharts(
	rankingType domain.RankingType,
	categoryID string,
) ([]appstoredomain.RankedApp, error) {
	entries, err := s.Client.CategoryCharts(rankingType, categoryID)
	if err != nil {
		return nil, err
	}

	ranked := make([]appstoredomain.RankedApp, 0, len(entries))
	for i, entry := range entries {
		ranked = append(ranked, appstoredomain.RankedApp{
			ID:         entry.ID.Attributes.ID,
			Name:       entry.Name.Label,
			ArtistName: entry.Artist.Label,
			IconURL:    selectIcon(entry.Images),
			StoreURL:   entry.ID.Label,
			Position:   i + 1,
		})
	}

	return ranked, nil
}

// selectIcon escolhe a terceira resolução do array de imagens do feed legado,
// caindo para a primeira quando o array é menor
func selectIcon(images []appstoredomain.Label) string {
	if len(images) >= 3 {
		return images[2].Label
	}
	if len(images) > 0 {
		return images[0].Label
	}
	return ""
}

func (s *AppStoreService) LookupAppMetadata(appIDs []string) map[string]appstoredomain.AppMetadata {
	metadataByID := make(map[string]appstoredomain.AppMetadata)
	batchSize := s.cfg.AppStore.LookupBatchSize

	for start := 0; start < len(appIDs); start += batchSize {
		end := start + batchSize
		if end > len(appIDs) {
			end = len(appIDs)
		}

		results, err := s.Client.Lookup(appIDs[start:end])
		if err != nil {
			// Lote com falha é apenas pulado: metadados parciais são aceitáveis
			// e os campos ausentes recebem defaults na reconciliação
			logrus.WithError(err).WithFields(logrus.Fields{
				"batch_start": start,
				"batch_size":  end - start,
			}).Error("Erro ao buscar metadados de um lote de apps")
		} else {
			for _, app := range results {
				id := strconv.FormatInt(app.TrackID, 10)
				metadataByID[id] = s.toAppMetadata(app)
			}
		}

		// Pausa entre lotes apenas para respeitar o rate limit da API de lookup
		if end < len(appIDs) {
			s.pause(time.Duration(s.cfg.AppStore.BatchDelayMS) * time.Millisecond)
		}
	}

	return metadataByID
}

func (s *AppStoreService) toAppMetadata(app appstoredomain.LookupApp) appstoredomain.AppMetadata {
	metadata := appstoredomain.AppMetadata{
		Price:      app.Price,
		Currency:   app.Currency,
		Rating:     app.AverageUserRating,
		GenreIDs:   app.GenreIDs,
		GenreNames: app.Genres,
	}

	if metadata.Currency == "" {
		metadata.Currency = s.cfg.AppStore.DefaultCurrency
	}

	if app.UserRatingCount != nil {
		metadata.ReviewCount = *app.UserRatingCount
	}

	if app.PrimaryGenreName != "" {
		name := app.PrimaryGenreName
		metadata.PrimaryGenreName = &name
	}

	if app.PrimaryGenreID != 0 {
		id := strconv.FormatInt(app.PrimaryGenreID, 10)
		metadata.PrimaryGenreID = &id
	}

	return metadata
}
