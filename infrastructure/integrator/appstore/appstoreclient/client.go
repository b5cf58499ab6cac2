package appstoreclient

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	appstoredomain "github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore/domain"
	"github.com/vfg2006/appstore-ranking-api/internal/config"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
)

// ErrFeedUnavailable indica que um feed da App Store respondeu com status de
// erro ou corpo inválido. O chamador decide se aborta só a categoria corrente.
var ErrFeedUnavailable = errors.New("feed da App Store indisponível")

type Client interface {
	TopCharts(rankingType domain.RankingType) ([]appstoredomain.TopChartsApp, error)
	CategoryCharts(rankingType domain.RankingType, categoryID string) ([]appstoredomain.CategoryChartsEntry, error)
	Lookup(appIDs []string) ([]appstoredomain.LookupApp, error)
}

type AppStoreClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AppStoreClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
