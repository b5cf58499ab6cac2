package appstoreclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	appstoredomain "github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore/domain"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
)

// TopCharts busca o ranking geral (sem categoria) no feed principal de top apps
func (c *AppStoreClient) TopCharts(rankingType domain.RankingType) ([]appstoredomain.TopChartsApp, error) {
	feed := "top-free"
	if rankingType == domain.RankingTypePaid {
		feed = "top-paid"
	}

	url := fmt.Sprintf(
		"%s/%s/%d/apps.json",
		c.config.AppStore.RSSBaseURL,
		feed,
		c.config.AppStore.RankingLimit,
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrFeedUnavailable, "feed principal respondeu %s", resp.Status)
	}

	var response appstoredomain.TopChartsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(ErrFeedUnavailable, "erro ao decodificar o feed principal")
	}

	return response.Feed.Results, nil
}
