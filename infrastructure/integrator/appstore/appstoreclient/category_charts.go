package appstoreclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	appstoredomain "github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore/domain"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
)

// CategoryCharts busca o ranking de uma categoria no feed legado por gênero
func (c *AppStoreClient) CategoryCharts(
	rankingType domain.RankingType,
	categoryID string,
) ([]appstoredomain.CategoryChartsEntry, error) {
	feed := "topfreeapplications"
	if rankingType == domain.RankingTypePaid {
		feed = "toppaidapplications"
	}

	url := fmt.Sprintf(
		"%s/%s/limit=%d/genre=%s/json",
		c.config.AppStore.LegacyRSSURL,
		feed,
		c.config.AppStore.RankingLimit,
		categoryID,
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrFeedUnavailable, "feed da categoria %s respondeu %s", categoryID, resp.Status)
	}

	var response appstoredomain.CategoryChartsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrapf(ErrFeedUnavailable, "erro ao decodificar o feed da categoria %s", categoryID)
	}

	return response.Feed.Entry, nil
}
