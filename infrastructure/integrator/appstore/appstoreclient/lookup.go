package appstoreclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	appstoredomain "github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore/domain"
)

// Lookup busca os metadados de um lote de apps na API de lookup do iTunes.
// O chamador é responsável por respeitar o limite de ids por requisição.
func (c *AppStoreClient) Lookup(appIDs []string) ([]appstoredomain.LookupApp, error) {
	params := url.Values{}
	params.Set("id", strings.Join(appIDs, ","))
	params.Set("country", c.config.AppStore.Country)

	endpoint := c.config.AppStore.LookupURL + "?" + params.Encode()

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lookup falhou com status: %s", resp.Status)
	}

	var response appstoredomain.LookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta do lookup: %w", err)
	}

	return response.Results, nil
}
