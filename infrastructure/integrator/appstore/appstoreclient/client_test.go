package appstoreclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/appstore-ranking-api/internal/config"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
)

func newTestClient(server *httptest.Server) *AppStoreClient {
	return &AppStoreClient{
		httpClient: server.Client(),
		config: &config.Config{
			AppStore: config.AppStore{
				RSSBaseURL:   server.URL,
				LegacyRSSURL: server.URL,
				LookupURL:    server.URL + "/lookup",
				Country:      "jp",
				RankingLimit: 200,
			},
		},
	}
}

func TestAppStoreClient_TopCharts(t *testing.T) {
	t.Run("Monta a URL do feed pelo tipo e decodifica feed.results", func(t *testing.T) {
		var requestedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			w.Write([]byte(`{
				"feed": {
					"results": [
						{
							"id": "100",
							"name": "App A",
							"artistName": "Dev A",
							"artworkUrl100": "https://img/a.png",
							"url": "https://apps.apple.com/jp/app/id100"
						}
					]
				}
			}`))
		}))
		defer server.Close()

		client := newTestClient(server)

		apps, err := client.TopCharts(domain.RankingTypeFree)

		require.NoError(t, err)
		assert.Equal(t, "/top-free/200/apps.json", requestedPath)
		require.Len(t, apps, 1)
		assert.Equal(t, "100", apps[0].ID)
		assert.Equal(t, "App A", apps[0].Name)
		assert.Equal(t, "Dev A", apps[0].ArtistName)
		assert.Equal(t, "https://img/a.png", apps[0].ArtworkURL100)
	})

	t.Run("Tipo pago usa o feed top-paid", func(t *testing.T) {
		var requestedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			w.Write([]byte(`{"feed": {"results": []}}`))
		}))
		defer server.Close()

		client := newTestClient(server)

		_, err := client.TopCharts(domain.RankingTypePaid)

		require.NoError(t, err)
		assert.Equal(t, "/top-paid/200/apps.json", requestedPath)
	})

	t.Run("Status de erro vira ErrFeedUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := newTestClient(server)

		apps, err := client.TopCharts(domain.RankingTypeFree)

		assert.Nil(t, apps)
		assert.ErrorIs(t, err, ErrFeedUnavailable)
	})

	t.Run("Corpo inválido vira ErrFeedUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>manutenção</html>`))
		}))
		defer server.Close()

		client := newTestClient(server)

		_, err := client.TopCharts(domain.RankingTypeFree)

		assert.ErrorIs(t, err, ErrFeedUnavailable)
	})
}

func TestAppStoreClient_CategoryCharts(t *testing.T) {
	t.Run("Monta a URL legada com limite e gênero e desembrulha os wrappers", func(t *testing.T) {
		var requestedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			w.Write([]byte(`{
				"feed": {
					"entry": [
						{
							"im:name": {"label": "App C"},
							"im:artist": {"label": "Dev C"},
							"im:image": [
								{"label": "https://img/c-53.png"},
								{"label": "https://img/c-75.png"},
								{"label": "https://img/c-100.png"}
							],
							"id": {
								"label": "https://apps.apple.com/jp/app/id300",
								"attributes": {"im:id": "300"}
							}
						}
					]
				}
			}`))
		}))
		defer server.Close()

		client := newTestClient(server)

		entries, err := client.CategoryCharts(domain.RankingTypeFree, "6014")

		require.NoError(t, err)
		assert.Equal(t, "/topfreeapplications/limit=200/genre=6014/json", requestedPath)
		require.Len(t, entries, 1)
		assert.Equal(t, "App C", entries[0].Name.Label)
		assert.Equal(t, "Dev C", entries[0].Artist.Label)
		assert.Len(t, entries[0].Images, 3)
		assert.Equal(t, "300", entries[0].ID.Attributes.ID)
		assert.Equal(t, "https://apps.apple.com/jp/app/id300", entries[0].ID.Label)
	})

	t.Run("Tipo pago usa o feed toppaidapplications", func(t *testing.T) {
		var requestedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			w.Write([]byte(`{"feed": {"entry": []}}`))
		}))
		defer server.Close()

		client := newTestClient(server)

		_, err := client.CategoryCharts(domain.RankingTypePaid, "6016")

		require.NoError(t, err)
		assert.Equal(t, "/toppaidapplications/limit=200/genre=6016/json", requestedPath)
	})

	t.Run("Status de erro vira ErrFeedUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestClient(server)

		_, err := client.CategoryCharts(domain.RankingTypeFree, "6014")

		assert.ErrorIs(t, err, ErrFeedUnavailable)
	})
}

func TestAppStoreClient_Lookup(t *testing.T) {
	t.Run("Envia os ids separados por vírgula com o país configurado", func(t *testing.T) {
		var requestedQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedQuery = r.URL.RawQuery
			w.Write([]byte(`{
				"resultCount": 1,
				"results": [
					{
						"trackId": 100,
						"price": 250,
						"currency": "JPY",
						"averageUserRating": 4.5,
						"userRatingCount": 1200,
						"primaryGenreName": "ゲーム",
						"primaryGenreId": 6014,
						"genres": ["ゲーム", "アクション"],
						"genreIds": ["6014", "7001"]
					}
				]
			}`))
		}))
		defer server.Close()

		client := newTestClient(server)

		apps, err := client.Lookup([]string{"100", "200"})

		require.NoError(t, err)
		assert.Equal(t, "country=jp&id=100%2C200", requestedQuery)
		require.Len(t, apps, 1)
		assert.Equal(t, int64(100), apps[0].TrackID)
		assert.Equal(t, 250.0, apps[0].Price)
		assert.Equal(t, 4.5, *apps[0].AverageUserRating)
		assert.Equal(t, 1200, *apps[0].UserRatingCount)
		assert.Equal(t, []string{"6014", "7001"}, apps[0].GenreIDs)
	})

	t.Run("Campos opcionais ausentes ficam nulos", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"resultCount": 1, "results": [{"trackId": 200}]}`))
		}))
		defer server.Close()

		client := newTestClient(server)

		apps, err := client.Lookup([]string{"200"})

		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Nil(t, apps[0].AverageUserRating)
		assert.Nil(t, apps[0].UserRatingCount)
	})

	t.Run("Status de erro propaga como erro de lookup", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := newTestClient(server)

		apps, err := client.Lookup([]string{"100"})

		assert.Nil(t, apps)
		assert.Error(t, err)
	})
}
