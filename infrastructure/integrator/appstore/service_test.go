package appstore

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	clientmocks "github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore/appstoreclient/mocks"
	appstoredomain "github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore/domain"
	"github.com/vfg2006/appstore-ranking-api/internal/config"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestConfig(batchSize int) *config.Config {
	return &config.Config{
		AppStore: config.AppStore{
			LookupBatchSize: batchSize,
			BatchDelayMS:    100,
			DefaultCurrency: "JPY",
		},
	}
}

func intPtr(i int) *int { return &i }

func TestAppStoreService_FetchRanking(t *testing.T) {
	t.Run("Feed geral - mapeia na ordem com posições contíguas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		mockClient.EXPECT().
			TopCharts(domain.RankingTypeFree).
			Return([]appstoredomain.TopChartsApp{
				{ID: "100", Name: "App A", ArtistName: "Dev A", ArtworkURL100: "https://img/a.png", URL: "https://apps.apple.com/jp/app/id100"},
				{ID: "200", Name: "App B", ArtistName: "Dev B", ArtworkURL100: "https://img/b.png", URL: "https://apps.apple.com/jp/app/id200"},
			}, nil)

		service := &AppStoreService{
			cfg:    newTestConfig(100),
			Client: mockClient,
			pause:  func(time.Duration) {},
		}

		ranked, err := service.FetchRanking(domain.RankingTypeFree, nil)

		assert.NoError(t, err)
		assert.Len(t, ranked, 2)
		assert.Equal(t, 1, ranked[0].Position)
		assert.Equal(t, 2, ranked[1].Position)
		assert.Equal(t, "App A", ranked[0].Name)
		assert.Equal(t, "https://img/a.png", ranked[0].IconURL)
	})

	t.Run("Feed de categoria - usa os campos aninhados do formato legado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		categoryID := "6014"

		mockClient := clientmocks.NewMockClient(ctrl)
		mockClient.EXPECT().
			CategoryCharts(domain.RankingTypePaid, categoryID).
			Return([]appstoredomain.CategoryChartsEntry{
				{
					Name:   appstoredomain.Label{Label: "App C"},
					Artist: appstoredomain.Label{Label: "Dev C"},
					Images: []appstoredomain.Label{
						{Label: "https://img/c-53.png"},
						{Label: "https://img/c-75.png"},
						{Label: "https://img/c-100.png"},
					},
					ID: appstoredomain.EntryStoreID{
						Label:      "https://apps.apple.com/jp/app/id300",
						Attributes: appstoredomain.EntryStoreIDAttributes{ID: "300"},
					},
				},
			}, nil)

		service := &AppStoreService{
			cfg:    newTestConfig(100),
			Client: mockClient,
			pause:  func(time.Duration) {},
		}

		ranked, err := service.FetchRanking(domain.RankingTypePaid, &categoryID)

		assert.NoError(t, err)
		assert.Len(t, ranked, 1)
		assert.Equal(t, "300", ranked[0].ID)
		assert.Equal(t, "App C", ranked[0].Name)
		assert.Equal(t, "Dev C", ranked[0].ArtistName)
		// A terceira resolução é a maior disponível no feed legado
		assert.Equal(t, "https://img/c-100.png", ranked[0].IconURL)
		assert.Equal(t, "https://apps.apple.com/jp/app/id300", ranked[0].StoreURL)
	})

	t.Run("Falha do feed - propaga o erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		mockClient.EXPECT().
			TopCharts(domain.RankingTypeFree).
			Return(nil, errors.New("status 503"))

		service := &AppStoreService{
			cfg:    newTestConfig(100),
			Client: mockClient,
			pause:  func(time.Duration) {},
		}

		ranked, err := service.FetchRanking(domain.RankingTypeFree, nil)

		assert.Error(t, err)
		assert.Nil(t, ranked)
	})
}

func TestSelectIcon(t *testing.T) {
	tests := []struct {
		name   string
		images []appstoredomain.Label
		want   string
	}{
		{
			name: "Três imagens - usa a terceira",
			images: []appstoredomain.Label{
				{Label: "small"}, {Label: "medium"}, {Label: "large"},
			},
			want: "large",
		},
		{
			name: "Menos de três imagens - cai para a primeira",
			images: []appstoredomain.Label{
				{Label: "small"}, {Label: "medium"},
			},
			want: "small",
		},
		{
			name:   "Sem imagens - vazio",
			images: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selectIcon(tt.images))
		})
	}
}

func TestAppStoreService_LookupAppMetadata(t *testing.T) {
	t.Run("Divide os ids em lotes e pausa apenas entre lotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)

		// 5 ids com lote de 2: lotes de 2, 2 e 1
		mockClient.EXPECT().
			Lookup([]string{"1", "2"}).
			Return([]appstoredomain.LookupApp{{TrackID: 1}, {TrackID: 2}}, nil)
		mockClient.EXPECT().
			Lookup([]string{"3", "4"}).
			Return([]appstoredomain.LookupApp{{TrackID: 3}, {TrackID: 4}}, nil)
		mockClient.EXPECT().
			Lookup([]string{"5"}).
			Return([]appstoredomain.LookupApp{{TrackID: 5}}, nil)

		var pauses []time.Duration
		service := &AppStoreService{
			cfg:    newTestConfig(2),
			Client: mockClient,
			pause:  func(d time.Duration) { pauses = append(pauses, d) },
		}

		metadataByID := service.LookupAppMetadata([]string{"1", "2", "3", "4", "5"})

		assert.Len(t, metadataByID, 5)
		assert.Contains(t, metadataByID, "1")
		assert.Contains(t, metadataByID, "5")

		// Duas pausas para três lotes: nenhuma após o último
		assert.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond}, pauses)
	})

	t.Run("Lote com falha é pulado sem abortar os demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)

		mockClient.EXPECT().
			Lookup([]string{"1", "2"}).
			Return(nil, errors.New("timeout"))
		mockClient.EXPECT().
			Lookup([]string{"3"}).
			Return([]appstoredomain.LookupApp{{TrackID: 3}}, nil)

		service := &AppStoreService{
			cfg:    newTestConfig(2),
			Client: mockClient,
			pause:  func(time.Duration) {},
		}

		metadataByID := service.LookupAppMetadata([]string{"1", "2", "3"})

		assert.Len(t, metadataByID, 1)
		assert.Contains(t, metadataByID, "3")
	})

	t.Run("Lista vazia - não chama o lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := &AppStoreService{
			cfg:    newTestConfig(2),
			Client: clientmocks.NewMockClient(ctrl),
			pause:  func(time.Duration) {},
		}

		metadataByID := service.LookupAppMetadata(nil)

		assert.Empty(t, metadataByID)
	})
}

func TestAppStoreService_toAppMetadata(t *testing.T) {
	service := &AppStoreService{cfg: newTestConfig(100)}

	t.Run("Campos completos do lookup", func(t *testing.T) {
		rating := 4.7
		metadata := service.toAppMetadata(appstoredomain.LookupApp{
			TrackID:           100,
			Price:             250,
			Currency:          "JPY",
			AverageUserRating: &rating,
			UserRatingCount:   intPtr(5000),
			PrimaryGenreName:  "ゲーム",
			PrimaryGenreID:    6014,
			Genres:            []string{"ゲーム", "アクション"},
			GenreIDs:          []string{"6014", "7001"},
		})

		assert.Equal(t, 250.0, metadata.Price)
		assert.Equal(t, "JPY", metadata.Currency)
		assert.Equal(t, 4.7, *metadata.Rating)
		assert.Equal(t, 5000, metadata.ReviewCount)
		assert.Equal(t, "ゲーム", *metadata.PrimaryGenreName)
		assert.Equal(t, "6014", *metadata.PrimaryGenreID)
	})

	t.Run("Campos ausentes recebem defaults", func(t *testing.T) {
		metadata := service.toAppMetadata(appstoredomain.LookupApp{TrackID: 200})

		assert.Equal(t, 0.0, metadata.Price)
		assert.Equal(t, "JPY", metadata.Currency) // Moeda padrão da configuração
		assert.Nil(t, metadata.Rating)
		assert.Equal(t, 0, metadata.ReviewCount)
		assert.Nil(t, metadata.PrimaryGenreName)
		assert.Nil(t, metadata.PrimaryGenreID)
	})
}
