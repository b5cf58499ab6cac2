package ranking

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/appstore-ranking-api/infrastructure/repository/mocks"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string { return &s }

func TestSnapshotRankingService_ListDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRankingSnapshotRepository(ctrl)
	service := NewSnapshotRankingService(mockRepo)

	// O repositório devolve datas distintas, da mais recente para a mais antiga
	mockRepo.EXPECT().
		ListDates(domain.RankingTypeFree).
		Return([]string{"2024-06-03", "2024-06-02", "2024-06-01"}, nil)

	response, err := service.ListDates(domain.RankingTypeFree)

	assert.NoError(t, err)
	assert.Equal(t, []string{"2024-06-03", "2024-06-02", "2024-06-01"}, response.Dates)
}

func TestSnapshotRankingService_ListEntries(t *testing.T) {
	t.Run("Data explícita nos filtros - consulta direta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockRankingSnapshotRepository(ctrl)
		service := NewSnapshotRankingService(mockRepo)

		filters := domain.RankingFilters{
			Date:      "2024-06-01",
			Type:      domain.RankingTypeFree,
			SortBy:    domain.SortFieldRank,
			SortOrder: domain.SortOrderAsc,
		}

		mockRepo.EXPECT().
			ListEntries(filters).
			Return([]domain.RankingEntry{
				{Rank: 1, AppID: "100"},
				{Rank: 2, AppID: "200"},
			}, nil)

		response, err := service.ListEntries(filters)

		assert.NoError(t, err)
		assert.Len(t, response.Entries, 2)
		assert.Equal(t, "2024-06-01", *response.Date)
	})

	t.Run("Sem data - resolve para a data mais recente do tipo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockRankingSnapshotRepository(ctrl)
		service := NewSnapshotRankingService(mockRepo)

		mockRepo.EXPECT().
			LatestDate(domain.RankingTypePaid).
			Return(stringPtr("2024-06-03"), nil)

		mockRepo.EXPECT().
			ListEntries(gomock.Any()).
			DoAndReturn(func(filters domain.RankingFilters) ([]domain.RankingEntry, error) {
				assert.Equal(t, "2024-06-03", filters.Date)
				return []domain.RankingEntry{{Rank: 1, AppID: "100"}}, nil
			})

		response, err := service.ListEntries(domain.RankingFilters{Type: domain.RankingTypePaid})

		assert.NoError(t, err)
		assert.Len(t, response.Entries, 1)
		assert.Equal(t, "2024-06-03", *response.Date)
	})

	t.Run("Sem nenhum snapshot do tipo - lista vazia sem erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockRankingSnapshotRepository(ctrl)
		service := NewSnapshotRankingService(mockRepo)

		mockRepo.EXPECT().
			LatestDate(domain.RankingTypeFree).
			Return(nil, nil)

		response, err := service.ListEntries(domain.RankingFilters{Type: domain.RankingTypeFree})

		assert.NoError(t, err)
		assert.Empty(t, response.Entries)
		assert.Nil(t, response.Date)
	})

	t.Run("Erro do repositório - propaga ao chamador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockRankingSnapshotRepository(ctrl)
		service := NewSnapshotRankingService(mockRepo)

		mockRepo.EXPECT().
			LatestDate(domain.RankingTypeFree).
			Return(nil, errors.New("conexão perdida"))

		response, err := service.ListEntries(domain.RankingFilters{Type: domain.RankingTypeFree})

		assert.Error(t, err)
		assert.Nil(t, response)
	})
}

func TestSnapshotRankingService_ListCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewSnapshotRankingService(mocks.NewMockRankingSnapshotRepository(ctrl))

	categories := service.ListCategories()

	// O catálogo é fixo, com os jogos em primeiro na ordem de exibição
	assert.Len(t, categories, 23)
	assert.Equal(t, domain.Category{ID: "6014", Name: "ゲーム"}, categories[0])
}
