package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
)

func TestParseRankingFilters(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    *domain.RankingFilters
		wantErr bool
	}{
		{
			name: "Sem parâmetros - defaults: free, rank ascendente, sem categoria",
			url:  "/v1/rankings",
			want: &domain.RankingFilters{
				Type:      domain.RankingTypeFree,
				SortBy:    domain.SortFieldRank,
				SortOrder: domain.SortOrderAsc,
			},
		},
		{
			name: "Todos os filtros válidos",
			url:  "/v1/rankings?date=2024-06-01&type=paid&category=6014&sortBy=rating&sortOrder=asc",
			want: &domain.RankingFilters{
				Date:       "2024-06-01",
				Type:       domain.RankingTypePaid,
				CategoryID: stringPtr("6014"),
				SortBy:     domain.SortFieldRating,
				SortOrder:  domain.SortOrderAsc,
			},
		},
		{
			name: "Ordenação por métrica sem sortOrder - desce por padrão",
			url:  "/v1/rankings?sortBy=reviewCount",
			want: &domain.RankingFilters{
				Type:      domain.RankingTypeFree,
				SortBy:    domain.SortFieldReviewCount,
				SortOrder: domain.SortOrderDesc,
			},
		},
		{
			name:    "Tipo desconhecido",
			url:     "/v1/rankings?type=grossing",
			wantErr: true,
		},
		{
			name:    "Data fora do formato yyyy-mm-dd",
			url:     "/v1/rankings?date=01-06-2024",
			wantErr: true,
		},
		{
			name:    "Categoria fora do catálogo",
			url:     "/v1/rankings?category=9999",
			wantErr: true,
		},
		{
			name:    "Campo de ordenação desconhecido",
			url:     "/v1/rankings?sortBy=price",
			wantErr: true,
		},
		{
			name:    "Direção de ordenação desconhecida",
			url:     "/v1/rankings?sortOrder=random",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)

			filters, err := parseRankingFilters(req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, filters)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, filters)
		})
	}
}

func stringPtr(s string) *string { return &s }
