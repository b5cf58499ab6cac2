package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
	"github.com/vfg2006/appstore-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/appstore-ranking-api/pkg/apiErrors"
	"github.com/vfg2006/appstore-ranking-api/pkg/utils"
)

// GetRankings retorna as entradas de um snapshot de ranking, com filtros de
// data, tipo, categoria e ordenação vindos da query string
func GetRankings(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseRankingFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		response, err := service.ListEntries(*filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar entradas do ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta do ranking")
		}
	}
}

// GetRankingDates retorna as datas com snapshot disponível para um tipo,
// da mais recente para a mais antiga
func GetRankingDates(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rankingType, err := parseRankingType(r.URL.Query().Get("type"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		response, err := service.ListDates(rankingType)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar datas de ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar datas de ranking", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta de datas")
		}
	}
}

// GetRankingCategories retorna o catálogo fixo de categorias da App Store
func GetRankingCategories(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.ListCategories()); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta de categorias")
		}
	}
}

func parseRankingFilters(r *http.Request) (*domain.RankingFilters, error) {
	query := r.URL.Query()

	rankingType, err := parseRankingType(query.Get("type"))
	if err != nil {
		return nil, err
	}

	date := query.Get("date")
	if date != "" {
		if _, err := utils.ParseDate(date); err != nil {
			return nil, errInvalidParam("date", date, "formato esperado: yyyy-mm-dd")
		}
	}

	var categoryID *string
	if category := query.Get("category"); category != "" {
		if domain.CategoryName(category) == nil {
			return nil, errInvalidParam("category", category, "categoria desconhecida")
		}
		categoryID = &category
	}

	sortBy := domain.SortFieldRank
	switch query.Get("sortBy") {
	case "", "rank":
	case "rating":
		sortBy = domain.SortFieldRating
	case "reviewCount":
		sortBy = domain.SortFieldReviewCount
	default:
		return nil, errInvalidParam("sortBy", query.Get("sortBy"), "valores aceitos: rank, rating, reviewCount")
	}

	// A ordem padrão segue o campo: rank ascende, métricas de qualidade descem
	sortOrder := domain.SortOrderAsc
	if sortBy != domain.SortFieldRank {
		sortOrder = domain.SortOrderDesc
	}

	switch query.Get("sortOrder") {
	case "":
	case "asc":
		sortOrder = domain.SortOrderAsc
	case "desc":
		sortOrder = domain.SortOrderDesc
	default:
		return nil, errInvalidParam("sortOrder", query.Get("sortOrder"), "valores aceitos: asc, desc")
	}

	return &domain.RankingFilters{
		Date:       date,
		Type:       rankingType,
		CategoryID: categoryID,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
	}, nil
}

func parseRankingType(raw string) (domain.RankingType, error) {
	if raw == "" {
		return domain.RankingTypeFree, nil
	}

	rankingType := domain.RankingType(raw)
	if !rankingType.IsValid() {
		return "", errInvalidParam("type", raw, "valores aceitos: free, paid")
	}

	return rankingType, nil
}

type paramError struct {
	param  string
	value  string
	detail string
}

func (e paramError) Error() string {
	return "parâmetro " + e.param + " inválido (" + e.value + "): " + e.detail
}

func errInvalidParam(param, value, detail string) error {
	return paramError{param: param, value: value, detail: detail}
}
