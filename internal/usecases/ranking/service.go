// Package ranking implementa a consulta dos snapshots de ranking persistidos
package ranking

import (
	"github.com/vfg2006/appstore-ranking-api/infrastructure/repository"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
)

type RankingService interface {
	// ListDates lista as datas distintas com snapshot do tipo, mais recente primeiro
	ListDates(rankingType domain.RankingType) (*domain.RankingDatesResponse, error)

	// ListEntries lista as entradas de um snapshot, ordenadas. Sem data nos
	// filtros, resolve para a data mais recente do tipo. Ausência de snapshot
	// resulta em lista vazia, não em erro.
	ListEntries(filters domain.RankingFilters) (*domain.RankingEntriesResponse, error)

	// ListCategories expõe o catálogo fixo de categorias para o filtro da UI
	ListCategories() []domain.Category
}

type SnapshotRankingService struct {
	SnapshotRepository repository.RankingSnapshotRepository
}

func NewSnapshotRankingService(snapshotRepository repository.RankingSnapshotRepository) RankingService {
	return &SnapshotRankingService{
		SnapshotRepository: snapshotRepository,
	}
}

func (s *SnapshotRankingService) ListDates(rankingType domain.RankingType) (*domain.RankingDatesResponse, error) {
	dates, err := s.SnapshotRepository.ListDates(rankingType)
	if err != nil {
		return nil, err
	}

	return &domain.RankingDatesResponse{Dates: dates}, nil
}

func (s *SnapshotRankingService) ListEntries(filters domain.RankingFilters) (*domain.RankingEntriesResponse, error) {
	if filters.Date == "" {
		latest, err := s.SnapshotRepository.LatestDate(filters.Type)
		if err != nil {
			return nil, err
		}

		// Sem nenhum snapshot do tipo, a resposta é vazia com data nula
		if latest == nil {
			return &domain.RankingEntriesResponse{Entries: []domain.RankingEntry{}}, nil
		}

		filters.Date = *latest
	}

	entries, err := s.SnapshotRepository.ListEntries(filters)
	if err != nil {
		return nil, err
	}

	resolvedDate := filters.Date
	return &domain.RankingEntriesResponse{
		Entries: entries,
		Date:    &resolvedDate,
	}, nil
}

func (s *SnapshotRankingService) ListCategories() []domain.Category {
	return domain.Categories
}
