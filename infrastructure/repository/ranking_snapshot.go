// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/appstore-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/appstore-ranking-api/internal/domain"
	"github.com/vfg2006/appstore-ranking-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	snapshotTable = "ranking_snapshots"
	entryTable    = "ranking_entries"
)

type RankingSnapshotRepository interface {
	GetSnapshot(fetchDate string, rankingType domain.RankingType, categoryID *string) (*domain.RankingSnapshot, error)
	DeleteSnapshotWithEntries(snapshotID string) error
	CreateSnapshot(snapshot *domain.RankingSnapshot) (string, error)
	BulkInsertEntries(entries []*domain.RankingEntry) error
	ListDates(rankingType domain.RankingType) ([]string, error)
	LatestDate(rankingType domain.RankingType) (*string, error)
	ListEntries(filters domain.RankingFilters) ([]domain.RankingEntry, error)
}

type rankingSnapshotRepository struct {
	conn *postgres.Connection
}

func NewRankingSnapshotRepository(conn *postgres.Connection) RankingSnapshotRepository {
	return &rankingSnapshotRepository{
		conn: conn,
	}
}

// GetSnapshot busca o snapshot vivo para a chave (fetch_date, ranking_type, category_id).
// Retorna nil (sem erro) quando não existe snapshot para a chave.
func (r *rankingSnapshotRepository) GetSnapshot(
	fetchDate string,
	rankingType domain.RankingType,
	categoryID *string,
) (*domain.RankingSnapshot, error) {
	queryBuilder := squirrel.
		Select(
			"rs.id",
			"to_char(rs.fetch_date, 'YYYY-MM-DD')",
			"rs.ranking_type",
			"rs.category_id",
			"rs.category_name",
			"rs.created_at",
		).
		From(snapshotTable + " rs").
		Where(squirrel.Eq{"rs.fetch_date": fetchDate, "rs.ranking_type": string(rankingType)}).
		PlaceholderFormat(squirrel.Dollar)

	// categoria nula = ranking geral
	if categoryID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"rs.category_id": *categoryID})
	} else {
		queryBuilder = queryBuilder.Where("rs.category_id IS NULL")
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)

	snapshot := &domain.RankingSnapshot{}
	var categoryIDCol, categoryNameCol sql.NullString

	err = row.Scan(
		&snapshot.ID,
		&snapshot.FetchDate,
		&snapshot.RankingType,
		&categoryIDCol,
		&categoryNameCol,
		&snapshot.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if categoryIDCol.Valid {
		snapshot.CategoryID = &categoryIDCol.String
	}
	if categoryNameCol.Valid {
		snapshot.CategoryName = &categoryNameCol.String
	}

	return snapshot, nil
}

// DeleteSnapshotWithEntries remove as entradas e depois o snapshot, nessa ordem,
// dentro de uma única transação. As entradas pertencem exclusivamente ao snapshot.
func (r *rankingSnapshotRepository) DeleteSnapshotWithEntries(snapshotID string) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		deleteEntries, args, err := squirrel.
			Delete(entryTable).
			Where(squirrel.Eq{"snapshot_id": snapshotID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de remoção de entradas: %w", err)
		}

		if _, err := tx.Exec(deleteEntries, args...); err != nil {
			return fmt.Errorf("erro ao remover entradas do snapshot: %w", err)
		}

		deleteSnapshot, args, err := squirrel.
			Delete(snapshotTable).
			Where(squirrel.Eq{"id": snapshotID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de remoção de snapshot: %w", err)
		}

		if _, err := tx.Exec(deleteSnapshot, args...); err != nil {
			return fmt.Errorf("erro ao remover snapshot: %w", err)
		}

		return nil
	})
}

func (r *rankingSnapshotRepository) CreateSnapshot(snapshot *domain.RankingSnapshot) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(snapshotTable).
		Columns("id", "fetch_date", "ranking_type", "category_id", "category_name").
		Values(id, snapshot.FetchDate, string(snapshot.RankingType), snapshot.CategoryID, snapshot.CategoryName).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir query de inserção de snapshot: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return "", fmt.Errorf("erro ao inserir snapshot: %w", err)
	}

	snapshot.ID = id
	return id, nil
}

func (r *rankingSnapshotRepository) BulkInsertEntries(entries []*domain.RankingEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(entryTable).
		Columns(
			"id",
			"snapshot_id",
			"rank",
			"app_id",
			"app_name",
			"app_icon_url",
			"developer_name",
			"price",
			"currency",
			"rating",
			"review_count",
			"app_store_url",
			"primary_genre",
			"primary_genre_id",
			"genres",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, entry := range entries {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da entrada: %w", err)
		}

		var genres interface{}
		if entry.Genres != nil {
			encoded, err := json.Marshal(entry.Genres)
			if err != nil {
				return fmt.Errorf("erro ao serializar gêneros: %w", err)
			}
			genres = encoded
		}

		query = query.Values(
			id,
			entry.SnapshotID,
			entry.Rank,
			entry.AppID,
			entry.AppName,
			entry.AppIconURL,
			entry.DeveloperName,
			entry.Price,
			entry.Currency,
			entry.Rating,
			entry.ReviewCount,
			entry.AppStoreURL,
			entry.PrimaryGenre,
			entry.PrimaryGenreID,
			genres,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção de entradas: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir entradas do ranking: %w", err)
	}

	return nil
}

// ListDates lista as datas distintas com snapshot do tipo informado, mais recente primeiro
func (r *rankingSnapshotRepository) ListDates(rankingType domain.RankingType) ([]string, error) {
	sqlQuery, args, err := squirrel.
		Select("to_char(rs.fetch_date, 'YYYY-MM-DD') AS fetch_date").
		Distinct().
		From(snapshotTable + " rs").
		Where(squirrel.Eq{"rs.ranking_type": string(rankingType)}).
		OrderBy("fetch_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("erro ao escanear data: %w", err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return dates, nil
}

// LatestDate retorna a data mais recente com snapshot do tipo informado,
// independente de categoria. Retorna nil quando não há snapshots.
func (r *rankingSnapshotRepository) LatestDate(rankingType domain.RankingType) (*string, error) {
	sqlQuery, args, err := squirrel.
		Select("to_char(rs.fetch_date, 'YYYY-MM-DD')").
		From(snapshotTable + " rs").
		Where(squirrel.Eq{"rs.ranking_type": string(rankingType)}).
		OrderBy("rs.fetch_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var date string
	err = r.conn.QueryRow(sqlQuery, args...).Scan(&date)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar data mais recente: %w", err)
	}

	return &date, nil
}

func (r *rankingSnapshotRepository) ListEntries(filters domain.RankingFilters) ([]domain.RankingEntry, error) {
	queryBuilder := squirrel.
		Select(
			"re.id",
			"re.snapshot_id",
			"re.rank",
			"re.app_id",
			"re.app_name",
			"re.app_icon_url",
			"re.developer_name",
			"re.price",
			"re.currency",
			"re.rating",
			"re.review_count",
			"re.app_store_url",
			"re.primary_genre",
			"re.primary_genre_id",
			"re.genres",
			"re.created_at",
		).
		From(entryTable + " re").
		Join(snapshotTable + " rs ON rs.id = re.snapshot_id").
		Where(squirrel.Eq{"rs.ranking_type": string(filters.Type), "rs.fetch_date": filters.Date}).
		PlaceholderFormat(squirrel.Dollar)

	if filters.CategoryID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"rs.category_id": *filters.CategoryID})
	} else {
		queryBuilder = queryBuilder.Where("rs.category_id IS NULL")
	}

	queryBuilder = queryBuilder.OrderBy(string(sortColumn(filters.SortBy)) + " " + sortDirection(filters.SortOrder))

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.RankingEntry, 0)
	for rows.Next() {
		entry, err := r.scanRankingEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada do ranking: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// sortColumn restringe a ordenação às colunas permitidas
func sortColumn(field domain.SortField) domain.SortField {
	switch field {
	case domain.SortFieldRating, domain.SortFieldReviewCount:
		return field
	default:
		return domain.SortFieldRank
	}
}

func sortDirection(order domain.SortOrder) string {
	if order == domain.SortOrderDesc {
		return "DESC"
	}
	return "ASC"
}

func (r *rankingSnapshotRepository) scanRankingEntry(rows *sql.Rows) (*domain.RankingEntry, error) {
	entry := &domain.RankingEntry{}

	var rating sql.NullFloat64
	var primaryGenre, primaryGenreID sql.NullString
	var genres []byte

	err := rows.Scan(
		&entry.ID,
		&entry.SnapshotID,
		&entry.Rank,
		&entry.AppID,
		&entry.AppName,
		&entry.AppIconURL,
		&entry.DeveloperName,
		&entry.Price,
		&entry.Currency,
		&rating,
		&entry.ReviewCount,
		&entry.AppStoreURL,
		&primaryGenre,
		&primaryGenreID,
		&genres,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		entry.Rating = &rating.Float64
	}
	if primaryGenre.Valid {
		entry.PrimaryGenre = &primaryGenre.String
	}
	if primaryGenreID.Valid {
		entry.PrimaryGenreID = &primaryGenreID.String
	}
	if genres != nil {
		if err := json.Unmarshal(genres, &entry.Genres); err != nil {
			return nil, fmt.Errorf("erro ao desserializar gêneros: %w", err)
		}
	}

	return entry, nil
}
