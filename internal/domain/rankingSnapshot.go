// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// RankingType identifica o tipo de ranking capturado (apps gratuitos ou pagos)
type RankingType string

const (
	RankingTypeFree RankingType = "free"
	RankingTypePaid RankingType = "paid"
)

// IsValid verifica se o tipo de ranking é conhecido
func (t RankingType) IsValid() bool {
	return t == RankingTypeFree || t == RankingTypePaid
}

type SortField string

const (
	SortFieldRank        SortField = "rank"
	SortFieldRating      SortField = "rating"
	SortFieldReviewCount SortField = "review_count"
)

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RankingSnapshot é uma captura do ranking para uma data, tipo e categoria.
// Existe no máximo um snapshot vivo por chave (fetch_date, ranking_type, category_id);
// a unicidade é garantida pelo fluxo de reconciliação (delete antes de insert),
// não por constraint no banco.
type RankingSnapshot struct {
	ID           string      `json:"id"`
	FetchDate    string      `json:"fetch_date"` // Formato yyyy-mm-dd (ex: 2024-06-01)
	RankingType  RankingType `json:"ranking_type"`
	CategoryID   *string     `json:"category_id"`   // nil = ranking geral
	CategoryName *string     `json:"category_name"` // nil = ranking geral
	CreatedAt    time.Time   `json:"created_at"`
}

// RankingEntry é um app ranqueado dentro de um snapshot. As entradas pertencem
// exclusivamente ao snapshot e são removidas junto com ele.
type RankingEntry struct {
	ID             string    `json:"id"`
	SnapshotID     string    `json:"-"`
	Rank           int       `json:"rank"` // 1..N, contíguo, na ordem do feed
	AppID          string    `json:"appId"`
	AppName        string    `json:"appName"`
	AppIconURL     string    `json:"appIconUrl"`
	DeveloperName  string    `json:"developerName"`
	Price          float64   `json:"price"`
	Currency       string    `json:"currency"`
	Rating         *float64  `json:"rating"`
	ReviewCount    int       `json:"reviewCount"`
	AppStoreURL    string    `json:"appStoreUrl"`
	PrimaryGenre   *string   `json:"primaryGenre"`
	PrimaryGenreID *string   `json:"primaryGenreId"`
	Genres         []Genre   `json:"genres"`
	CreatedAt      time.Time `json:"-"`
}

// RankingFilters são os filtros aceitos pela consulta de rankings
type RankingFilters struct {
	Date       string // vazio = resolver para a data mais recente do tipo
	Type       RankingType
	CategoryID *string // nil = ranking geral
	SortBy     SortField
	SortOrder  SortOrder
}

type RankingEntriesResponse struct {
	Entries []RankingEntry `json:"entries"`
	Date    *string        `json:"date"`
}

type RankingDatesResponse struct {
	Dates []string `json:"dates"`
}

// IngestionResult resume o resultado de uma execução completa de ingestão
type IngestionResult struct {
	TotalEntries        int `json:"total_entries"`
	CategoriesProcessed int `json:"categories_processed"`
}
