// Package domain contém os tipos de wire dos feeds públicos da App Store
package domain

// TopChartsResponse é a resposta do feed principal de top apps (JSON).
// Campos do feed que não são usados pela ingestão são omitidos do decode.
type TopChartsResponse struct {
	Feed struct {
		Results []TopChartsApp `json:"results"`
	} `json:"feed"`
}

type TopChartsApp struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ArtistName    string `json:"artistName"`
	ArtworkURL100 string `json:"artworkUrl100"`
	URL           string `json:"url"`
}

// CategoryChartsResponse é a resposta do feed legado por categoria, cujo shape
// aninha cada campo em wrappers label/attributes que precisam ser desembrulhados
type CategoryChartsResponse struct {
	Feed struct {
		Entry []CategoryChartsEntry `json:"entry"`
	} `json:"feed"`
}

type CategoryChartsEntry struct {
	Name   Label        `json:"im:name"`
	Artist Label        `json:"im:artist"`
	Images []Label      `json:"im:image"`
	ID     EntryStoreID `json:"id"`
}

type Label struct {
	Label string `json:"label"`
}

type EntryStoreID struct {
	Label      string                 `json:"label"` // URL da página do app na loja
	Attributes EntryStoreIDAttributes `json:"attributes"`
}

type EntryStoreIDAttributes struct {
	ID string `json:"im:id"`
}

// LookupResponse é a resposta da API de lookup do iTunes
type LookupResponse struct {
	ResultCount int         `json:"resultCount"`
	Results     []LookupApp `json:"results"`
}

type LookupApp struct {
	TrackID           int64    `json:"trackId"`
	Price             float64  `json:"price"`
	Currency          string   `json:"currency"`
	AverageUserRating *float64 `json:"averageUserRating"`
	UserRatingCount   *int     `json:"userRatingCount"`
	PrimaryGenreName  string   `json:"primaryGenreName"`
	PrimaryGenreID    int64    `json:"primaryGenreId"`
	Genres            []string `json:"genres"`
	GenreIDs          []string `json:"genreIds"`
}

// RankedApp é o registro comum produzido a partir de qualquer um dos dois feeds,
// antes do enriquecimento. Existe apenas em memória durante um ciclo de ingestão.
type RankedApp struct {
	ID         string
	Name       string
	ArtistName string
	IconURL    string
	StoreURL   string
	Position   int // 1-based, na ordem do feed
}

// AppMetadata é o registro de enriquecimento de um app, indexado pelo id externo
type AppMetadata struct {
	Price            float64
	Currency         string
	Rating           *float64
	ReviewCount      int
	PrimaryGenreName *string
	PrimaryGenreID   *string
	GenreIDs         []string
	GenreNames       []string
}
