package domain

// Category é uma categoria (gênero) da App Store usada tanto pela ingestão
// quanto pelo filtro de categorias da API de consulta.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Categories é o catálogo fixo de categorias acompanhadas. A ordem é estável
// entre execuções e define a ordem de ingestão. Carregado uma única vez e
// nunca alterado em tempo de execução.
var Categories = []Category{
	{ID: "6014", Name: "ゲーム"},
	{ID: "6016", Name: "エンターテインメント"},
	{ID: "6008", Name: "写真/ビデオ"},
	{ID: "6005", Name: "ソーシャルネットワーキング"},
	{ID: "6012", Name: "ライフスタイル"},
	{ID: "6011", Name: "ミュージック"},
	{ID: "6002", Name: "ユーティリティ"},
	{ID: "6024", Name: "ショッピング"},
	{ID: "6017", Name: "教育"},
	{ID: "6013", Name: "ヘルスケア/フィットネス"},
	{ID: "6000", Name: "ビジネス"},
	{ID: "6015", Name: "ファイナンス"},
	{ID: "6003", Name: "旅行"},
	{ID: "6023", Name: "フード/ドリンク"},
	{ID: "6009", Name: "ニュース"},
	{ID: "6007", Name: "仕事効率化"},
	{ID: "6001", Name: "天気"},
	{ID: "6004", Name: "スポーツ"},
	{ID: "6006", Name: "リファレンス"},
	{ID: "6010", Name: "ナビゲーション"},
	{ID: "6020", Name: "メディカル"},
	{ID: "6021", Name: "マガジン/新聞"},
	{ID: "6018", Name: "ブック"},
}

// CategoryName retorna o nome da categoria pelo id, ou nil se desconhecida
func CategoryName(id string) *string {
	for _, category := range Categories {
		if category.ID == id {
			name := category.Name
			return &name
		}
	}
	return nil
}
