package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	AppStore    AppStore    `mapstructure:",squash"`
	RankingSync RankingSync `mapstructure:",squash"`
	CronSecret  string      `mapstructure:"cron_secret"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// AppStore agrupa os endpoints e limites dos feeds públicos da App Store
type AppStore struct {
	RSSBaseURL      string `mapstructure:"appstore_rss_base_url"`
	LegacyRSSURL    string `mapstructure:"appstore_legacy_rss_url"`
	LookupURL       string `mapstructure:"appstore_lookup_url"`
	Country         string `mapstructure:"appstore_country"`
	RankingLimit    int    `mapstructure:"appstore_ranking_limit"`
	LookupBatchSize int    `mapstructure:"appstore_lookup_batch_size"`
	BatchDelayMS    int    `mapstructure:"appstore_batch_delay_ms"`
	CategoryDelayMS int    `mapstructure:"appstore_category_delay_ms"`
	DefaultCurrency string `mapstructure:"appstore_default_currency"`
}

type RankingSync struct {
	CronSchedule string `mapstructure:"ranking_sync_cron"`
	SyncEnabled  bool   `mapstructure:"ranking_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/appstore")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("APPSTORE_RSS_BASE_URL", "https://rss.marketingtools.apple.com/api/v2/jp/apps")
	viper.SetDefault("APPSTORE_LEGACY_RSS_URL", "https://itunes.apple.com/jp/rss")
	viper.SetDefault("APPSTORE_LOOKUP_URL", "https://itunes.apple.com/lookup")
	viper.SetDefault("APPSTORE_COUNTRY", "jp")
	viper.SetDefault("APPSTORE_RANKING_LIMIT", 200)     // Tamanho do ranking buscado por feed
	viper.SetDefault("APPSTORE_LOOKUP_BATCH_SIZE", 100) // Limite de ids por chamada da API de lookup
	viper.SetDefault("APPSTORE_BATCH_DELAY_MS", 100)    // Pausa entre lotes do lookup
	viper.SetDefault("APPSTORE_CATEGORY_DELAY_MS", 500) // Pausa entre categorias na ingestão completa
	viper.SetDefault("APPSTORE_DEFAULT_CURRENCY", "JPY")

	viper.SetDefault("RANKING_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("RANKING_SYNC_ENABLED", false)    // Habilitar ingestão agendada

	viper.SetDefault("CRON_SECRET", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
