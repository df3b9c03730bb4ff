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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	OSRS         OSRS         `mapstructure:",squash"`
	WikiPrices   WikiPrices   `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Milestones   Milestones   `mapstructure:",squash"`
	Submissions  Submissions  `mapstructure:",squash"`
	Efficiency   Efficiency   `mapstructure:",squash"`
	Hiscore      Hiscore      `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// OSRS configura o acesso ao hiscore oficial do jogo.
type OSRS struct {
	HiscoreURL        string `mapstructure:"osrs_hiscore_url"`
	RetryAttempts     int    `mapstructure:"osrs_retry_attempts"`
	RetryDelaySeconds int    `mapstructure:"osrs_retry_delay_seconds"`
	UserAgent         string `mapstructure:"osrs_user_agent"`
}

// WikiPrices configura o acesso à API de preços do wiki.
type WikiPrices struct {
	URL             string `mapstructure:"wiki_prices_url"`
	UserAgent       string `mapstructure:"wiki_prices_user_agent"`
	CacheTTLSeconds int    `mapstructure:"wiki_prices_cache_ttl_seconds"`
}

// SnapshotSync configura o job periódico de snapshots do hiscore.
type SnapshotSync struct {
	CronSchedule        string `mapstructure:"snapshot_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"snapshot_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"snapshot_sync_enabled"`
}

// Milestones configura o bucketing do placar diário.
type Milestones struct {
	BucketingPolicy string `mapstructure:"milestones_bucketing_policy"`
	RolloverHour    int    `mapstructure:"milestones_rollover_hour"`
	IncludeHourly   bool   `mapstructure:"milestones_include_hourly"`
}

// Submissions configura a validação de entrada de drops.
type Submissions struct {
	MaxValue int64 `mapstructure:"submissions_max_value"`
}

// Efficiency aponta para o diretório com as tabelas de taxa EHP/EHB.
type Efficiency struct {
	RatesDir        string `mapstructure:"efficiency_rates_dir"`
	CacheTTLSeconds int    `mapstructure:"efficiency_cache_ttl_seconds"`
}

// Hiscore configura o cache do progresso calculado por RSN.
type Hiscore struct {
	CacheTTLSeconds int `mapstructure:"hiscore_cache_ttl_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/eventmanager")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("OSRS_HISCORE_URL", "https://secure.runescape.com/m=hiscore_oldschool/index_lite.json")
	viper.SetDefault("OSRS_RETRY_ATTEMPTS", 5)
	viper.SetDefault("OSRS_RETRY_DELAY_SECONDS", 20)
	viper.SetDefault("OSRS_USER_AGENT", "event-manager-api (clan event tracker)")

	viper.SetDefault("WIKI_PRICES_URL", "https://prices.runescape.wiki/api/v1/osrs/latest")
	viper.SetDefault("WIKI_PRICES_USER_AGENT", "event-manager-api (clan event tracker)")
	viper.SetDefault("WIKI_PRICES_CACHE_TTL_SECONDS", 300) // 5 minutos

	// Snapshots a cada 12 horas, meio-dia e meia-noite
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 0,12 * * *")
	viper.SetDefault("SNAPSHOT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("MILESTONES_BUCKETING_POLICY", "day-index")
	viper.SetDefault("MILESTONES_ROLLOVER_HOUR", 2)
	viper.SetDefault("MILESTONES_INCLUDE_HOURLY", false)

	viper.SetDefault("SUBMISSIONS_MAX_VALUE", 200_000_000)

	viper.SetDefault("EFFICIENCY_RATES_DIR", "./efficiency")
	viper.SetDefault("EFFICIENCY_CACHE_TTL_SECONDS", 3600)

	viper.SetDefault("HISCORE_CACHE_TTL_SECONDS", 3600)

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
	// Obter diretório atual
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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
