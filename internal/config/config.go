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
	Auth        Auth        `mapstructure:",squash"`
	GoogleAPI   GoogleAPI   `mapstructure:",squash"`
	Dashboard   Dashboard   `mapstructure:",squash"`
	MLSource    MLSource    `mapstructure:",squash"`
	Magalu      Magalu      `mapstructure:",squash"`
	Stock       Stock       `mapstructure:",squash"`
	MLSync      MLSync      `mapstructure:",squash"`
	MagaluSync  MagaluSync  `mapstructure:",squash"`
	StockSync   StockSync   `mapstructure:",squash"`
	DailyReport DailyReport `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// GoogleAPI guarda o arquivo da conta de serviço usada para ler as planilhas
type GoogleAPI struct {
	CredentialsFile string `mapstructure:"google_credentials_file"`
}

// Dashboard é o frontend avisado ao fim de cada sincronização
type Dashboard struct {
	URL     string `mapstructure:"dashboard_url"`
	Enabled bool   `mapstructure:"dashboard_notify_enabled"`
}

// SourceSettings é a configuração de leitura e conversão de uma planilha
type SourceSettings struct {
	SheetID            string
	SheetRange         string
	XLSXPath           string
	XLSXSheet          string
	ThousandsSeparator string
	DecimalSeparator   string
	PercentAsFraction  bool
	CurrencyPreScaled  bool
	DateLayouts        []string
	DateDayOffset      int
}

type MLSource struct {
	SheetID            string   `mapstructure:"ml_sheet_id"`
	SheetRange         string   `mapstructure:"ml_sheet_range"`
	XLSXPath           string   `mapstructure:"ml_xlsx_path"`
	XLSXSheet          string   `mapstructure:"ml_xlsx_sheet"`
	ThousandsSeparator string   `mapstructure:"ml_thousands_separator"`
	DecimalSeparator   string   `mapstructure:"ml_decimal_separator"`
	PercentAsFraction  bool     `mapstructure:"ml_percent_as_fraction"`
	CurrencyPreScaled  bool     `mapstructure:"ml_currency_prescaled"`
	DateLayouts        []string `mapstructure:"ml_date_layouts"`
	DateDayOffset      int      `mapstructure:"ml_date_day_offset"`
}

type Magalu struct {
	SheetID            string   `mapstructure:"magalu_sheet_id"`
	SheetRange         string   `mapstructure:"magalu_sheet_range"`
	XLSXPath           string   `mapstructure:"magalu_xlsx_path"`
	XLSXSheet          string   `mapstructure:"magalu_xlsx_sheet"`
	ThousandsSeparator string   `mapstructure:"magalu_thousands_separator"`
	DecimalSeparator   string   `mapstructure:"magalu_decimal_separator"`
	PercentAsFraction  bool     `mapstructure:"magalu_percent_as_fraction"`
	CurrencyPreScaled  bool     `mapstructure:"magalu_currency_prescaled"`
	DateLayouts        []string `mapstructure:"magalu_date_layouts"`
	DateDayOffset      int      `mapstructure:"magalu_date_day_offset"`
}

type Stock struct {
	SheetID            string `mapstructure:"stock_sheet_id"`
	SheetRange         string `mapstructure:"stock_sheet_range"`
	XLSXPath           string `mapstructure:"stock_xlsx_path"`
	XLSXSheet          string `mapstructure:"stock_xlsx_sheet"`
	ThousandsSeparator string `mapstructure:"stock_thousands_separator"`
	DecimalSeparator   string `mapstructure:"stock_decimal_separator"`
}

type MLSync struct {
	CronSchedule string `mapstructure:"ml_sync_cron"`
	Enabled      bool   `mapstructure:"ml_sync_enabled"`
}

type MagaluSync struct {
	CronSchedule string `mapstructure:"magalu_sync_cron"`
	Enabled      bool   `mapstructure:"magalu_sync_enabled"`
}

type StockSync struct {
	CronSchedule string `mapstructure:"stock_sync_cron"`
	Enabled      bool   `mapstructure:"stock_sync_enabled"`
}

type DailyReport struct {
	CronSchedule string `mapstructure:"daily_report_cron"`
	Enabled      bool   `mapstructure:"daily_report_enabled"`
}

// TokenSecret devolve o segredo usado para assinar os tokens; AUTH_SECRET tem precedência sobre SECRET_KEY
func (c *Config) TokenSecret() string {
	if c.Auth.Secret != "" {
		return c.Auth.Secret
	}
	return c.SecretKey
}

// Sources devolve a configuração de cada planilha indexada pelo nome da fonte
func (c *Config) Sources() map[string]SourceSettings {
	return map[string]SourceSettings{
		"ml": {
			SheetID:            c.MLSource.SheetID,
			SheetRange:         c.MLSource.SheetRange,
			XLSXPath:           c.MLSource.XLSXPath,
			XLSXSheet:          c.MLSource.XLSXSheet,
			ThousandsSeparator: c.MLSource.ThousandsSeparator,
			DecimalSeparator:   c.MLSource.DecimalSeparator,
			PercentAsFraction:  c.MLSource.PercentAsFraction,
			CurrencyPreScaled:  c.MLSource.CurrencyPreScaled,
			DateLayouts:        c.MLSource.DateLayouts,
			DateDayOffset:      c.MLSource.DateDayOffset,
		},
		"magalu": {
			SheetID:            c.Magalu.SheetID,
			SheetRange:         c.Magalu.SheetRange,
			XLSXPath:           c.Magalu.XLSXPath,
			XLSXSheet:          c.Magalu.XLSXSheet,
			ThousandsSeparator: c.Magalu.ThousandsSeparator,
			DecimalSeparator:   c.Magalu.DecimalSeparator,
			PercentAsFraction:  c.Magalu.PercentAsFraction,
			CurrencyPreScaled:  c.Magalu.CurrencyPreScaled,
			DateLayouts:        c.Magalu.DateLayouts,
			DateDayOffset:      c.Magalu.DateDayOffset,
		},
		"stock": {
			SheetID:            c.Stock.SheetID,
			SheetRange:         c.Stock.SheetRange,
			XLSXPath:           c.Stock.XLSXPath,
			XLSXSheet:          c.Stock.XLSXSheet,
			ThousandsSeparator: c.Stock.ThousandsSeparator,
			DecimalSeparator:   c.Stock.DecimalSeparator,
		},
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")

	viper.SetDefault("DASHBOARD_URL", "http://localhost:3005")
	viper.SetDefault("DASHBOARD_NOTIFY_ENABLED", true)

	// Mercado Livre: valores monetários exportados multiplicados por 100 e datas com um dia de atraso
	viper.SetDefault("ML_SHEET_ID", "")
	viper.SetDefault("ML_XLSX_PATH", "")
	viper.SetDefault("ML_SHEET_RANGE", "Vendas ML")
	viper.SetDefault("ML_XLSX_SHEET", "vendas_ml")
	viper.SetDefault("ML_THOUSANDS_SEPARATOR", ".")
	viper.SetDefault("ML_DECIMAL_SEPARATOR", ",")
	viper.SetDefault("ML_PERCENT_AS_FRACTION", false)
	viper.SetDefault("ML_CURRENCY_PRESCALED", true)
	viper.SetDefault("ML_DATE_LAYOUTS", "02/01/06 15:04:05")
	viper.SetDefault("ML_DATE_DAY_OFFSET", 1)

	viper.SetDefault("MAGALU_SHEET_ID", "")
	viper.SetDefault("MAGALU_XLSX_PATH", "")
	viper.SetDefault("MAGALU_SHEET_RANGE", "Vendas Magalu")
	viper.SetDefault("MAGALU_XLSX_SHEET", "vendas_magalu")
	viper.SetDefault("MAGALU_THOUSANDS_SEPARATOR", ".")
	viper.SetDefault("MAGALU_DECIMAL_SEPARATOR", ",")
	viper.SetDefault("MAGALU_PERCENT_AS_FRACTION", false)
	viper.SetDefault("MAGALU_CURRENCY_PRESCALED", false)
	viper.SetDefault("MAGALU_DATE_LAYOUTS", "02/01/2006 15:04:05,02/01/2006")
	viper.SetDefault("MAGALU_DATE_DAY_OFFSET", 0)

	viper.SetDefault("STOCK_SHEET_ID", "")
	viper.SetDefault("STOCK_XLSX_PATH", "")
	viper.SetDefault("STOCK_SHEET_RANGE", "Estoque")
	viper.SetDefault("STOCK_XLSX_SHEET", "estoque")
	viper.SetDefault("STOCK_THOUSANDS_SEPARATOR", ".")
	viper.SetDefault("STOCK_DECIMAL_SEPARATOR", ",")

	// Defaults para sincronização das planilhas
	viper.SetDefault("ML_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("ML_SYNC_ENABLED", false)
	viper.SetDefault("MAGALU_SYNC_CRON", "*/30 * * * *")
	viper.SetDefault("MAGALU_SYNC_ENABLED", false)
	viper.SetDefault("STOCK_SYNC_CRON", "0 * * * *") // De hora em hora
	viper.SetDefault("STOCK_SYNC_ENABLED", false)

	viper.SetDefault("DAILY_REPORT_CRON", "0 8 * * *") // Todos os dias às 8h da manhã
	viper.SetDefault("DAILY_REPORT_ENABLED", false)

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
	viper.AutomaticEnv()

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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
