package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SheetSourceGoogle = "sheets"
	SheetSourceXLSX   = "xlsx"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Sheet           Sheet           `mapstructure:",squash"`
	Cache           Cache           `mapstructure:",squash"`
	Report          Report          `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	SnapshotWarmup  SnapshotWarmup  `mapstructure:",squash"`
	SnapshotHistory SnapshotHistory `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Sheet configura a origem dos dados (Google Sheets ou arquivo xlsx exportado)
type Sheet struct {
	Source            string        `mapstructure:"sheet_source"`
	SpreadsheetID     string        `mapstructure:"sheet_spreadsheet_id"`
	Worksheet         string        `mapstructure:"sheet_worksheet"`
	XLSXPath          string        `mapstructure:"sheet_xlsx_path"`
	CredentialsBase64 string        `mapstructure:"google_application_credentials_base64"`
	CredentialsFile   string        `mapstructure:"google_credentials_file"`
	FetchTimeout      time.Duration `mapstructure:"sheet_fetch_timeout"`
	BreakerFailures   uint32        `mapstructure:"sheet_breaker_failures"`
	BreakerTimeout    time.Duration `mapstructure:"sheet_breaker_timeout"`
}

type Cache struct {
	TTL time.Duration `mapstructure:"cache_ttl"`
}

// Report define as colunas e regras usadas pelos relatórios
type Report struct {
	StartRow      int      `mapstructure:"report_start_row"`
	Timezone      string   `mapstructure:"report_timezone"`
	DateColumn    string   `mapstructure:"report_date_column"`
	RevenueColumn string   `mapstructure:"report_revenue_column"`
	ProductColumn string   `mapstructure:"report_product_column"`
	RegionColumn  string   `mapstructure:"report_region_column"`
	Regions       []string `mapstructure:"report_regions"`
	LatestColumns []int    `mapstructure:"-"`
	LatestLimit   int      `mapstructure:"report_latest_limit"`

	Location *time.Location `mapstructure:"-"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type SnapshotWarmup struct {
	CronSchedule string `mapstructure:"snapshot_warmup_cron"`
	Enabled      bool   `mapstructure:"snapshot_warmup_enabled"`
}

type SnapshotHistory struct {
	Enabled bool `mapstructure:"snapshot_history_enabled"`
	Limit   int  `mapstructure:"snapshot_history_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 5001)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/permisos?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHEET_SOURCE", SheetSourceGoogle)
	viper.SetDefault("SHEET_SPREADSHEET_ID", "1NZZoMBH4tU4l-uTNW4P1zHtpenRLvNDLLLLKlx8YCyk")
	viper.SetDefault("SHEET_WORKSHEET", "Listado General")
	viper.SetDefault("SHEET_XLSX_PATH", "")
	viper.SetDefault("GOOGLE_APPLICATION_CREDENTIALS_BASE64", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("SHEET_FETCH_TIMEOUT", "45s")
	viper.SetDefault("SHEET_BREAKER_FAILURES", 3)   // Falhas seguidas até abrir o circuito
	viper.SetDefault("SHEET_BREAKER_TIMEOUT", "30s") // Tempo com o circuito aberto

	viper.SetDefault("CACHE_TTL", "60s")

	viper.SetDefault("REPORT_START_ROW", 11136) // Primeira linha de dados reais (cabeçalho = linha 1)
	viper.SetDefault("REPORT_TIMEZONE", "America/Argentina/Buenos_Aires")
	viper.SetDefault("REPORT_DATE_COLUMN", "fecha_creacion")
	viper.SetDefault("REPORT_REVENUE_COLUMN", "Ingresosnetos(conformato)")
	viper.SetDefault("REPORT_PRODUCT_COLUMN", "nombre_producto")
	viper.SetDefault("REPORT_REGION_COLUMN", "Region/es")
	viper.SetDefault("REPORT_REGIONS", "Confluencia,Comarca,Lagos del Sur,Pehuén,Alto Neuquén,Limay,Vaca Muerta")
	viper.SetDefault("REPORT_LATEST_COLUMNS", "0,1,4,5,16") // Colunas A, B, E, F, Q
	viper.SetDefault("REPORT_LATEST_LIMIT", 10)

	viper.SetDefault("AUTH_SECRET", "") // Vazio desabilita a validação do token

	viper.SetDefault("SNAPSHOT_WARMUP_CRON", "*/5 * * * *")
	viper.SetDefault("SNAPSHOT_WARMUP_ENABLED", false)

	viper.SetDefault("SNAPSHOT_HISTORY_ENABLED", false)
	viper.SetDefault("SNAPSHOT_HISTORY_LIMIT", 20)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

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

	if err := config.finalize(viper.GetString("REPORT_LATEST_COLUMNS")); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize completa os campos derivados e valida a configuração dos relatórios
func (c *Config) finalize(latestColumns string) error {
	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	c.Report.Regions = trimAll(c.Report.Regions)
	c.Server.AllowedOrigins = trimAll(c.Server.AllowedOrigins)

	columns, err := ParseColumnIndexes(latestColumns)
	if err != nil {
		return err
	}
	c.Report.LatestColumns = columns

	loc := time.UTC
	if c.Report.Timezone != "" {
		loc, err = time.LoadLocation(c.Report.Timezone)
		if err != nil {
			return fmt.Errorf("config: fuso horário inválido %q: %w", c.Report.Timezone, err)
		}
	}
	c.Report.Location = loc

	if c.Report.StartRow < 1 {
		return fmt.Errorf("config: REPORT_START_ROW deve ser maior ou igual a 1, recebido %d", c.Report.StartRow)
	}

	switch c.Sheet.Source {
	case SheetSourceGoogle, SheetSourceXLSX:
	default:
		return fmt.Errorf("config: SHEET_SOURCE inválido %q (use %s ou %s)", c.Sheet.Source, SheetSourceGoogle, SheetSourceXLSX)
	}

	return nil
}

// GoogleCredentials retorna o JSON da conta de serviço: primeiro da variável em base64,
// depois do arquivo local
func (s Sheet) GoogleCredentials() ([]byte, error) {
	if s.CredentialsBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(s.CredentialsBase64)
		if err != nil {
			return nil, fmt.Errorf("config: credenciais base64 inválidas: %w", err)
		}
		return decoded, nil
	}

	if s.CredentialsFile != "" {
		content, err := os.ReadFile(s.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("config: erro ao ler %s: %w", s.CredentialsFile, err)
		}
		return content, nil
	}

	return nil, fmt.Errorf("config: nenhuma credencial do Google configurada")
}

// ParseColumnIndexes converte "0,1,4" em índices de coluna
func ParseColumnIndexes(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	indexes := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		index, err := strconv.Atoi(part)
		if err != nil || index < 0 {
			return nil, fmt.Errorf("config: índice de coluna inválido %q", part)
		}
		indexes = append(indexes, index)
	}
	if len(indexes) == 0 {
		return nil, fmt.Errorf("config: nenhuma coluna configurada para os últimos registros")
	}
	return indexes, nil
}

func trimAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			result = append(result, value)
		}
	}
	return result
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
