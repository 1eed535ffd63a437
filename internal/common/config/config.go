// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Listings    ListingsConfig    `mapstructure:"listings"`
	Assumptions AssumptionsConfig `mapstructure:"assumptions"`
	Alerts      AlertsConfig      `mapstructure:"alerts"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

// --- Domain Configuration Sections ---

// ListingsConfig controls the listing provider, cache, and search index.
type ListingsConfig struct {
	PageSize      int    `mapstructure:"page_size"`
	Seed          int64  `mapstructure:"seed"`
	CacheTTL      int    `mapstructure:"cache_ttl"` // milliseconds
	SearchEnabled bool   `mapstructure:"search_enabled"`
	SearchIndex   string `mapstructure:"search_index"`
}

// AssumptionsConfig is the default engine configuration served until a
// caller replaces the stored assumptions document.
type AssumptionsConfig struct {
	DownPaymentPercent   float64 `mapstructure:"down_payment_percent"`
	InterestRate         float64 `mapstructure:"interest_rate"`
	LoanTermYears        int     `mapstructure:"loan_term_years"`
	ClosingCostsPercent  float64 `mapstructure:"closing_costs_percent"`
	VacancyRatePercent   float64 `mapstructure:"vacancy_rate_percent"`
	ManagementFeePercent float64 `mapstructure:"management_fee_percent"`
	MaintenancePercent   float64 `mapstructure:"maintenance_percent"`
	InsuranceAnnual      float64 `mapstructure:"insurance_annual"`
	AppreciationRate     float64 `mapstructure:"appreciation_rate"`
}

// AlertsConfig holds settings for excellent-deal notifications.
type AlertsConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
		ToEmail   string `mapstructure:"to_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled     bool   `mapstructure:"enabled"`
		PhoneNumber string `mapstructure:"phone_number"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
