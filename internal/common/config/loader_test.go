// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Setup Helpers
// ==========================

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
database:
  postgres:
    host: localhost
    port: 5432
    database: deals
    user: deals
  redis:
    address: localhost:6379
`

// ==========================
// LoadFromFile Tests
// ==========================

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 25, cfg.Database.Postgres.MaxConnections)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)

	assert.Equal(t, 10, cfg.Listings.PageSize)
	assert.Equal(t, int64(1), cfg.Listings.Seed)
	assert.Equal(t, 900000, cfg.Listings.CacheTTL)
	assert.Equal(t, "listings", cfg.Listings.SearchIndex)

	// Stock engine assumptions.
	assert.Equal(t, 20.0, cfg.Assumptions.DownPaymentPercent)
	assert.Equal(t, 6.8, cfg.Assumptions.InterestRate)
	assert.Equal(t, 30, cfg.Assumptions.LoanTermYears)
	assert.Equal(t, 1000.0, cfg.Assumptions.InsuranceAnnual)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFile_ExplicitValuesWin(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, minimalConfig+`
server:
  port: 9090
listings:
  page_size: 25
  seed: 77
assumptions:
  down_payment_percent: 25
  interest_rate: 7.1
  loan_term_years: 15
  closing_costs_percent: 2
  vacancy_rate_percent: 8
  management_fee_percent: 10
  maintenance_percent: 1.5
  insurance_annual: 1400
  appreciation_rate: 2.5
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 25, cfg.Listings.PageSize)
	assert.Equal(t, int64(77), cfg.Listings.Seed)
	assert.Equal(t, 25.0, cfg.Assumptions.DownPaymentPercent)
	assert.Equal(t, 15, cfg.Assumptions.LoanTermYears)
	assert.Equal(t, 10.0, cfg.Assumptions.ManagementFeePercent)
}

func TestLoadFromFile_MissingPostgresHost(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, `
database:
  redis:
    address: localhost:6379
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.postgres.host")
}

func TestLoadFromFile_SearchRequiresAddresses(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, minimalConfig+`
listings:
  search_enabled: true
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elasticsearch")
}

func TestLoadFromFile_AlertsRequireRegion(t *testing.T) {
	// Region comes back through the AWS_REGION override when set, so
	// clear it for the duration of this test.
	t.Setenv("AWS_REGION", "")

	_, err := LoadFromFile(writeConfig(t, minimalConfig+`
alerts:
  email:
    enabled: true
    from_email: alerts@example.com
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alerts.aws.region")
}

// ==========================
// GetDuration Tests
// ==========================

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 900*time.Second, GetDuration(900000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
