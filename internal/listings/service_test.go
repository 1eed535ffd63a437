// internal/listings/service_test.go
package listings

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deal-analyzer/internal/analysis"
	"deal-analyzer/internal/common/logger"
	"deal-analyzer/internal/models"
)

// ==========================
// Test Setup Helpers
// ==========================

type serviceFixture struct {
	service *Service
	mock    sqlmock.Sqlmock
	redis   *miniredis.Miniredis
}

func setupService(t *testing.T, seed int64) *serviceFixture {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewService(
		NewGenerator(seed),
		NewRepository(db),
		NewCache(client, 15*time.Minute),
		nil,
		logger.NewNoOpLogger(),
	)
	return &serviceFixture{service: svc, mock: mock, redis: mr}
}

func expectPageQuery(mock sqlmock.Sqlmock, page, limit int, props []models.Property) {
	rows := sqlmock.NewRows([]string{"data"})
	for _, p := range props {
		data, _ := json.Marshal(p)
		rows.AddRow(data)
	}
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT data FROM listings WHERE page = $1 ORDER BY id LIMIT $2`)).
		WithArgs(page, limit).
		WillReturnRows(rows)
}

func expectPageSave(mock sqlmock.Sqlmock, count int) {
	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO listings`))
	for i := 0; i < count; i++ {
		prep.ExpectExec().
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()
}

// ==========================
// Page Tests
// ==========================

func TestService_Page_GeneratesOnFirstAccess(t *testing.T) {
	f := setupService(t, 42)
	ctx := context.Background()

	expectPageQuery(f.mock, 1, 3, nil)
	expectPageSave(f.mock, 3)

	props, err := f.service.Page(ctx, 1, 3)
	require.NoError(t, err)
	assert.Len(t, props, 3)
	assert.NoError(t, f.mock.ExpectationsWereMet())

	// Generated pages land in the cache, so a second read never
	// touches Postgres.
	again, err := f.service.Page(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, props, again)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_Page_ServesFromDatabase(t *testing.T) {
	f := setupService(t, 42)
	ctx := context.Background()

	stored := NewGenerator(7).Page(2, 2)
	expectPageQuery(f.mock, 2, 2, stored)

	props, err := f.service.Page(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, stored, props)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_Page_SurvivesCacheOutage(t *testing.T) {
	f := setupService(t, 42)
	ctx := context.Background()

	// A dead Redis downgrades to the database path.
	f.redis.Close()

	stored := NewGenerator(7).Page(1, 2)
	expectPageQuery(f.mock, 1, 2, stored)

	props, err := f.service.Page(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, stored, props)
}

// ==========================
// FilteredPage Tests
// ==========================

func TestService_FilteredPage(t *testing.T) {
	f := setupService(t, 42)
	ctx := context.Background()

	stored := NewGenerator(7).Page(1, 10)
	expectPageQuery(f.mock, 1, 10, stored)

	criteria := models.DefaultFilters()
	criteria.PropertyType = models.PropertyTypeCondo

	got, err := f.service.FilteredPage(ctx, 1, 10, criteria, models.DefaultAssumptions())
	require.NoError(t, err)

	for _, al := range got {
		assert.Equal(t, models.PropertyTypeCondo, al.Property.Specs.Type)
		assert.Equal(t, analysis.Analyze(al.Property, models.DefaultAssumptions()), al.Analysis)
	}

	want := 0
	for _, p := range stored {
		if p.Specs.Type == models.PropertyTypeCondo {
			want++
		}
	}
	assert.Len(t, got, want)
}

func TestService_FilteredPage_DefaultFiltersPassEverything(t *testing.T) {
	f := setupService(t, 42)
	ctx := context.Background()

	stored := NewGenerator(7).Page(1, 5)
	expectPageQuery(f.mock, 1, 5, stored)

	got, err := f.service.FilteredPage(ctx, 1, 5, models.DefaultFilters(), models.DefaultAssumptions())
	require.NoError(t, err)
	assert.Len(t, got, len(stored))
}

// ==========================
// Search Tests
// ==========================

func TestService_Search_DisabledWithoutIndex(t *testing.T) {
	f := setupService(t, 42)

	_, err := f.service.Search(context.Background(), "austin", 10, models.DefaultAssumptions())
	assert.Error(t, err)
}

// ==========================
// Get Tests
// ==========================

func TestService_Get(t *testing.T) {
	f := setupService(t, 42)

	want := NewGenerator(7).Page(1, 1)[0]
	data, err := json.Marshal(want)
	require.NoError(t, err)

	f.mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM listings WHERE id = $1`)).
		WithArgs(want.ID).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(data))

	got, err := f.service.Get(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}
