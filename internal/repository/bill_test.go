package repository

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billtracker/internal/common"
)

func newTestRepository(t *testing.T) BillRepository {
	t.Helper()
	ctx := context.Background()
	logger := slog.Default()

	cfg := Config{
		DSN:         filepath.Join(t.TempDir(), "bills.db"),
		DialTimeout: 3 * time.Second,
	}
	db, dialect, err := Open(ctx, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { Close(db, logger) })

	require.Equal(t, DialectSQLite, dialect)
	require.NoError(t, InitSchema(ctx, db, dialect))

	return NewBillRepository(db, dialect, logger)
}

func TestInsert_AssignsMonotonicIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 3; i++ {
		bill, err := repo.Insert(ctx, CreateBillRequest{
			Date:      "2024-03-01",
			Vendor:    "Acme",
			Category:  "food",
			Amount:    10,
			ImagePath: "/uploads/a.jpg",
		})
		require.NoError(t, err)
		assert.Greater(t, bill.ID, lastID)
		assert.False(t, bill.CreatedAt.IsZero())
		lastID = bill.ID
	}
}

func TestInsert_RejectsNonPositiveAmount(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, amount := range []float64{0, -5} {
		_, err := repo.Insert(ctx, CreateBillRequest{Vendor: "Acme", Category: "food", Amount: amount})
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	}

	// Store state unchanged.
	bills, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestListAll_OrdersByDateDescending(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		_, err := repo.Insert(ctx, CreateBillRequest{Date: date, Vendor: "v", Category: "food", Amount: 1})
		require.NoError(t, err)
	}

	bills, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 3)
	assert.Equal(t, "2024-03-01", bills[0].Date)
	assert.Equal(t, "2024-02-01", bills[1].Date)
	assert.Equal(t, "2024-01-01", bills[2].Date)
}

func TestListAll_TiesKeepInsertionOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, CreateBillRequest{Date: "2024-02-01", Vendor: "first", Category: "food", Amount: 1})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, CreateBillRequest{Date: "2024-02-01", Vendor: "second", Category: "food", Amount: 1})
	require.NoError(t, err)

	bills, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, first.ID, bills[0].ID)
	assert.Equal(t, second.ID, bills[1].ID)
}

func TestListAll_MalformedDatesSortAsStrings(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// Plain string comparison: "not-a-date" > "2024-03-01" > "".
	for _, date := range []string{"", "2024-03-01", "not-a-date"} {
		_, err := repo.Insert(ctx, CreateBillRequest{Date: date, Vendor: "v", Category: "other", Amount: 1})
		require.NoError(t, err)
	}

	bills, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 3)
	assert.Equal(t, "not-a-date", bills[0].Date)
	assert.Equal(t, "2024-03-01", bills[1].Date)
	assert.Equal(t, "", bills[2].Date)
}

func TestDelete_TrueExactlyOnce(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	bill, err := repo.Insert(ctx, CreateBillRequest{Date: "2024-01-01", Vendor: "v", Category: "food", Amount: 1})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, bill.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, bill.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDelete_AbsentIDIsNotAnError(t *testing.T) {
	repo := newTestRepository(t)

	deleted, err := repo.Delete(context.Background(), 12345)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetInsights_Idempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := repo.Insert(ctx, CreateBillRequest{Date: now.Format("2006-01-02"), Vendor: "v", Category: "food", Amount: 30})
	require.NoError(t, err)

	first, err := repo.GetInsights(ctx)
	require.NoError(t, err)
	second, err := repo.GetInsights(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 30.0, first.TotalThisMonth)
	require.NotNil(t, first.TopCategoryThisMonth)
	assert.Equal(t, "food", *first.TopCategoryThisMonth)
}

func TestRebind(t *testing.T) {
	query := "INSERT INTO bills (a, b) VALUES (?, ?)"

	assert.Equal(t, "INSERT INTO bills (a, b) VALUES ($1, $2)", rebind(DialectPostgres, query))
	assert.Equal(t, query, rebind(DialectSQLite, query))
}

func TestDialectForDSN(t *testing.T) {
	assert.Equal(t, DialectPostgres, DialectForDSN("postgres://u:p@localhost:5432/bills"))
	assert.Equal(t, DialectPostgres, DialectForDSN("postgresql://u:p@localhost:5432/bills"))
	assert.Equal(t, DialectSQLite, DialectForDSN("./bills.db"))
	assert.Equal(t, DialectSQLite, DialectForDSN("file:bills.db?cache=shared"))
}
