package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"billtracker/internal/common"
	"billtracker/internal/entity"
	"billtracker/internal/insights"
)

// CreateBillRequest wraps parameters for persisting a reviewed bill.
type CreateBillRequest struct {
	Date      string
	Vendor    string
	Category  string
	Amount    float64
	ImagePath string
}

type BillRepository interface {
	Insert(ctx context.Context, req CreateBillRequest) (*entity.Bill, error)
	ListAll(ctx context.Context) ([]entity.Bill, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetInsights(ctx context.Context) (*entity.InsightsReport, error)
}

type billRepository struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
	now     func() time.Time
}

func NewBillRepository(db *sql.DB, dialect Dialect, logger *slog.Logger) BillRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &billRepository{
		db:      db,
		dialect: dialect,
		logger:  logger,
		now:     time.Now,
	}
}

func (r *billRepository) Insert(ctx context.Context, req CreateBillRequest) (*entity.Bill, error) {
	// The boundary validates too, but the store never silently accepts a
	// non-positive amount.
	if req.Amount <= 0 {
		return nil, common.InvalidInputError("amount must be a positive number")
	}

	query := rebind(r.dialect, `
		INSERT INTO bills (date, vendor, category, amount, image_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)

	bill := entity.Bill{
		Date:      req.Date,
		Vendor:    req.Vendor,
		Category:  req.Category,
		Amount:    req.Amount,
		ImagePath: req.ImagePath,
		CreatedAt: r.now().UTC(),
	}
	err := r.db.QueryRowContext(ctx, query,
		req.Date, req.Vendor, req.Category, req.Amount, req.ImagePath, bill.CreatedAt,
	).Scan(&bill.ID)
	if err != nil {
		r.logger.Error("failed to insert bill", "vendor", req.Vendor, "error", err)
		return nil, common.DatabaseError("insert bill", err)
	}

	r.logger.Info("bill inserted", "id", bill.ID, "vendor", bill.Vendor, "amount", bill.Amount)
	return &bill, nil
}

// ListAll returns every bill ordered by date descending. Dates compare as
// plain strings; ties fall back to insertion order via the id.
func (r *billRepository) ListAll(ctx context.Context) ([]entity.Bill, error) {
	query := `
		SELECT id, date, vendor, category, amount, image_path, created_at
		FROM bills
		ORDER BY date DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to list bills", "error", err)
		return nil, common.DatabaseError("list bills", err)
	}
	defer rows.Close()

	bills := make([]entity.Bill, 0)
	for rows.Next() {
		var b entity.Bill
		if err := rows.Scan(&b.ID, &b.Date, &b.Vendor, &b.Category, &b.Amount, &b.ImagePath, &b.CreatedAt); err != nil {
			r.logger.Error("failed to scan bill row", "error", err)
			return nil, common.DatabaseError("scan bill", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, common.DatabaseError("iterate bills", err)
	}
	return bills, nil
}

// Delete removes a bill by id. Deleting an absent id is not an error;
// it reports false so the caller can answer 404.
func (r *billRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := rebind(r.dialect, `DELETE FROM bills WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete bill", "id", id, "error", err)
		return false, common.DatabaseError("delete bill", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, common.DatabaseError("delete bill rows affected", err)
	}
	deleted := affected > 0
	r.logger.Info("bill delete", "id", id, "deleted", deleted)
	return deleted, nil
}

// GetInsights recomputes the report from the current bill set on every
// call. Windowing and bucketing live in the insights package so they are
// identical on either storage engine.
func (r *billRepository) GetInsights(ctx context.Context) (*entity.InsightsReport, error) {
	bills, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return insights.Build(bills, r.now()), nil
}
