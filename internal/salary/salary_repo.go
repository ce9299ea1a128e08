package salary

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// LedgerBucket adalah satu bucket (tahun, bulan) hasil agregasi dashboard.
// UnpaidCount ikut dihitung per bucket supaya total, pending, dan trend
// berasal dari satu snapshot query yang sama.
type LedgerBucket struct {
	Year        int
	Month       int
	Total       float64
	UnpaidCount int64
}

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *SalaryRecord) error
	FindAll(ctx context.Context) ([]SalaryRecord, error)
	FindByID(ctx context.Context, id string) (*SalaryRecord, error)
	Update(ctx context.Context, record *SalaryRecord) error
	Delete(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, ids []string) (int64, error)
	AggregateByMonth(ctx context.Context) ([]LedgerBucket, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.db.WithContext(ctx).
		Order("payment_date DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) Update(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&SalaryRecord{}, "id = ?", id).Error
}

// MarkPaid transitions every Unpaid record in ids to Paid in one UPDATE.
// Records already Paid and ids that resolve to nothing are skipped.
// Di dalam transaksi, UPDATE berjalan di koneksi tx yang sama dengan insert
// outbox, sehingga transisi status dan event-nya commit atau rollback bersama.
func (r *repository) MarkPaid(ctx context.Context, ids []string) (int64, error) {
	if r.tx != nil {
		placeholders := make([]string, len(ids))
		args := make([]any, 0, len(ids)+2)
		args = append(args, StatusPaid)
		for i, id := range ids {
			placeholders[i] = fmt.Sprintf("$%d", i+2)
			args = append(args, id)
		}
		args = append(args, StatusUnpaid)

		query := fmt.Sprintf(
			`UPDATE salary_records SET status = $1, updated_at = now() WHERE id IN (%s) AND status = $%d`,
			strings.Join(placeholders, ","),
			len(ids)+2,
		)

		result, err := r.tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return result.RowsAffected()
	}

	result := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Where("id IN ?", ids).
		Where("status = ?", StatusUnpaid).
		Update("status", StatusPaid)
	return result.RowsAffected, result.Error
}

func (r *repository) AggregateByMonth(ctx context.Context) ([]LedgerBucket, error) {
	var buckets []LedgerBucket
	query := `
SELECT
	EXTRACT(YEAR FROM payment_date)::int AS year,
	EXTRACT(MONTH FROM payment_date)::int AS month,
	COALESCE(SUM(net_pay), 0) AS total,
	COUNT(*) FILTER (WHERE status = 'Unpaid') AS unpaid_count
FROM salary_records
GROUP BY 1, 2
ORDER BY 1 ASC, 2 ASC
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&buckets).Error
	return buckets, err
}
