package payment

import (
	"context"
	"database/sql"
	"time"

	"restropay/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payment_repo.go -destination=mock/payment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *PaymentRecord) error
	Update(ctx context.Context, p *PaymentRecord) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*PaymentRecord, error)
	ListByRange(ctx context.Context, employeeID string, start, end time.Time) ([]PaymentRecord, error)
	SumPayments(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
	CountPayments(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
	FindEmployee(ctx context.Context, employeeID string) (*EmployeeRef, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.TxSession(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, p *PaymentRecord) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *PaymentRecord) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&PaymentRecord{}).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PaymentRecord, error) {
	var p PaymentRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByRange(ctx context.Context, employeeID string, start, end time.Time) ([]PaymentRecord, error) {
	var rows []PaymentRecord
	err := r.rangeQuery(ctx, employeeID, start, end).
		Order("payment_date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) SumPayments(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	var sum sql.NullInt64
	err := r.rangeQuery(ctx, employeeID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum.Int64, nil
}

func (r *repository) CountPayments(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.rangeQuery(ctx, employeeID, start, end).
		Count(&count).Error
	return count, err
}

func (r *repository) FindEmployee(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	var e EmployeeRef
	err := r.db.WithContext(ctx).
		Where("id = ?", employeeID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) rangeQuery(ctx context.Context, employeeID string, start, end time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&PaymentRecord{}).
		Where("employee_id = ?", employeeID).
		Where("payment_date >= ?", start.Format("2006-01-02")).
		Where("payment_date <= ?", end.Format("2006-01-02"))
}
