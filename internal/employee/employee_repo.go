package employee

import (
	"context"
	"database/sql"

	"restropay/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	ExistsByPhone(ctx context.Context, phone, excludeID string) (bool, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
	PurgeLedgers(ctx context.Context, employeeID string) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	return r.exists(ctx, "name = ?", name, excludeID)
}

func (r *repository) ExistsByPhone(ctx context.Context, phone, excludeID string) (bool, error) {
	return r.exists(ctx, "phone = ?", phone, excludeID)
}

func (r *repository) exists(ctx context.Context, cond, value, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&Employee{}).Where(cond, value)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Employee{}).Error
}

// PurgeLedgers removes the employee's absence and payment records. Called
// inside the delete transaction so the registry and both ledgers move
// together (cascade delete).
func (r *repository) PurgeLedgers(ctx context.Context, employeeID string) error {
	if err := r.db.WithContext(ctx).
		Exec("DELETE FROM absence_records WHERE employee_id = ?", employeeID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Exec("DELETE FROM payment_records WHERE employee_id = ?", employeeID).Error
}
