package absence

import (
	"context"
	"database/sql"
	"time"

	"restropay/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=absence_repo.go -destination=mock/absence_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *AbsenceRecord) error
	Update(ctx context.Context, a *AbsenceRecord) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*AbsenceRecord, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]AbsenceRecord, error)
	FindByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]AbsenceRecord, error)
	CountAbsences(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
	ExistsOnDate(ctx context.Context, employeeID string, date time.Time, excludeID string) (bool, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, a *AbsenceRecord) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *AbsenceRecord) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&AbsenceRecord{}).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*AbsenceRecord, error) {
	var a AbsenceRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]AbsenceRecord, error) {
	var rows []AbsenceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("absent_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]AbsenceRecord, error) {
	var rows []AbsenceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("absent_date >= ?", start.Format("2006-01-02")).
		Where("absent_date <= ?", end.Format("2006-01-02")).
		Order("absent_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountAbsences(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AbsenceRecord{}).
		Where("employee_id = ?", employeeID).
		Where("absent_date >= ?", start.Format("2006-01-02")).
		Where("absent_date <= ?", end.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *repository) ExistsOnDate(ctx context.Context, employeeID string, date time.Time, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&AbsenceRecord{}).
		Where("employee_id = ?", employeeID).
		Where("absent_date = ?", date.Format("2006-01-02"))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EmployeeRef{}).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
