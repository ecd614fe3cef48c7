package absence

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbsenceRecord marks one employee as absent on one date. At most one
// record may exist per (employee, date); enforced by validation before
// insert and backed by a unique index.
type AbsenceRecord struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_absence_employee_date"`
	AbsentDate time.Time      `gorm:"column:absent_date;type:date;not null;uniqueIndex:uq_absence_employee_date"`
	Reason     *string        `gorm:"column:reason;type:text"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee   *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (AbsenceRecord) TableName() string {
	return "absence_records"
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
