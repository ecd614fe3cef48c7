package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SalaryTypeMonthly = "MONTHLY"
	SalaryTypeDaily   = "DAILY"
)

type Employee struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string         `gorm:"column:name;type:varchar(120);not null;uniqueIndex:uq_employees_name"`
	Phone      string         `gorm:"column:phone;type:varchar(15);not null;uniqueIndex:uq_employees_phone"`
	BaseSalary int64          `gorm:"column:base_salary;type:bigint;not null"`
	SalaryType string         `gorm:"column:salary_type;type:varchar(20);not null;default:MONTHLY"`
	Position   string         `gorm:"column:position;type:varchar(60);not null"`
	JoinedDate time.Time      `gorm:"column:joined_date;type:date;not null"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}
