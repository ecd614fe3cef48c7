package payment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentTypeCash   = "CASH"
	PaymentTypeOnline = "ONLINE"
	// PaymentTypeBoth is a split tender; the note must explain the split.
	PaymentTypeBoth = "BOTH"
)

type PaymentRecord struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	Amount        int64          `gorm:"column:amount;type:bigint;not null"`
	PaymentDate   time.Time      `gorm:"column:payment_date;type:date;not null;index"`
	PaymentType   string         `gorm:"column:payment_type;type:varchar(20);not null"`
	Note          *string        `gorm:"column:note;type:text"`
	ReceiptNumber string         `gorm:"column:receipt_number;type:varchar(30);not null;uniqueIndex:uq_payment_receipt"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee      *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (PaymentRecord) TableName() string {
	return "payment_records"
}

type EmployeeRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"column:name"`
	JoinedDate time.Time `gorm:"column:joined_date;type:date"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
