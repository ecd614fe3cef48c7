package events

import "time"

const PaymentChangedTopic = "pos.employee.payment.v1"

// PaymentChangedEvent announces a mutation of the payment ledger.
type PaymentChangedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	PaymentID   string    `json:"payment_id"`
	EmployeeID  string    `json:"employee_id"`
	Change      string    `json:"change"`
	Amount      int64     `json:"amount"`
	PaymentDate string    `json:"payment_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}
