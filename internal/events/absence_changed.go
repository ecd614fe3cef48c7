package events

import "time"

const AbsenceChangedTopic = "pos.employee.absence.v1"

const (
	ChangeCreated = "created"
	ChangeUpdated = "updated"
	ChangeDeleted = "deleted"
)

// AbsenceChangedEvent announces a mutation of the attendance ledger so
// downstream consumers can drop cached salary estimations for the employee.
type AbsenceChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	AbsenceID  string    `json:"absence_id"`
	EmployeeID string    `json:"employee_id"`
	Change     string    `json:"change"`
	AbsentDate string    `json:"absent_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
