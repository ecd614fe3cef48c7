package events

import "time"

const EmployeeChangedTopic = "pos.employee.profile.v1"

// EmployeeChangedEvent announces a mutation of the employee registry.
// A base salary correction changes every estimation derived from it, so
// updates and deletes are staged in the outbox like the ledger events.
type EmployeeChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Change     string    `json:"change"`
	BaseSalary int64     `json:"base_salary"`
	OccurredAt time.Time `json:"occurred_at"`
}
