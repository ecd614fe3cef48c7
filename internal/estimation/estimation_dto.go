package estimation

// PaymentStatus is the two-valued payment state of a pay period. A fully
// paid period (expected == paid) still reads NOT_PAID with a zero
// remaining amount; the boundary is inherited from existing payroll
// expectations and must not change without a product decision.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "PAID"
	StatusNotPaid PaymentStatus = "NOT_PAID"
)

type PeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// EstimationResponse is the computed salary state of one pay period.
// RemainingAmount is signed: negative means the employee was overpaid.
type EstimationResponse struct {
	Period          PeriodResponse `json:"period"`
	Status          PaymentStatus  `json:"status"`
	Message         *string        `json:"message,omitempty"`
	ExpectedSalary  int64          `json:"expected_salary"`
	AmountPaid      int64          `json:"amount_paid"`
	RemainingAmount int64          `json:"remaining_amount"`
	PaymentCount    int64          `json:"payment_count"`
	AbsentCount     int64          `json:"absent_count"`
}
