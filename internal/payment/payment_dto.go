package payment

type CreatePaymentRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	Amount      string  `json:"amount" binding:"required"`
	PaymentDate string  `json:"payment_date" binding:"required,calendardate"`
	PaymentType string  `json:"payment_type" binding:"required"`
	Note        *string `json:"note"`
}

type UpdatePaymentRequest struct {
	Amount      string  `json:"amount" binding:"required"`
	PaymentDate string  `json:"payment_date" binding:"required,calendardate"`
	PaymentType string  `json:"payment_type" binding:"required"`
	Note        *string `json:"note"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	Amount        int64   `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentType   string  `json:"payment_type"`
	Note          *string `json:"note,omitempty"`
	ReceiptNumber string  `json:"receipt_number"`
}

// PeriodPaymentsResponse groups one pay period's payments, newest first,
// for the per-month payment history view.
type PeriodPaymentsResponse struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Payments  []PaymentResponse `json:"payments"`
}
