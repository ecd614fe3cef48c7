package absence

type CreateAbsenceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	AbsentDate string  `json:"absent_date" binding:"required,calendardate"`
	Reason     *string `json:"reason"`
}

type UpdateAbsenceRequest struct {
	AbsentDate string  `json:"absent_date" binding:"required,calendardate"`
	Reason     *string `json:"reason"`
}

type AbsenceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	AbsentDate   string  `json:"absent_date"`
	Reason       *string `json:"reason,omitempty"`
}
