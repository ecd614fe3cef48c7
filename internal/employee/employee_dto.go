package employee

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	BaseSalary string `json:"base_salary" binding:"required"`
	SalaryType string `json:"salary_type" binding:"required,oneof=MONTHLY DAILY"`
	Position   string `json:"position" binding:"required"`
	JoinedDate string `json:"joined_date" binding:"required,calendardate"`
}

// UpdateEmployeeRequest deliberately has no joined_date: the joining date
// anchors every historical pay period and is immutable after creation.
type UpdateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	BaseSalary string `json:"base_salary" binding:"required"`
	SalaryType string `json:"salary_type" binding:"required,oneof=MONTHLY DAILY"`
	Position   string `json:"position" binding:"required"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	BaseSalary int64  `json:"base_salary"`
	SalaryType string `json:"salary_type"`
	Position   string `json:"position"`
	JoinedDate string `json:"joined_date"`
}
