package absence

import (
	"restropay/internal/payperiod"
	"restropay/internal/shared/validation"
)

func ValidateEmployeeID(employeeID string) validation.Result {
	if employeeID == "" {
		return validation.Invalid("Employee must not be empty")
	}
	return validation.Valid()
}

func ValidateAbsentDate(absentDate string) validation.Result {
	if absentDate == "" {
		return validation.Invalid("Absent date must not be empty")
	}
	if _, err := payperiod.ParseDate(absentDate); err != nil {
		return validation.Invalid("Absent date must be a valid date (YYYY-MM-DD)")
	}
	return validation.Valid()
}
