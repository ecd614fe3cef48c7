package employee

import (
	"strings"
	"unicode"

	"restropay/internal/payperiod"
	"restropay/internal/shared/validation"
)

func ValidateName(name string) validation.Result {
	if name == "" {
		return validation.Invalid("Employee name must not be empty")
	}
	if len(name) < 4 {
		return validation.Invalid("Employee name must be more than 4 characters")
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return validation.Invalid("Employee name must not contain any digit")
		}
	}
	return validation.Valid()
}

func ValidatePhone(phone string) validation.Result {
	if phone == "" {
		return validation.Invalid("Employee phone must not be empty")
	}
	if len(phone) != 10 {
		return validation.Invalid("Employee phone must be 10 digits")
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return validation.Invalid("Employee phone must not contain any characters")
		}
	}
	return validation.Valid()
}

func ValidateSalary(salary string) validation.Result {
	if salary == "" {
		return validation.Invalid("Salary must not be empty")
	}
	for _, r := range salary {
		if !unicode.IsDigit(r) {
			return validation.Invalid("Salary must not contain any characters")
		}
	}
	return validation.Valid()
}

func ValidateSalaryType(salaryType string) validation.Result {
	switch strings.ToUpper(salaryType) {
	case SalaryTypeMonthly, SalaryTypeDaily:
		return validation.Valid()
	case "":
		return validation.Invalid("Salary type must not be empty")
	default:
		return validation.Invalid("Salary type is invalid")
	}
}

func ValidatePosition(position string) validation.Result {
	if position == "" {
		return validation.Invalid("Employee position must not be empty")
	}
	return validation.Valid()
}

func ValidateJoinedDate(joinedDate string) validation.Result {
	if joinedDate == "" {
		return validation.Invalid("Joined date must not be empty")
	}
	if _, err := payperiod.ParseDate(joinedDate); err != nil {
		return validation.Invalid("Joined date must be a valid date (YYYY-MM-DD)")
	}
	return validation.Valid()
}
