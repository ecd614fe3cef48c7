package payment

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"restropay/internal/payperiod"
	"restropay/internal/shared/validation"
)

// DefaultMinAmountDigits is the minimum digit count a payment amount must
// have. Kept configurable on the service because the floor is a business
// rule, not an arithmetic one.
const DefaultMinAmountDigits = 2

func ValidateEmployeeID(employeeID string) validation.Result {
	if employeeID == "" {
		return validation.Invalid("Employee must not be empty")
	}
	return validation.Valid()
}

// ValidateAmount accepts only a pure numeric string of at least minDigits
// digits that fits in int64 and is greater than zero. Amounts arrive as
// strings from the payment form.
func ValidateAmount(amount string, minDigits int) validation.Result {
	if amount == "" {
		return validation.Invalid("Payment amount must not be empty")
	}
	for _, r := range amount {
		if unicode.IsLetter(r) {
			return validation.Invalid("Payment amount must not contain any characters")
		}
		if !unicode.IsDigit(r) {
			return validation.Invalid("Payment amount must be a valid number")
		}
	}
	if len(amount) < minDigits {
		return validation.Invalid(fmt.Sprintf("Payment amount must be at least %d digits", minDigits))
	}
	v, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return validation.Invalid("Payment amount is too large")
	}
	if v == 0 {
		return validation.Invalid("Payment amount must be greater than zero")
	}
	return validation.Valid()
}

func ValidatePaymentDate(paymentDate string) validation.Result {
	if paymentDate == "" {
		return validation.Invalid("Payment date must not be empty")
	}
	if _, err := payperiod.ParseDate(paymentDate); err != nil {
		return validation.Invalid("Payment date must be a valid date (YYYY-MM-DD)")
	}
	return validation.Valid()
}

func ValidatePaymentType(paymentType string) validation.Result {
	switch strings.ToUpper(paymentType) {
	case PaymentTypeCash, PaymentTypeOnline, PaymentTypeBoth:
		return validation.Valid()
	case "":
		return validation.Invalid("Payment type must not be empty")
	default:
		return validation.Invalid("Payment type is invalid")
	}
}

// ValidateNote requires a note when the tender is split across cash and
// online, so the split is always explained.
func ValidateNote(note *string, paymentType string) validation.Result {
	if strings.ToUpper(paymentType) != PaymentTypeBoth {
		return validation.Valid()
	}
	if note == nil || *note == "" {
		return validation.Invalid("Payment note required because you paid using both Cash and Online.")
	}
	return validation.Valid()
}
