package paymenterrors

import (
	"net/http"

	"restropay/internal/shared/apperror"
)

var (
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payment record not found",
		http.StatusNotFound,
	)

	ErrReceiptNumberConflict = apperror.New(
		apperror.CodeConflict,
		"Receipt number already exists",
		http.StatusConflict,
	)
)
