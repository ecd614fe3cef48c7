package estimationerrors

import (
	"net/http"

	"restropay/internal/shared/apperror"
)

var (
	// ErrNoPayPeriod is returned when an employee's joining date is still in
	// the future, so no pay period exists to estimate.
	ErrNoPayPeriod = apperror.New(
		apperror.CodeInvalidState,
		"No pay period has started for this employee yet",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Period start and end must both be valid dates (YYYY-MM-DD), start before end",
		http.StatusBadRequest,
	)
)
