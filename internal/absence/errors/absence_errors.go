package absenceerrors

import (
	"net/http"

	"restropay/internal/shared/apperror"
)

var (
	ErrAbsenceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Absence record not found",
		http.StatusNotFound,
	)

	ErrDuplicateAbsentDate = apperror.New(
		apperror.CodeConflict,
		"Selected date already exists.",
		http.StatusConflict,
	)
)
