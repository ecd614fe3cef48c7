package employeeerrors

import (
	"net/http"

	"restropay/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrEmployeeNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee name already exists",
		http.StatusConflict,
	)

	ErrEmployeePhoneAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee phone already exists",
		http.StatusConflict,
	)
)
