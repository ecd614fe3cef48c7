package validation

import (
	"net/http"

	"restropay/internal/shared/apperror"
)

// Result is the outcome of a single field check. Validators are pure and
// side-effect free; callers run every validator before touching storage.
type Result struct {
	Successful   bool
	ErrorMessage string
}

func Valid() Result {
	return Result{Successful: true}
}

func Invalid(message string) Result {
	return Result{Successful: false, ErrorMessage: message}
}

// Collect aggregates field results into a single VALIDATION_ERROR carrying
// every failing message, keyed by field. Returns nil when all fields pass,
// so callers apply all-or-nothing semantics: no write happens on any failure.
func Collect(fields map[string]Result) error {
	details := make(map[string]string)
	for field, res := range fields {
		if !res.Successful {
			details[field] = res.ErrorMessage
		}
	}

	if len(details) == 0 {
		return nil
	}

	return apperror.New(
		apperror.CodeValidationError,
		"One or more fields are invalid",
		http.StatusBadRequest,
	).WithDetails(details)
}
