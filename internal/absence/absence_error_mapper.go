package absence

import (
	"errors"
	"strings"

	absenceerrors "restropay/internal/absence/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return absenceerrors.ErrAbsenceNotFound
	}

	// Validation already rejects duplicates; the unique index is the
	// backstop for racing writers.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_absence_employee_date" {
			return absenceerrors.ErrDuplicateAbsentDate
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_absence_employee_date") {
		return absenceerrors.ErrDuplicateAbsentDate
	}

	return err
}
