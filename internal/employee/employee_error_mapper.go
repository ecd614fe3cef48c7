package employee

import (
	"errors"
	"strings"

	employeeerrors "restropay/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_employees_name":
			return employeeerrors.ErrEmployeeNameAlreadyExists
		case "uq_employees_phone":
			return employeeerrors.ErrEmployeePhoneAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_employees_name") {
			return employeeerrors.ErrEmployeeNameAlreadyExists
		}
		if strings.Contains(errMsg, "uq_employees_phone") {
			return employeeerrors.ErrEmployeePhoneAlreadyExists
		}
	}

	return err
}
