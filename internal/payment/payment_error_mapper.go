package payment

import (
	"errors"
	"strings"

	employeeerrors "restropay/internal/employee/errors"
	paymenterrors "restropay/internal/payment/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paymenterrors.ErrPaymentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_payment_receipt" {
			return paymenterrors.ErrReceiptNumberConflict
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_payment_receipt") {
		return paymenterrors.ErrReceiptNumberConflict
	}

	return err
}

// mapEmployeeLookupError is used where the missing row is the employee,
// not the payment.
func mapEmployeeLookupError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}
