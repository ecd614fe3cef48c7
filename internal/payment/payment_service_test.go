package payment_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"restropay/internal/payment"
	"restropay/internal/payperiod"
	"restropay/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePaymentRepository struct {
	withTxFn       func(tx *sql.Tx) payment.Repository
	createFn       func(ctx context.Context, p *payment.PaymentRecord) error
	findByIDFn     func(ctx context.Context, id string) (*payment.PaymentRecord, error)
	listByRangeFn  func(ctx context.Context, employeeID string, start, end time.Time) ([]payment.PaymentRecord, error)
	findEmployeeFn func(ctx context.Context, employeeID string) (*payment.EmployeeRef, error)
}

func (f *fakePaymentRepository) WithTx(tx *sql.Tx) payment.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePaymentRepository) Create(ctx context.Context, p *payment.PaymentRecord) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePaymentRepository) Update(ctx context.Context, p *payment.PaymentRecord) error {
	return nil
}

func (f *fakePaymentRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakePaymentRepository) FindByID(ctx context.Context, id string) (*payment.PaymentRecord, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentRepository) ListByRange(ctx context.Context, employeeID string, start, end time.Time) ([]payment.PaymentRecord, error) {
	if f.listByRangeFn != nil {
		return f.listByRangeFn(ctx, employeeID, start, end)
	}
	return nil, nil
}

func (f *fakePaymentRepository) SumPayments(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	return 0, nil
}

func (f *fakePaymentRepository) CountPayments(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	return 0, nil
}

func (f *fakePaymentRepository) FindEmployee(ctx context.Context, employeeID string) (*payment.EmployeeRef, error) {
	if f.findEmployeeFn != nil {
		return f.findEmployeeFn(ctx, employeeID)
	}
	return &payment.EmployeeRef{ID: uuid.MustParse(employeeID)}, nil
}

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type paymentDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payment.Service
	repo    *fakePaymentRepository
	counter *fakeCounter
}

func setupPaymentTest(t *testing.T) *paymentDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePaymentRepository{}
	ctr := &fakeCounter{next: 6}
	svc := payment.NewService(db, repo, ctr)

	return &paymentDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, counter: ctr}
}

func TestPaymentService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success assigns a sequential receipt number", func(t *testing.T) {
		deps := setupPaymentTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var created *payment.PaymentRecord
		deps.repo.createFn = func(ctx context.Context, p *payment.PaymentRecord) error {
			created = p
			return nil
		}

		resp, err := deps.service.Create(ctx, payment.CreatePaymentRequest{
			EmployeeID:  employeeID,
			Amount:      "3000",
			PaymentDate: "2024-01-25",
			PaymentType: "cash",
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, int64(3000), resp.Amount)
		assert.Equal(t, "CASH", resp.PaymentType)
		assert.Equal(t, "PAY-000007", resp.ReceiptNumber)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("split tender without note is rejected", func(t *testing.T) {
		deps := setupPaymentTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, payment.CreatePaymentRequest{
			EmployeeID:  employeeID,
			Amount:      "3000",
			PaymentDate: "2024-01-25",
			PaymentType: "BOTH",
		})

		assert.Error(t, err)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, apperror.CodeValidationError, httpErr.Code)
		details, ok := httpErr.Details.(map[string]string)
		assert.True(t, ok)
		assert.Equal(t, "Payment note required because you paid using both Cash and Online.", details["note"])
	})

	t.Run("all failing fields are reported together", func(t *testing.T) {
		deps := setupPaymentTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, payment.CreatePaymentRequest{
			EmployeeID:  employeeID,
			Amount:      "ab",
			PaymentDate: "25/01/2024",
			PaymentType: "CARD",
		})

		assert.Error(t, err)
		httpErr := apperror.ToHTTP(err)
		details, ok := httpErr.Details.(map[string]string)
		assert.True(t, ok)
		assert.Len(t, details, 3)
		assert.Contains(t, details, "amount")
		assert.Contains(t, details, "payment_date")
		assert.Contains(t, details, "payment_type")
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupPaymentTest(t)
		defer deps.db.Close()

		deps.repo.findEmployeeFn = func(ctx context.Context, eid string) (*payment.EmployeeRef, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Create(ctx, payment.CreatePaymentRequest{
			EmployeeID:  employeeID,
			Amount:      "3000",
			PaymentDate: "2024-01-25",
			PaymentType: "CASH",
		})

		assert.Error(t, err)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
	})
}

func TestPaymentService_GetHistoryByEmployee(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	joined := payperiod.Truncate(time.Now().UTC().AddDate(0, 0, -40))

	deps := setupPaymentTest(t)
	defer deps.db.Close()

	deps.repo.findEmployeeFn = func(ctx context.Context, eid string) (*payment.EmployeeRef, error) {
		return &payment.EmployeeRef{ID: employeeID, JoinedDate: joined}, nil
	}

	var queried []payperiod.Period
	deps.repo.listByRangeFn = func(ctx context.Context, eid string, start, end time.Time) ([]payment.PaymentRecord, error) {
		queried = append(queried, payperiod.Period{Start: start, End: end})
		return []payment.PaymentRecord{
			{ID: uuid.New(), EmployeeID: employeeID, Amount: 1000, PaymentDate: start, PaymentType: payment.PaymentTypeCash},
		}, nil
	}

	history, err := deps.service.GetHistoryByEmployee(ctx, employeeID.String())

	assert.NoError(t, err)
	assert.NotEmpty(t, history)
	assert.Len(t, queried, len(history))

	// Groups start at the joining date and stay contiguous.
	assert.Equal(t, payperiod.FormatDate(joined), history[0].StartDate)
	for i := 1; i < len(history); i++ {
		prevEnd, _ := payperiod.ParseDate(history[i-1].EndDate)
		start, _ := payperiod.ParseDate(history[i].StartDate)
		assert.Equal(t, prevEnd.AddDate(0, 0, 1), start)
	}

	for _, group := range history {
		assert.Len(t, group.Payments, 1)
	}
}
