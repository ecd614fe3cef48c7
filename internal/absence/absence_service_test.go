package absence_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"restropay/internal/absence"
	employeeerrors "restropay/internal/employee/errors"
	"restropay/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAbsenceRepository struct {
	withTxFn            func(tx *sql.Tx) absence.Repository
	createFn            func(ctx context.Context, a *absence.AbsenceRecord) error
	updateFn            func(ctx context.Context, a *absence.AbsenceRecord) error
	deleteFn            func(ctx context.Context, id string) error
	findByIDFn          func(ctx context.Context, id string) (*absence.AbsenceRecord, error)
	findAllByEmployeeFn func(ctx context.Context, employeeID string) ([]absence.AbsenceRecord, error)
	existsOnDateFn      func(ctx context.Context, employeeID string, date time.Time, excludeID string) (bool, error)
	employeeExistsFn    func(ctx context.Context, employeeID string) (bool, error)
}

func (f *fakeAbsenceRepository) WithTx(tx *sql.Tx) absence.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAbsenceRepository) Create(ctx context.Context, a *absence.AbsenceRecord) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAbsenceRepository) Update(ctx context.Context, a *absence.AbsenceRecord) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

func (f *fakeAbsenceRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeAbsenceRepository) FindByID(ctx context.Context, id string) (*absence.AbsenceRecord, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAbsenceRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]absence.AbsenceRecord, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeAbsenceRepository) FindByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]absence.AbsenceRecord, error) {
	return nil, nil
}

func (f *fakeAbsenceRepository) CountAbsences(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeAbsenceRepository) ExistsOnDate(ctx context.Context, employeeID string, date time.Time, excludeID string) (bool, error) {
	if f.existsOnDateFn != nil {
		return f.existsOnDateFn(ctx, employeeID, date, excludeID)
	}
	return false, nil
}

func (f *fakeAbsenceRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID)
	}
	return true, nil
}

type absenceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service absence.Service
	repo    *fakeAbsenceRepository
}

func setupAbsenceTest(t *testing.T) *absenceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAbsenceRepository{}
	svc := absence.NewService(db, repo)

	return &absenceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func validationDetails(t *testing.T, err error) map[string]string {
	t.Helper()
	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, apperror.CodeValidationError, httpErr.Code)
	details, ok := httpErr.Details.(map[string]string)
	assert.True(t, ok)
	return details
}

func TestAbsenceService_Create(t *testing.T) {
	employeeID := uuid.New().String()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAbsenceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var created *absence.AbsenceRecord
		deps.repo.createFn = func(ctx context.Context, a *absence.AbsenceRecord) error {
			created = a
			return nil
		}

		resp, err := deps.service.Create(ctx, absence.CreateAbsenceRequest{
			EmployeeID: employeeID,
			AbsentDate: "2024-01-20",
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.Equal(t, "2024-01-20", resp.AbsentDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate date is rejected", func(t *testing.T) {
		deps := setupAbsenceTest(t)
		defer deps.db.Close()

		deps.repo.existsOnDateFn = func(ctx context.Context, eid string, date time.Time, excludeID string) (bool, error) {
			assert.Equal(t, "", excludeID)
			return true, nil
		}

		_, err := deps.service.Create(ctx, absence.CreateAbsenceRequest{
			EmployeeID: employeeID,
			AbsentDate: "2024-01-20",
		})

		assert.Error(t, err)
		details := validationDetails(t, err)
		assert.Equal(t, "Selected date already exists.", details["absent_date"])
	})

	t.Run("invalid date blocks the write", func(t *testing.T) {
		deps := setupAbsenceTest(t)
		defer deps.db.Close()

		deps.repo.createFn = func(ctx context.Context, a *absence.AbsenceRecord) error {
			t.Fatal("create must not be called on validation failure")
			return nil
		}

		_, err := deps.service.Create(ctx, absence.CreateAbsenceRequest{
			EmployeeID: employeeID,
			AbsentDate: "20-01-2024",
		})

		assert.Error(t, err)
		details := validationDetails(t, err)
		assert.Contains(t, details["absent_date"], "valid date")
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupAbsenceTest(t)
		defer deps.db.Close()

		deps.repo.employeeExistsFn = func(ctx context.Context, eid string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.Create(ctx, absence.CreateAbsenceRequest{
			EmployeeID: employeeID,
			AbsentDate: "2024-01-20",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestAbsenceService_Update(t *testing.T) {
	ctx := context.Background()
	recordID := uuid.New()
	employeeID := uuid.New()

	t.Run("record excludes itself from the duplicate check", func(t *testing.T) {
		deps := setupAbsenceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*absence.AbsenceRecord, error) {
			return &absence.AbsenceRecord{
				ID:         recordID,
				EmployeeID: employeeID,
				AbsentDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			}, nil
		}
		deps.repo.existsOnDateFn = func(ctx context.Context, eid string, date time.Time, excludeID string) (bool, error) {
			assert.Equal(t, recordID.String(), excludeID)
			return false, nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Update(ctx, recordID.String(), absence.UpdateAbsenceRequest{
			AbsentDate: "2024-01-20",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-20", resp.AbsentDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing record", func(t *testing.T) {
		deps := setupAbsenceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, uuid.NewString(), absence.UpdateAbsenceRequest{
			AbsentDate: "2024-01-21",
		})

		assert.Error(t, err)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
	})
}

func TestAbsenceService_GetAllByEmployee(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupAbsenceTest(t)
	defer deps.db.Close()

	deps.repo.findAllByEmployeeFn = func(ctx context.Context, eid string) ([]absence.AbsenceRecord, error) {
		return []absence.AbsenceRecord{
			{ID: uuid.New(), EmployeeID: employeeID, AbsentDate: time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC)},
			{ID: uuid.New(), EmployeeID: employeeID, AbsentDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
		}, nil
	}

	rows, err := deps.service.GetAllByEmployee(ctx, employeeID.String())

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "2024-01-22", rows[0].AbsentDate)
}
