package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"restropay/internal/events"
	"restropay/internal/messaging/kafka"
	"restropay/internal/payperiod"
	"restropay/internal/shared/contextutil"
	"restropay/internal/shared/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) validateFields(name, phone, salary, salaryType, position, joinedDate string) error {
	return validation.Collect(map[string]validation.Result{
		"name":        ValidateName(name),
		"phone":       ValidatePhone(phone),
		"base_salary": ValidateSalary(salary),
		"salary_type": ValidateSalaryType(salaryType),
		"position":    ValidatePosition(position),
		"joined_date": ValidateJoinedDate(joinedDate),
	})
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	if err := s.validateFields(req.Name, req.Phone, req.BaseSalary, req.SalaryType, req.Position, req.JoinedDate); err != nil {
		return EmployeeResponse{}, err
	}

	baseSalary, err := strconv.ParseInt(req.BaseSalary, 10, 64)
	if err != nil {
		return EmployeeResponse{}, err
	}
	joinedDate, err := payperiod.ParseDate(req.JoinedDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Employee{
		ID:         uuid.New(),
		Name:       req.Name,
		Phone:      req.Phone,
		BaseSalary: baseSalary,
		SalaryType: req.SalaryType,
		Position:   req.Position,
		JoinedDate: joinedDate,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", row.ID.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	// Joined date is carried over from the stored row; it never changes.
	if err := validation.Collect(map[string]validation.Result{
		"name":        ValidateName(req.Name),
		"phone":       ValidatePhone(req.Phone),
		"base_salary": ValidateSalary(req.BaseSalary),
		"salary_type": ValidateSalaryType(req.SalaryType),
		"position":    ValidatePosition(req.Position),
	}); err != nil {
		return EmployeeResponse{}, err
	}

	baseSalary, err := strconv.ParseInt(req.BaseSalary, 10, 64)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	row.Name = req.Name
	row.Phone = req.Phone
	row.BaseSalary = baseSalary
	row.SalaryType = req.SalaryType
	row.Position = req.Position

	if err := qtx.Update(ctx, row); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := s.queueChangeEvent(ctx, tx, rid, row, events.ChangeUpdated); err != nil {
		return EmployeeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	// Ledgers go first so a failure leaves everything untouched.
	if err := qtx.PurgeLedgers(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.queueChangeEvent(ctx, tx, rid, row, events.ChangeDeleted); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return nil
}

// queueChangeEvent stages an employee-changed notification in the same
// transaction as the registry write. Consumers drop cached salary
// estimations for the employee, so a base salary correction is never
// served from a stale cache entry.
func (s *service) queueChangeEvent(ctx context.Context, tx *sql.Tx, rid string, row *Employee, change string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.EmployeeChangedEvent{
		EventType:  "employee_changed",
		RequestID:  rid,
		EmployeeID: row.ID.String(),
		Change:     change,
		BaseSalary: row.BaseSalary,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   row.ID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("employee outbox persist failed",
			zap.String("employee_id", row.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID.String(),
		Name:       e.Name,
		Phone:      e.Phone,
		BaseSalary: e.BaseSalary,
		SalaryType: e.SalaryType,
		Position:   e.Position,
		JoinedDate: payperiod.FormatDate(e.JoinedDate),
	}
}
