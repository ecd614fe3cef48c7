package absence

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "restropay/internal/employee/errors"
	"restropay/internal/events"
	"restropay/internal/messaging/kafka"
	"restropay/internal/payperiod"
	"restropay/internal/shared/contextutil"
	"restropay/internal/shared/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=absence_service.go -destination=mock/absence_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error)
	Update(ctx context.Context, id string, req UpdateAbsenceRequest) (AbsenceResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (AbsenceResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]AbsenceResponse, error)
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
	l := zap.L().Named("absence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absence.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

// validateFields runs every rule and aggregates all failures; nothing is
// written when any rule fails. The duplicate-date rule excludes the record
// itself on update so re-saving an unchanged date succeeds.
func (s *service) validateFields(ctx context.Context, employeeID, absentDate, excludeID string) error {
	fields := map[string]validation.Result{
		"employee_id": ValidateEmployeeID(employeeID),
		"absent_date": ValidateAbsentDate(absentDate),
	}

	if fields["employee_id"].Successful && fields["absent_date"].Successful {
		date, _ := payperiod.ParseDate(absentDate)
		exists, err := s.repo.ExistsOnDate(ctx, employeeID, date, excludeID)
		if err != nil {
			return err
		}
		if exists {
			fields["absent_date"] = validation.Invalid("Selected date already exists.")
		}
	}

	return validation.Collect(fields)
}

func (s *service) Create(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return AbsenceResponse{}, err
	}
	if !exists {
		return AbsenceResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	if err := s.validateFields(ctx, req.EmployeeID, req.AbsentDate, ""); err != nil {
		return AbsenceResponse{}, err
	}

	absentDate, err := payperiod.ParseDate(req.AbsentDate)
	if err != nil {
		return AbsenceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &AbsenceRecord{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		AbsentDate: absentDate,
		Reason:     req.Reason,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}
	if err := s.queueChangeEvent(ctx, tx, rid, row, events.ChangeCreated); err != nil {
		return AbsenceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AbsenceResponse{}, err
	}

	s.logger.Info("absence recorded",
		zap.String("request_id", rid),
		zap.String("absence_id", row.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("absent_date", req.AbsentDate),
	)
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAbsenceRequest) (AbsenceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	if err := s.validateFields(ctx, row.EmployeeID.String(), req.AbsentDate, id); err != nil {
		return AbsenceResponse{}, err
	}

	absentDate, err := payperiod.ParseDate(req.AbsentDate)
	if err != nil {
		return AbsenceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row.AbsentDate = absentDate
	if req.Reason != nil {
		row.Reason = req.Reason
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}
	if err := s.queueChangeEvent(ctx, tx, rid, row, events.ChangeUpdated); err != nil {
		return AbsenceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AbsenceResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.queueChangeEvent(ctx, tx, rid, row, events.ChangeDeleted); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) GetByID(ctx context.Context, id string) (AbsenceResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]AbsenceResponse, error) {
	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]AbsenceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) queueChangeEvent(ctx context.Context, tx *sql.Tx, rid string, row *AbsenceRecord, change string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.AbsenceChangedEvent{
		EventType:  "absence_changed",
		RequestID:  rid,
		AbsenceID:  row.ID.String(),
		EmployeeID: row.EmployeeID.String(),
		Change:     change,
		AbsentDate: payperiod.FormatDate(row.AbsentDate),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "absence",
		AggregateID:   row.ID.String(),
		EventType:     event.EventType,
		Topic:         events.AbsenceChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("absence outbox persist failed",
			zap.String("absence_id", row.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(a AbsenceRecord) AbsenceResponse {
	resp := AbsenceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		AbsentDate: payperiod.FormatDate(a.AbsentDate),
		Reason:     a.Reason,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.Name
	}
	return resp
}
