package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"restropay/internal/events"
	"restropay/internal/messaging/kafka"
	"restropay/internal/payperiod"
	"restropay/internal/shared/contextutil"
	"restropay/internal/shared/counter"
	"restropay/internal/shared/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payment_service.go -destination=mock/payment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error)
	Update(ctx context.Context, id string, req UpdatePaymentRequest) (PaymentResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (PaymentResponse, error)
	GetHistoryByEmployee(ctx context.Context, employeeID string) ([]PeriodPaymentsResponse, error)
}

type Config struct {
	MinAmountDigits int
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	cfg     Config
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payment.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		cfg:     Config{MinAmountDigits: DefaultMinAmountDigits},
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) validateFields(employeeID, amount, paymentDate, paymentType string, note *string) error {
	return validation.Collect(map[string]validation.Result{
		"employee_id":  ValidateEmployeeID(employeeID),
		"amount":       ValidateAmount(amount, s.cfg.MinAmountDigits),
		"payment_date": ValidatePaymentDate(paymentDate),
		"payment_type": ValidatePaymentType(paymentType),
		"note":         ValidateNote(note, paymentType),
	})
}

func (s *service) Create(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := s.repo.FindEmployee(ctx, req.EmployeeID); err != nil {
		return PaymentResponse{}, mapEmployeeLookupError(err)
	}

	if err := s.validateFields(req.EmployeeID, req.Amount, req.PaymentDate, req.PaymentType, req.Note); err != nil {
		return PaymentResponse{}, err
	}

	amount, err := strconv.ParseInt(req.Amount, 10, 64)
	if err != nil {
		return PaymentResponse{}, err
	}
	paymentDate, err := payperiod.ParseDate(req.PaymentDate)
	if err != nil {
		return PaymentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PaymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	receiptSeq, err := s.counter.GetNextValue(ctx, counter.TypePaymentReceipt)
	if err != nil {
		s.logger.Error("payment receipt number failed", zap.String("request_id", rid), zap.Error(err))
		return PaymentResponse{}, err
	}

	row := &PaymentRecord{
		ID:            uuid.New(),
		EmployeeID:    uuid.MustParse(req.EmployeeID),
		Amount:        amount,
		PaymentDate:   paymentDate,
		PaymentType:   strings.ToUpper(req.PaymentType),
		Note:          req.Note,
		ReceiptNumber: fmt.Sprintf("PAY-%06d", receiptSeq),
	}

	if err := qtx.Create(ctx, row); err != nil {
		return PaymentResponse{}, mapRepositoryError(err)
	}
	if err := s.queueChangeEvent(ctx, tx, rid, row, events.ChangeCreated); err != nil {
		return PaymentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PaymentResponse{}, err
	}

	s.logger.Info("payment recorded",
		zap.String("request_id", rid),
		zap.String("payment_id", row.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int64("amount", amount),
		zap.String("receipt_number", row.ReceiptNumber),
	)
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePaymentRequest) (PaymentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PaymentResponse{}, mapRepositoryError(err)
	}

	if err := s.validateFields(row.EmployeeID.String(), req.Amount, req.PaymentDate, req.PaymentType, req.Note); err != nil {
		return PaymentResponse{}, err
	}

	amount, err := strconv.ParseInt(req.Amount, 10, 64)
	if err != nil {
		return PaymentResponse{}, err
	}
	paymentDate, err := payperiod.ParseDate(req.PaymentDate)
	if err != nil {
		return PaymentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PaymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row.Amount = amount
	row.PaymentDate = paymentDate
	row.PaymentType = strings.ToUpper(req.PaymentType)
	row.Note = req.Note

	if err := qtx.Update(ctx, row); err != nil {
		return PaymentResponse{}, mapRepositoryError(err)
	}
	if err := s.queueChangeEvent(ctx, tx, rid, row, events.ChangeUpdated); err != nil {
		return PaymentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PaymentResponse{}, err
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

func (s *service) GetByID(ctx context.Context, id string) (PaymentResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PaymentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

// GetHistoryByEmployee returns payments grouped per calculable pay period,
// ascending by period, payments newest first within each period.
func (s *service) GetHistoryByEmployee(ctx context.Context, employeeID string) ([]PeriodPaymentsResponse, error) {
	empl, err := s.repo.FindEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapEmployeeLookupError(err)
	}

	periods := payperiod.Calculable(
		empl.JoinedDate,
		payperiod.Generate(empl.JoinedDate, s.now().UTC()),
	)

	history := make([]PeriodPaymentsResponse, 0, len(periods))
	for _, p := range periods {
		rows, err := s.repo.ListByRange(ctx, employeeID, p.Start, p.End)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		payments := make([]PaymentResponse, len(rows))
		for i, r := range rows {
			payments[i] = mapToResponse(r)
		}

		history = append(history, PeriodPaymentsResponse{
			StartDate: payperiod.FormatDate(p.Start),
			EndDate:   payperiod.FormatDate(p.End),
			Payments:  payments,
		})
	}

	return history, nil
}

func (s *service) queueChangeEvent(ctx context.Context, tx *sql.Tx, rid string, row *PaymentRecord, change string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.PaymentChangedEvent{
		EventType:   "payment_changed",
		RequestID:   rid,
		PaymentID:   row.ID.String(),
		EmployeeID:  row.EmployeeID.String(),
		Change:      change,
		Amount:      row.Amount,
		PaymentDate: payperiod.FormatDate(row.PaymentDate),
		OccurredAt:  time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payment",
		AggregateID:   row.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PaymentChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("payment outbox persist failed",
			zap.String("payment_id", row.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(p PaymentRecord) PaymentResponse {
	resp := PaymentResponse{
		ID:            p.ID.String(),
		EmployeeID:    p.EmployeeID.String(),
		Amount:        p.Amount,
		PaymentDate:   payperiod.FormatDate(p.PaymentDate),
		PaymentType:   p.PaymentType,
		Note:          p.Note,
		ReceiptNumber: p.ReceiptNumber,
	}
	if p.Employee != nil {
		resp.EmployeeName = p.Employee.Name
	}
	return resp
}
