package estimation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restropay/internal/currency"
	"restropay/internal/employee"
	employeeerrors "restropay/internal/employee/errors"
	estimationerrors "restropay/internal/estimation/errors"
	"restropay/internal/payperiod"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// perDayDivisor is the fixed 30-day month convention the per-day rate is
// derived from, regardless of the actual days in the period. Load-bearing
// for existing payroll expectations; do not replace with actual month
// lengths.
const perDayDivisor = 30

const (
	cacheKeyPrefix = "estimation:"
	cacheTTL       = 10 * time.Minute
)

// EmployeeDirectory resolves employees; satisfied by employee.Repository.
type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

// AttendanceLedger answers absence counts; satisfied by absence.Repository.
type AttendanceLedger interface {
	CountAbsences(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
}

// PaymentLedger answers payment aggregates; satisfied by payment.Repository.
type PaymentLedger interface {
	SumPayments(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
	CountPayments(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
}

//go:generate mockgen -source=estimation_service.go -destination=mock/estimation_service_mock.go -package=mock
type Service interface {
	// Estimate computes the salary state for one pay period. A nil period
	// selects the current one.
	Estimate(ctx context.Context, employeeID string, period *payperiod.Period) (EstimationResponse, error)
	// ListAllPeriods computes one estimation per calculable pay period,
	// ascending by period.
	ListAllPeriods(ctx context.Context, employeeID string) ([]EstimationResponse, error)
	CalculablePeriods(ctx context.Context, employeeID string) ([]PeriodResponse, error)
	// InvalidateEmployee drops every cached estimation for the employee.
	// Called by the ledger-change consumer so the next read recomputes.
	InvalidateEmployee(ctx context.Context, employeeID string) error
}

type service struct {
	employees EmployeeDirectory
	absences  AttendanceLedger
	payments  PaymentLedger
	formatter currency.Formatter
	rdb       *redis.Client
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	employees EmployeeDirectory,
	absences AttendanceLedger,
	payments PaymentLedger,
	formatter currency.Formatter,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithCache(employees, absences, payments, formatter, nil, logger...)
}

func NewServiceWithCache(
	employees EmployeeDirectory,
	absences AttendanceLedger,
	payments PaymentLedger,
	formatter currency.Formatter,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("estimation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("estimation.service")
	}
	return &service{
		employees: employees,
		absences:  absences,
		payments:  payments,
		formatter: formatter,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Estimate(ctx context.Context, employeeID string, period *payperiod.Period) (EstimationResponse, error) {
	empl, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return EstimationResponse{}, err
	}

	p := payperiod.Period{}
	if period != nil {
		p = *period
	} else {
		current, ok := payperiod.Current(empl.JoinedDate, s.now().UTC())
		if !ok {
			return EstimationResponse{}, estimationerrors.ErrNoPayPeriod
		}
		p = current
	}

	return s.estimateCached(ctx, empl, p)
}

func (s *service) ListAllPeriods(ctx context.Context, employeeID string) ([]EstimationResponse, error) {
	empl, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	periods := payperiod.Calculable(
		empl.JoinedDate,
		payperiod.Generate(empl.JoinedDate, s.now().UTC()),
	)

	estimations := make([]EstimationResponse, 0, len(periods))
	for _, p := range periods {
		est, err := s.estimateCached(ctx, empl, p)
		if err != nil {
			return nil, err
		}
		estimations = append(estimations, est)
	}
	return estimations, nil
}

func (s *service) CalculablePeriods(ctx context.Context, employeeID string) ([]PeriodResponse, error) {
	empl, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	periods := payperiod.Calculable(
		empl.JoinedDate,
		payperiod.Generate(empl.JoinedDate, s.now().UTC()),
	)

	res := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = PeriodResponse{
			StartDate: payperiod.FormatDate(p.Start),
			EndDate:   payperiod.FormatDate(p.End),
		}
	}
	return res, nil
}

func (s *service) InvalidateEmployee(ctx context.Context, employeeID string) error {
	if s.rdb == nil {
		return nil
	}

	pattern := cacheKeyPrefix + employeeID + ":*"
	iter := s.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}

	s.logger.Debug("estimation cache invalidated", zap.String("employee_id", employeeID))
	return nil
}

func (s *service) findEmployee(ctx context.Context, employeeID string) (*employee.Employee, error) {
	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return empl, nil
}

// estimateCached reads through the Redis cache when one is configured,
// deduplicating concurrent fills per key with singleflight. Estimation is
// a pure function of the ledger snapshot, so a short TTL plus event-driven
// invalidation keeps reads cheap and fresh.
func (s *service) estimateCached(ctx context.Context, empl *employee.Employee, p payperiod.Period) (EstimationResponse, error) {
	if s.rdb == nil {
		return s.estimate(ctx, empl, p)
	}

	key := cacheKey(empl.ID.String(), p)

	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var resp EstimationResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			return resp, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		resp, err := s.estimate(ctx, empl, p)
		if err != nil {
			return EstimationResponse{}, err
		}

		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			if cacheErr := s.rdb.Set(ctx, key, payload, cacheTTL).Err(); cacheErr != nil {
				s.logger.Warn("estimation cache write failed", zap.String("key", key), zap.Error(cacheErr))
			}
		}
		return resp, nil
	})
	if err != nil {
		return EstimationResponse{}, err
	}
	return v.(EstimationResponse), nil
}

func (s *service) estimate(ctx context.Context, empl *employee.Employee, p payperiod.Period) (EstimationResponse, error) {
	absentCount, err := s.absences.CountAbsences(ctx, empl.ID.String(), p.Start, p.End)
	if err != nil {
		return EstimationResponse{}, err
	}

	amountPaid, err := s.payments.SumPayments(ctx, empl.ID.String(), p.Start, p.End)
	if err != nil {
		return EstimationResponse{}, err
	}

	paymentCount, err := s.payments.CountPayments(ctx, empl.ID.String(), p.Start, p.End)
	if err != nil {
		return EstimationResponse{}, err
	}

	perDayRate := empl.BaseSalary / perDayDivisor
	absentDeduction := perDayRate * absentCount
	expectedSalary := empl.BaseSalary - absentDeduction
	remainingAmount := expectedSalary - amountPaid

	status := StatusNotPaid
	if expectedSalary < amountPaid {
		status = StatusPaid
	}

	var message *string
	switch {
	case remainingAmount < 0:
		m := fmt.Sprintf("Paid Extra %s Amount", s.formatter.Format(-remainingAmount))
		message = &m
	case remainingAmount > 0:
		m := fmt.Sprintf("Remaining %s have to pay.", s.formatter.Format(remainingAmount))
		message = &m
	}

	return EstimationResponse{
		Period: PeriodResponse{
			StartDate: payperiod.FormatDate(p.Start),
			EndDate:   payperiod.FormatDate(p.End),
		},
		Status:          status,
		Message:         message,
		ExpectedSalary:  expectedSalary,
		AmountPaid:      amountPaid,
		RemainingAmount: remainingAmount,
		PaymentCount:    paymentCount,
		AbsentCount:     absentCount,
	}, nil
}

func cacheKey(employeeID string, p payperiod.Period) string {
	return fmt.Sprintf("%s%s:%s:%s",
		cacheKeyPrefix,
		employeeID,
		payperiod.FormatDate(p.Start),
		payperiod.FormatDate(p.End),
	)
}
