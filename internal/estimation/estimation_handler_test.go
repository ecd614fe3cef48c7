package estimation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"restropay/internal/estimation"
	"restropay/internal/payperiod"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEstimationService struct {
	estimateFn func(ctx context.Context, employeeID string, period *payperiod.Period) (estimation.EstimationResponse, error)
}

func (f *fakeEstimationService) Estimate(ctx context.Context, employeeID string, period *payperiod.Period) (estimation.EstimationResponse, error) {
	return f.estimateFn(ctx, employeeID, period)
}
func (f *fakeEstimationService) ListAllPeriods(ctx context.Context, employeeID string) ([]estimation.EstimationResponse, error) {
	return nil, nil
}
func (f *fakeEstimationService) CalculablePeriods(ctx context.Context, employeeID string) ([]estimation.PeriodResponse, error) {
	return nil, nil
}
func (f *fakeEstimationService) InvalidateEmployee(ctx context.Context, employeeID string) error {
	return nil
}

func TestEstimationHandler_Estimate(t *testing.T) {
	employeeID := uuid.New().String()

	t.Run("no range defaults to the current period", func(t *testing.T) {
		svc := &fakeEstimationService{
			estimateFn: func(ctx context.Context, eid string, period *payperiod.Period) (estimation.EstimationResponse, error) {
				assert.Equal(t, employeeID, eid)
				assert.Nil(t, period)
				return estimation.EstimationResponse{Status: estimation.StatusNotPaid}, nil
			},
		}

		h := estimation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/x/salary-estimation", nil)
		c.Params = gin.Params{{Key: "id", Value: employeeID}}

		h.Estimate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_PAID")
	})

	t.Run("explicit range is forwarded", func(t *testing.T) {
		svc := &fakeEstimationService{
			estimateFn: func(ctx context.Context, eid string, period *payperiod.Period) (estimation.EstimationResponse, error) {
				if assert.NotNil(t, period) {
					assert.Equal(t, "2024-01-15", payperiod.FormatDate(period.Start))
					assert.Equal(t, "2024-02-14", payperiod.FormatDate(period.End))
				}
				return estimation.EstimationResponse{}, nil
			},
		}

		h := estimation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/x/salary-estimation?start=2024-01-15&end=2024-02-14", nil)
		c.Params = gin.Params{{Key: "id", Value: employeeID}}

		h.Estimate(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("one-day range is accepted", func(t *testing.T) {
		svc := &fakeEstimationService{
			estimateFn: func(ctx context.Context, eid string, period *payperiod.Period) (estimation.EstimationResponse, error) {
				if assert.NotNil(t, period) {
					assert.Equal(t, "2024-01-15", payperiod.FormatDate(period.Start))
					assert.Equal(t, "2024-01-15", payperiod.FormatDate(period.End))
				}
				return estimation.EstimationResponse{}, nil
			},
		}

		h := estimation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/x/salary-estimation?start=2024-01-15&end=2024-01-15", nil)
		c.Params = gin.Params{{Key: "id", Value: employeeID}}

		h.Estimate(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("half-specified range is rejected", func(t *testing.T) {
		h := estimation.NewHandler(&fakeEstimationService{
			estimateFn: func(ctx context.Context, eid string, period *payperiod.Period) (estimation.EstimationResponse, error) {
				t.Fatal("service must not be called")
				return estimation.EstimationResponse{}, nil
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/x/salary-estimation?start=2024-01-15", nil)
		c.Params = gin.Params{{Key: "id", Value: employeeID}}

		h.Estimate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		h := estimation.NewHandler(&fakeEstimationService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/x/salary-estimation?start=2024-02-14&end=2024-01-15", nil)
		c.Params = gin.Params{{Key: "id", Value: employeeID}}

		h.Estimate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
