package salary_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"glamist-payroll/internal/salary"
	salaryerrors "glamist-payroll/internal/salary/errors"
	"glamist-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSalaryService struct {
	createFn          func(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error)
	getAllFn          func(ctx context.Context) ([]salary.SalaryResponse, error)
	getByIDFn         func(ctx context.Context, id string) (salary.SalaryResponse, error)
	updateFn          func(ctx context.Context, id string, req salary.UpdateSalaryRequest) (salary.SalaryResponse, error)
	deleteFn          func(ctx context.Context, id string) error
	dashboardFn       func(ctx context.Context) (salary.DashboardResponse, error)
	processPaymentsFn func(ctx context.Context, req salary.ProcessPaymentsRequest) (int64, error)
}

func (f *fakeSalaryService) Create(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeSalaryService) GetAll(ctx context.Context) ([]salary.SalaryResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeSalaryService) GetByID(ctx context.Context, id string) (salary.SalaryResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeSalaryService) Update(ctx context.Context, id string, req salary.UpdateSalaryRequest) (salary.SalaryResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeSalaryService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeSalaryService) Dashboard(ctx context.Context) (salary.DashboardResponse, error) {
	return f.dashboardFn(ctx)
}

func (f *fakeSalaryService) ProcessPayments(ctx context.Context, req salary.ProcessPaymentsRequest) (int64, error) {
	return f.processPaymentsFn(ctx, req)
}

func setupHandlerTest(
	t *testing.T,
	svc *fakeSalaryService,
	method, path string,
	body any,
) (*httptest.ResponseRecorder, *gin.Context, *salary.Handler) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	apperror.Init()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	c.Request = httptest.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")

	return w, c, salary.NewHandler(svc)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSalaryHandler_Create(t *testing.T) {
	validBody := gin.H{
		"employeeId":       "E1",
		"employeeName":     "Ann",
		"salaryAmount":     1000,
		"paymentFrequency": "Monthly",
		"paymentDate":      "2024-03-01",
		"bonuses":          100,
		"deductions":       50,
	}

	t.Run("created", func(t *testing.T) {
		svc := &fakeSalaryService{
			createFn: func(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error) {
				assert.Equal(t, "E1", req.EmployeeID)
				return salary.SalaryResponse{
					ID:           "11111111-1111-1111-1111-111111111111",
					EmployeeID:   req.EmployeeID,
					EmployeeName: req.EmployeeName,
					NetPay:       1050,
					Status:       salary.StatusUnpaid,
				}, nil
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodPost, "/api/salary/add", validBody)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Salary record added successfully", body["message"])
		data := body["data"].(map[string]any)
		assert.Equal(t, 1050.0, data["netPay"])
		assert.Equal(t, salary.StatusUnpaid, data["status"])
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc := &fakeSalaryService{
			createFn: func(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error) {
				t.Fatal("service must not be called for an invalid payload")
				return salary.SalaryResponse{}, nil
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodPost, "/api/salary/add", gin.H{
			"employeeId": "E1",
		})
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body, "error")
	})

	t.Run("rejects unknown payment frequency", func(t *testing.T) {
		svc := &fakeSalaryService{}

		invalid := gin.H{}
		for k, v := range validBody {
			invalid[k] = v
		}
		invalid["paymentFrequency"] = "Fortnightly"

		w, c, h := setupHandlerTest(t, svc, http.MethodPost, "/api/salary/add", invalid)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSalaryHandler_GetAll(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeSalaryService{
			getAllFn: func(ctx context.Context) ([]salary.SalaryResponse, error) {
				return []salary.SalaryResponse{
					{ID: "a", PaymentDate: "2024-04-01"},
					{ID: "b", PaymentDate: "2024-03-01"},
				}, nil
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodGet, "/api/salary/list", nil)
		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var out []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Len(t, out, 2)
		assert.Equal(t, "a", out[0]["id"])
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &fakeSalaryService{
			getAllFn: func(ctx context.Context) ([]salary.SalaryResponse, error) {
				return nil, apperror.ErrInternal
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodGet, "/api/salary/list", nil)
		h.GetAll(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSalaryHandler_GetById(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeSalaryService{
			getByIDFn: func(ctx context.Context, id string) (salary.SalaryResponse, error) {
				assert.Equal(t, "some-id", id)
				return salary.SalaryResponse{ID: "some-id", NetPay: 1050}, nil
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodGet, "/api/salary/details/some-id", nil)
		c.Params = gin.Params{{Key: "id", Value: "some-id"}}
		h.GetById(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, 1050.0, body["netPay"])
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		svc := &fakeSalaryService{
			getByIDFn: func(ctx context.Context, id string) (salary.SalaryResponse, error) {
				return salary.SalaryResponse{}, salaryerrors.ErrInvalidSalaryID
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodGet, "/api/salary/details/bogus", nil)
		c.Params = gin.Params{{Key: "id", Value: "bogus"}}
		h.GetById(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, apperror.CodeInvalidInput, errObj["code"])
	})

	t.Run("absent id maps to 404", func(t *testing.T) {
		svc := &fakeSalaryService{
			getByIDFn: func(ctx context.Context, id string) (salary.SalaryResponse, error) {
				return salary.SalaryResponse{}, salaryerrors.ErrSalaryNotFound
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodGet, "/api/salary/details/gone", nil)
		c.Params = gin.Params{{Key: "id", Value: "gone"}}
		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, apperror.CodeNotFound, errObj["code"])
	})
}

func TestSalaryHandler_Update(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeSalaryService{
			updateFn: func(ctx context.Context, id string, req salary.UpdateSalaryRequest) (salary.SalaryResponse, error) {
				assert.Equal(t, "some-id", id)
				return salary.SalaryResponse{ID: id, NetPay: 2200}, nil
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodPut, "/api/salary/edit/some-id", gin.H{
			"employeeId":       "E1",
			"employeeName":     "Ann",
			"salaryAmount":     2000,
			"paymentFrequency": "Monthly",
			"paymentDate":      "2024-04-01",
			"bonuses":          300,
			"deductions":       100,
			"status":           "Unpaid",
		})
		c.Params = gin.Params{{Key: "id", Value: "some-id"}}
		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		assert.Equal(t, 2200.0, data["netPay"])
	})

	t.Run("missing status", func(t *testing.T) {
		svc := &fakeSalaryService{}

		w, c, h := setupHandlerTest(t, svc, http.MethodPut, "/api/salary/edit/some-id", gin.H{
			"employeeId":       "E1",
			"employeeName":     "Ann",
			"salaryAmount":     2000,
			"paymentFrequency": "Monthly",
			"paymentDate":      "2024-04-01",
		})
		c.Params = gin.Params{{Key: "id", Value: "some-id"}}
		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSalaryHandler_Delete(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeSalaryService{
			deleteFn: func(ctx context.Context, id string) error {
				return nil
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodDelete, "/api/salary/delete/some-id", nil)
		c.Params = gin.Params{{Key: "id", Value: "some-id"}}
		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Salary record deleted successfully", body["message"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeSalaryService{
			deleteFn: func(ctx context.Context, id string) error {
				return salaryerrors.ErrSalaryNotFound
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodDelete, "/api/salary/delete/gone", nil)
		c.Params = gin.Params{{Key: "id", Value: "gone"}}
		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSalaryHandler_Dashboard(t *testing.T) {
	svc := &fakeSalaryService{
		dashboardFn: func(ctx context.Context) (salary.DashboardResponse, error) {
			return salary.DashboardResponse{
				TotalPayroll:    1550,
				PendingPayments: 1,
				SalaryTrend: []salary.TrendPoint{
					{Year: 2024, Month: 2, Total: 500},
					{Year: 2024, Month: 3, Total: 1050},
				},
			}, nil
		},
	}

	w, c, h := setupHandlerTest(t, svc, http.MethodGet, "/api/salary/dashboard", nil)
	h.Dashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 1550.0, body["totalPayroll"])
	assert.Equal(t, 1.0, body["pendingPayments"])
	trend := body["salaryTrend"].([]any)
	assert.Len(t, trend, 2)
	first := trend[0].(map[string]any)
	assert.Equal(t, 2.0, first["month"])
}

func TestSalaryHandler_ProcessPayments(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeSalaryService{
			processPaymentsFn: func(ctx context.Context, req salary.ProcessPaymentsRequest) (int64, error) {
				assert.Len(t, req.IDs, 2)
				return 2, nil
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodPost, "/api/salary/process", gin.H{
			"ids": []string{
				"11111111-1111-1111-1111-111111111111",
				"22222222-2222-2222-2222-222222222222",
			},
		})
		h.ProcessPayments(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Payments processed successfully", body["message"])
		assert.Equal(t, 2.0, body["modifiedCount"])
	})

	t.Run("empty selection maps to 400", func(t *testing.T) {
		svc := &fakeSalaryService{
			processPaymentsFn: func(ctx context.Context, req salary.ProcessPaymentsRequest) (int64, error) {
				return 0, salaryerrors.ErrEmptySelection
			},
		}

		w, c, h := setupHandlerTest(t, svc, http.MethodPost, "/api/salary/process", gin.H{
			"ids": []string{},
		})
		h.ProcessPayments(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, apperror.CodeInvalidInput, errObj["code"])
	})
}
