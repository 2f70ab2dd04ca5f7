package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Pavan812100/jml-hybrid/internal/employee"
	employeeerrors "github.com/Pavan812100/jml-hybrid/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	GetAllFn  func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{EmployeeID: "E1", GivenName: "Ada", Status: "active"},
				{EmployeeID: "E2", GivenName: "Grace", Status: "inactive"},
			}, nil
		},
	}

	r := setupRouter()
	r.GET("/employees", employee.NewHandler(svc).GetAll)

	t.Run("returns all records", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
		assert.Contains(t, w.Body.String(), `"employee_id":"E1"`)
		assert.Contains(t, w.Body.String(), `"employee_id":"E2"`)
		assert.Contains(t, w.Body.String(), `"total":2`)
	})

	t.Run("q filter narrows the result", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/employees?q=ada", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_id":"E1"`)
		assert.NotContains(t, w.Body.String(), `"employee_id":"E2"`)
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				assert.Equal(t, "E1", id)
				return employee.EmployeeResponse{EmployeeID: "E1", Status: "active"}, nil
			},
		}

		r := setupRouter()
		r.GET("/employees/:id", employee.NewHandler(svc).GetById)

		req := httptest.NewRequest(http.MethodGet, "/employees/E1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_id":"E1"`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		r := setupRouter()
		r.GET("/employees/:id", employee.NewHandler(svc).GetById)

		req := httptest.NewRequest(http.MethodGet, "/employees/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	svc := &fakeEmployeeService{
		DeleteFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "E1", id)
			return nil
		},
	}

	r := setupRouter()
	r.DELETE("/employees/:id", employee.NewHandler(svc).Delete)

	req := httptest.NewRequest(http.MethodDelete, "/employees/E1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}
