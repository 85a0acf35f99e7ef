package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campus-hr/payroll-backend-go/internal/domain/deduction"
	"github.com/campus-hr/payroll-backend-go/internal/domain/user"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeductionService struct {
	brackets []deduction.BracketResponse
}

func (f *fakeDeductionService) CreateRate(ctx context.Context, req deduction.CreateRateRequest) (deduction.RateResponse, error) {
	return deduction.RateResponse{}, nil
}

func (f *fakeDeductionService) GetRate(ctx context.Context, id string) (deduction.RateResponse, error) {
	return deduction.RateResponse{}, nil
}

func (f *fakeDeductionService) ListRates(ctx context.Context, activeOnly bool) ([]deduction.RateResponse, error) {
	return nil, nil
}

func (f *fakeDeductionService) UpdateRate(ctx context.Context, req deduction.UpdateRateRequest) (deduction.RateResponse, error) {
	return deduction.RateResponse{}, nil
}

func (f *fakeDeductionService) DeleteRate(ctx context.Context, id string) error {
	return nil
}

func (f *fakeDeductionService) CreateBracket(ctx context.Context, req deduction.CreateBracketRequest) (deduction.BracketResponse, error) {
	created := deduction.BracketResponse{
		ID:             "b-new",
		IncomeFrom:     req.IncomeFrom,
		IncomeTo:       req.IncomeTo,
		BaseTax:        req.BaseTax,
		RatePercentage: req.RatePercentage,
		ExcessOver:     req.ExcessOver,
		IsActive:       true,
	}
	f.brackets = append(f.brackets, created)
	return created, nil
}

func (f *fakeDeductionService) GetBracket(ctx context.Context, id string) (deduction.BracketResponse, error) {
	return deduction.BracketResponse{}, deduction.ErrBracketNotFound
}

func (f *fakeDeductionService) ListBrackets(ctx context.Context, activeOnly bool) ([]deduction.BracketResponse, error) {
	return f.brackets, nil
}

func (f *fakeDeductionService) UpdateBracket(ctx context.Context, req deduction.UpdateBracketRequest) (deduction.BracketResponse, error) {
	return deduction.BracketResponse{}, nil
}

func (f *fakeDeductionService) DeleteBracket(ctx context.Context, id string) error {
	return nil
}

type routerTestEnv struct {
	router       *chi.Mux
	jwtService   jwt.Service
	deductionSvc *fakeDeductionService
}

func newTestRouter(t *testing.T) *routerTestEnv {
	t.Helper()

	jwtSvc := jwt.NewJWTService("test-secret-key", "1h")
	deductionSvc := &fakeDeductionService{
		brackets: []deduction.BracketResponse{{
			ID:         "b1",
			IncomeFrom: decimal.Zero,
			IncomeTo:   decimal.NewFromInt(20833),
			IsActive:   true,
		}},
	}

	router := NewRouter(
		RouterConfig{FrontendURL: "http://localhost:3000", Env: "test"},
		jwtSvc,
		NewAuthHandler(&fakeAuthService{}, jwtSvc, nil, "http://localhost:3000", false),
		NewEmployeeHandler(nil),
		NewMasterHandler(nil),
		NewAttendanceHandler(nil),
		NewSalaryGradeHandler(nil),
		NewDeductionHandler(deductionSvc),
		NewPayrollHandler(nil),
	)
	return &routerTestEnv{router: router, jwtService: jwtSvc, deductionSvc: deductionSvc}
}

func (e *routerTestEnv) bearerFor(t *testing.T, role user.Role) string {
	t.Helper()
	token, _, err := e.jwtService.GenerateSessionToken("u1", "user@campus.edu", nil, role)
	require.NoError(t, err)
	return "Bearer " + token
}

// Every route registers during construction; a duplicate mount panics here.
func TestNewRouterConstructs(t *testing.T) {
	require.NotPanics(t, func() {
		newTestRouter(t)
	})
}

func TestProtectedRouteRequiresSession(t *testing.T) {
	env := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTaxBracketRoutes(t *testing.T) {
	env := newTestRouter(t)

	t.Run("list readable by any session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/deductions/tax-brackets", nil)
		req.Header.Set("Authorization", env.bearerFor(t, user.RoleStaff))
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"b1"`)
	})

	t.Run("create forbidden for staff", func(t *testing.T) {
		body := []byte(`{"income_from":0,"income_to":20833,"base_tax":0,"rate_percentage":0,"excess_over":0}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/deductions/tax-brackets", bytes.NewReader(body))
		req.Header.Set("Authorization", env.bearerFor(t, user.RoleStaff))
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("create allowed for admin", func(t *testing.T) {
		body := []byte(`{"income_from":0,"income_to":20833,"base_tax":0,"rate_percentage":0,"excess_over":0}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/deductions/tax-brackets", bytes.NewReader(body))
		req.Header.Set("Authorization", env.bearerFor(t, user.RoleAdmin))
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"b-new"`)
	})

	t.Run("rate endpoints still routed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/deductions", nil)
		req.Header.Set("Authorization", env.bearerFor(t, user.RoleStaff))
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
