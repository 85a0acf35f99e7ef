package http

import (
	"log/slog"
	"os"

	"github.com/campus-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	attendanceHandler AttendanceHandler,
	salaryGradeHandler SalaryGradeHandler,
	deductionHandler DeductionHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "campus-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verify(jwtService.JWTAuth(), jwtauth.TokenFromHeader, middleware.TokenFromSessionCookie))
				r.Use(middleware.AuthRequired(jwtService))

				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(jwtService.JWTAuth(), jwtauth.TokenFromHeader, middleware.TokenFromSessionCookie))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", masterHandler.ListDepartments)
				r.Get("/{id}", masterHandler.GetDepartment)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateDepartment)
					r.Put("/{id}", masterHandler.UpdateDepartment)
					r.Delete("/{id}", masterHandler.DeleteDepartment)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.Get("/", masterHandler.ListPositions)
				r.Get("/{id}", masterHandler.GetPosition)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreatePosition)
					r.Put("/{id}", masterHandler.UpdatePosition)
					r.Delete("/{id}", masterHandler.DeletePosition)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/", attendanceHandler.List)
				r.Get("/summary", attendanceHandler.Summary)
			})

			r.Route("/deductions", func(r chi.Router) {
				r.Route("/tax-brackets", func(r chi.Router) {
					r.Get("/", deductionHandler.ListBrackets)
					r.Get("/{id}", deductionHandler.GetBracket)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", deductionHandler.CreateBracket)
						r.Put("/{id}", deductionHandler.UpdateBracket)
						r.Delete("/{id}", deductionHandler.DeleteBracket)
					})
				})

				r.Get("/", deductionHandler.ListRates)
				r.Get("/{id}", deductionHandler.GetRate)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", deductionHandler.CreateRate)
					r.Put("/{id}", deductionHandler.UpdateRate)
					r.Delete("/{id}", deductionHandler.DeleteRate)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/salary-grades", func(r chi.Router) {
					r.Get("/", salaryGradeHandler.List)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", salaryGradeHandler.Create)
						r.Put("/{id}", salaryGradeHandler.Update)
						r.Delete("/{id}", salaryGradeHandler.Delete)
					})
				})

				r.Route("/records", func(r chi.Router) {
					r.Get("/", payrollHandler.ListRecords)
					r.Get("/{id}", payrollHandler.GetRecord)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Patch("/{id}/status", payrollHandler.UpdateRecordStatus)
						r.Delete("/{id}", payrollHandler.DeleteRecord)
					})
				})

				r.Route("/periods", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPeriods)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", payrollHandler.CreatePeriod)
						r.Put("/{id}", payrollHandler.UpdatePeriod)
						r.Patch("/{id}/status", payrollHandler.UpdatePeriodStatus)
						r.Delete("/{id}", payrollHandler.DeletePeriod)
					})
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/generate", payrollHandler.Generate)
				})
			})
		})
	})
	return r
}
