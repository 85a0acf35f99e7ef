package main

import (
	"fmt"
	"net/http"

	"github.com/campus-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/campus-hr/payroll-backend-go/internal/handler/http"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/database"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/campus-hr/payroll-backend-go/internal/pkg/oauth"
	"github.com/campus-hr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/campus-hr/payroll-backend-go/internal/service/attendance"
	authService "github.com/campus-hr/payroll-backend-go/internal/service/auth"
	deductionService "github.com/campus-hr/payroll-backend-go/internal/service/deduction"
	employeeService "github.com/campus-hr/payroll-backend-go/internal/service/employee"
	"github.com/campus-hr/payroll-backend-go/internal/service/master"
	payrollService "github.com/campus-hr/payroll-backend-go/internal/service/payroll"
	salaryGradeService "github.com/campus-hr/payroll-backend-go/internal/service/salarygrade"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	gradeRepo := postgresql.NewSalaryGradeRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)

	workdayPolicy := payrollService.WorkdayPolicy{DivisorDays: cfg.Payroll.MonthlyDivisorDays}

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, positionRepo)
	masterSvc := master.NewMasterService(departmentRepo, positionRepo)
	salaryGradeSvc := salaryGradeService.NewSalaryGradeService(gradeRepo)
	deductionSvc := deductionService.NewDeductionService(deductionRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, workdayPolicy)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		employeeRepo,
		gradeRepo,
		deductionRepo,
		attendanceRepo,
		workdayPolicy,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService, googleService, cfg.App.FrontendURL, cfg.GoogleLoginEnabled())
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	salaryGradeHandler := appHTTP.NewSalaryGradeHandler(salaryGradeSvc)
	deductionHandler := appHTTP.NewDeductionHandler(deductionSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		jwtService,
		authHandler,
		employeeHandler,
		masterHandler,
		attendanceHandler,
		salaryGradeHandler,
		deductionHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
