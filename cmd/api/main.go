package main

import (
	"fmt"
	"net/http"

	"github.com/wagedesk/payroll-backend-go/internal/config"
	appHTTP "github.com/wagedesk/payroll-backend-go/internal/handler/http"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
	"github.com/wagedesk/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/wagedesk/payroll-backend-go/internal/service/attendance"
	dashboardService "github.com/wagedesk/payroll-backend-go/internal/service/dashboard"
	employeeService "github.com/wagedesk/payroll-backend-go/internal/service/employee"
	payrollService "github.com/wagedesk/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		payrollHandler,
		employeeHandler,
		attendanceHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
