package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/wagedesk/payroll-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	payrollHandler PayrollHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wagedesk-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Company-ID"},
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
		// Every route is company-scoped
		r.Use(middleware.RequireCompany)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Put("/", employeeHandler.Update)
				r.Delete("/", employeeHandler.Delete)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/import", attendanceHandler.Import)
			r.Get("/", attendanceHandler.ListByPeriod)
			r.Delete("/{id}", attendanceHandler.Delete)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", payrollHandler.GetSettings)
				r.Put("/", payrollHandler.UpdateSettings)
			})

			r.Route("/records", func(r chi.Router) {
				r.Get("/", payrollHandler.ListPayrollRecords)
				r.Post("/generate", payrollHandler.GeneratePayroll)
				r.Post("/mark-paid", payrollHandler.MarkPaid)
				r.Post("/mark-unpaid", payrollHandler.MarkUnpaid)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetPayrollRecord)
					r.Delete("/", payrollHandler.DeletePayrollRecord)
				})
			})

			r.Get("/summary", payrollHandler.GetPayrollSummary)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", dashboardHandler.GetOverview)
			r.Get("/comparison", dashboardHandler.GetComparison)
		})
	})

	return r
}
