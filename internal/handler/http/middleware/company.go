package middleware

import (
	"net/http"

	"github.com/wagedesk/payroll-backend-go/internal/handler/http/response"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/tenant"
)

// RequireCompany scopes every request to the company named by the
// X-Company-ID header. Requests without one never reach a handler.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := r.Header.Get("X-Company-ID")
		if companyID == "" {
			response.HandleError(w, tenant.ErrCompanyIDRequired)
			return
		}

		ctx := tenant.WithCompanyID(r.Context(), companyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
