package tenant

import (
	"context"
	"errors"
)

var ErrCompanyIDRequired = errors.New("company id is required")

type contextKey string

const companyIDKey contextKey = "company_id"

// WithCompanyID returns a context carrying the company scope for the request.
func WithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, companyIDKey, companyID)
}

// FromContext extracts the company scope set by the tenant middleware.
func FromContext(ctx context.Context) (string, error) {
	companyID, ok := ctx.Value(companyIDKey).(string)
	if !ok || companyID == "" {
		return "", ErrCompanyIDRequired
	}
	return companyID, nil
}
