package authz

import "errors"

var (
	// ErrNotFound: the referenced project (or resource) does not exist.
	// Callers translate this to HTTP 404.
	ErrNotFound = errors.New("resource not found")

	// ErrDenied: the principal is authenticated but lacks the required role.
	// Callers translate this to HTTP 403. Denied is an expected outcome of
	// authorization, not a failure.
	ErrDenied = errors.New("insufficient permissions")
)

// InfrastructureError wraps a store lookup that failed for reasons other than
// a missing row. It is never retried at this layer and maps to HTTP 500.
type InfrastructureError struct {
	Err error
}

func (e *InfrastructureError) Error() string {
	return "store lookup failed: " + e.Err.Error()
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// IsInfrastructure reports whether err is (or wraps) an InfrastructureError.
func IsInfrastructure(err error) bool {
	var infra *InfrastructureError
	return errors.As(err, &infra)
}
