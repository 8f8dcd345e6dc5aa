package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownResourceType is returned when a preprocessor or extractor is
	// requested for a resource type with no registration
	ErrUnknownResourceType = errors.New("unknown resource type")

	// ErrReindexInProgress is returned when a reindex is requested for an
	// entity type whose previous run has not reached a terminal state
	ErrReindexInProgress = errors.New("reindex already in progress")

	// ErrRangeNotFound is returned when a range completion callback refers to
	// an unknown range id
	ErrRangeNotFound = errors.New("range not found")
)

// IntegrationError is raised when a remote call keeps failing after the
// bounded retry budget is exhausted. The last attempt's error is wrapped.
type IntegrationError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%s failed after %d attempts: %v", e.Op, e.Attempts, e.Err)
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}

// NewIntegrationError wraps the last error of an exhausted retry loop
func NewIntegrationError(op string, attempts int, err error) *IntegrationError {
	return &IntegrationError{Op: op, Attempts: attempts, Err: err}
}

// TenantNotInitializedError marks a storage failure caused by a tenant whose
// staging tables have not been provisioned yet. The consumer treats it as
// retriable (the whole batch is redelivered later) rather than fatal.
type TenantNotInitializedError struct {
	Tenant string
	Err    error
}

func (e *TenantNotInitializedError) Error() string {
	return fmt.Sprintf("tenant %q is not initialized: %v", e.Tenant, e.Err)
}

func (e *TenantNotInitializedError) Unwrap() error {
	return e.Err
}

// IsTenantNotInitialized recognizes the storage error pattern produced when a
// tenant's tables or schema do not exist yet
func IsTenantNotInitialized(err error) bool {
	if err == nil {
		return false
	}
	var tne *TenantNotInitializedError
	if errors.As(err, &tne) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "does not exist") &&
		(strings.Contains(msg, "relation") || strings.Contains(msg, "schema"))
}
