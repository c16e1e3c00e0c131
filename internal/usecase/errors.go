package usecase

import "errors"

// Error taxonomy for the authorization core. NotFound deliberately covers
// both "row does not exist" and "row exists outside the tenant boundary":
// callers must not be able to tell the two apart.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("resource not found")
	ErrForbidden           = errors.New("team reference outside tenant scope")
	ErrTenantMisconfigured = errors.New("tenant is not configured")
)
