package errs

import "errors"

// Domain-specific sentinel errors shared by usecase layers
var (
	// Catalog errors
	ErrOfferingNotFound       = errors.New("offering not found")
	ErrOfferingAlreadyDeleted = errors.New("offering already deleted")
	ErrSpecificationNotFound  = errors.New("specification not found")

	// Order errors
	ErrOrderNotFound    = errors.New("order not found")
	ErrDraftNotFound    = errors.New("draft order not found")
	ErrOrderLineMissing = errors.New("order line not found")
	ErrDuplicateLine    = errors.New("offering already added to order")
	ErrOrderNotDraft    = errors.New("order is not in draft status")
	ErrStatusConflict   = errors.New("order already has the requested status")
	ErrInvalidStatus    = errors.New("invalid order status")

	// Authorization errors
	ErrForbidden          = errors.New("operation not permitted for this user")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
