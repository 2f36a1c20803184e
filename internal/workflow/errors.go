package workflow

import "errors"

// Domain errors returned by workflow transitions. Handlers map these to
// HTTP statuses; nothing here is fatal.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrAgreementNotFound    = errors.New("agreement not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrForbidden = errors.New("operation not permitted for this role")

	ErrPropertyOccupied      = errors.New("property is already occupied")
	ErrPropertyArchived      = errors.New("property is archived")
	ErrTenantAlreadyAssigned = errors.New("tenant is already assigned to a property")
	ErrNoApprovedApplication = errors.New("tenant has no approved application")

	ErrApplicationDecided     = errors.New("application has already been decided")
	ErrApplicationNotEditable = errors.New("application can only be edited while pending")
	ErrInvalidStatus          = errors.New("invalid status value")

	ErrPaymentAlreadySettled = errors.New("payment is already settled")
)
