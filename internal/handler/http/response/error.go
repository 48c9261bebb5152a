package response

import (
	"errors"
	"net/http"

	"github.com/opl-logistica/backoffice-go/internal/domain/auth"
	"github.com/opl-logistica/backoffice-go/internal/domain/contractor"
	"github.com/opl-logistica/backoffice-go/internal/domain/parameter"
	"github.com/opl-logistica/backoffice-go/internal/domain/payroll"
	"github.com/opl-logistica/backoffice-go/internal/domain/settlement"
	"github.com/opl-logistica/backoffice-go/internal/domain/user"
	"github.com/opl-logistica/backoffice-go/internal/domain/worker"
	"github.com/opl-logistica/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		Conflict(w, "Cannot deactivate your own account")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerNameExists):
		Conflict(w, "Worker name already registered")
	case errors.Is(err, worker.ErrWorkerInactive):
		Conflict(w, "Worker is inactive")

	// Parameter domain errors
	case errors.Is(err, parameter.ErrPensionFundNotFound):
		NotFound(w, "Pension fund not found")
	case errors.Is(err, parameter.ErrHealthInsurerNotFound):
		NotFound(w, "Health insurer not found")
	case errors.Is(err, parameter.ErrUnknownEntityKind):
		BadRequest(w, "Unknown entity kind", nil)

	// Settlement domain errors
	case errors.Is(err, settlement.ErrSettlementNotFound):
		NotFound(w, "Shift settlement not found")
	case errors.Is(err, settlement.ErrSettlementExists):
		Conflict(w, "Shift settlement already exists for this worker and date")
	case errors.Is(err, settlement.ErrSettlementClosed):
		Conflict(w, "Shift settlement is closed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid period, expected YYYY-MM", nil)
	case errors.Is(err, payroll.ErrWorkerNotPayroll):
		BadRequest(w, "Worker is not on the salaried payroll", nil)

	// Contractor domain errors
	case errors.Is(err, contractor.ErrPaymentNotFound):
		NotFound(w, "Contractor payment not found")
	case errors.Is(err, contractor.ErrWorkerNotContractor):
		BadRequest(w, "Worker is not a contractor", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
