package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gestao-associado-svc/internal/apperrors"
	"gestao-associado-svc/pkg/utils"
)

// handleServiceError maps domain errors to HTTP responses. Validation maps
// to 400, uniqueness and in-use conflicts to 409, the payment amount
// mismatch to 422 with the expected amount in the payload, lookups to 404
// and anything else to 500.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		utils.BadRequestResponse(c, validationErr.Message, nil)
		return
	}

	var mismatchErr *apperrors.PaymentAmountMismatchError
	if errors.As(err, &mismatchErr) {
		c.JSON(http.StatusUnprocessableEntity, utils.APIResponse{
			Success: false,
			Message: mismatchErr.Error(),
			Data: gin.H{
				"expected_amount": mismatchErr.Expected,
			},
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrDuplicateDue),
		errors.Is(err, apperrors.ErrDuplicateNationalID),
		errors.Is(err, apperrors.ErrDuplicateUsername),
		errors.Is(err, apperrors.ErrDueInUse):
		utils.ConflictResponse(c, err.Error(), nil)
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrMemberNotFound),
		errors.Is(err, apperrors.ErrDueNotFound),
		errors.Is(err, apperrors.ErrPaymentNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, err.Error())
	default:
		utils.InternalServerErrorResponse(c, "Internal server error", err)
	}
}

// parseDate parses an optional YYYY-MM-DD date string
func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
