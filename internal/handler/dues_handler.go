package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gestao-associado-svc/internal/service"
	"gestao-associado-svc/pkg/logger"
	"gestao-associado-svc/pkg/money"
	"gestao-associado-svc/pkg/utils"
)

// IssueDueRequest represents the due issuance request body
type IssueDueRequest struct {
	MemberID uint        `json:"member_id" binding:"required"`
	Amount   money.Money `json:"amount"`
	DueDate  string      `json:"due_date" binding:"required"`
}

// UpdateDueRequest represents the due edit request body
type UpdateDueRequest struct {
	Amount  money.Money `json:"amount"`
	DueDate string      `json:"due_date" binding:"required"`
}

// UpdateDueStatusRequest represents the due status change request body
type UpdateDueStatusRequest struct {
	StatusID int `json:"status_id" binding:"required,min=1,max=3"`
}

// RecordPaymentRequest represents the payment recording request body. The
// receipt is an optional base64 blob; when absent a previously stored
// receipt is preserved.
type RecordPaymentRequest struct {
	PaymentDate string      `json:"payment_date" binding:"required"`
	Amount      money.Money `json:"amount"`
	StatusID    int         `json:"status_id" binding:"required,min=1,max=2"`
	Receipt     string      `json:"receipt,omitempty"`
}

// DuesHandler handles dues and payment HTTP requests
type DuesHandler struct {
	ledgerService service.LedgerService
	reportService service.ReportService
	logger        *logger.Logger
}

// NewDuesHandler creates a new DuesHandler instance
func NewDuesHandler(ledgerService service.LedgerService, reportService service.ReportService, logger *logger.Logger) *DuesHandler {
	return &DuesHandler{
		ledgerService: ledgerService,
		reportService: reportService,
		logger:        logger,
	}
}

// IssueDue creates a due with its companion unpaid payment
// @Summary Issue due
// @Description Issue a due to an enabled contributing member; one due per member per calendar month
// @Tags dues
// @Accept json
// @Produce json
// @Param request body IssueDueRequest true "Due data"
// @Success 201 {object} utils.APIResponse "Due issued"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Member already has a due in this month"
// @Security BearerAuth
// @Router /api/v1/dues [post]
func (h *DuesHandler) IssueDue(c *gin.Context) {
	var req IssueDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	dueDate, err := parseDate(&req.DueDate)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid due_date", err)
		return
	}

	dueID, err := h.ledgerService.IssueDue(req.MemberID, req.Amount, *dueDate)
	if err != nil {
		h.logger.WithError(err).WithField("member_id", req.MemberID).Error("Failed to issue due")
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Due issued successfully", gin.H{"due_id": dueID})
}

// ListDues lists dues with member and payment information
// @Summary List dues
// @Description List dues joined with member name, status labels and payment fields, newest due date first
// @Tags dues
// @Produce json
// @Param member_id query int false "Filter by member ID"
// @Success 200 {object} utils.APIResponse{data=[]response.DueRow} "Dues retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/dues [get]
func (h *DuesHandler) ListDues(c *gin.Context) {
	var memberID *uint
	if raw := c.Query("member_id"); raw != "" {
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid member_id", err)
			return
		}
		id := uint(value)
		memberID = &id
	}

	dues, err := h.ledgerService.ListDues(memberID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list dues")
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Dues retrieved successfully", dues)
}

// UpdateDue edits the amount and due date of a due
// @Summary Update due
// @Tags dues
// @Accept json
// @Produce json
// @Param id path int true "Due ID"
// @Param request body UpdateDueRequest true "New amount and due date"
// @Success 200 {object} utils.APIResponse "Due updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Due not found"
// @Security BearerAuth
// @Router /api/v1/dues/{id} [put]
func (h *DuesHandler) UpdateDue(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid due ID", err)
		return
	}

	var req UpdateDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	dueDate, err := parseDate(&req.DueDate)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid due_date", err)
		return
	}

	if err := h.ledgerService.UpdateDueFields(id, req.Amount, *dueDate); err != nil {
		h.logger.WithError(err).WithField("due_id", id).Error("Failed to update due")
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Due updated successfully", nil)
}

// UpdateDueStatus sets the administrative status of a due
// @Summary Update due status
// @Description Set the due status; it is administrative metadata, not derived from the payment
// @Tags dues
// @Accept json
// @Produce json
// @Param id path int true "Due ID"
// @Param request body UpdateDueStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse "Status updated"
// @Failure 404 {object} utils.APIResponse "Due not found"
// @Security BearerAuth
// @Router /api/v1/dues/{id}/status [patch]
func (h *DuesHandler) UpdateDueStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid due ID", err)
		return
	}

	var req UpdateDueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.ledgerService.UpdateDueStatus(id, req.StatusID); err != nil {
		h.logger.WithError(err).WithField("due_id", id).Error("Failed to update due status")
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Due status updated successfully", nil)
}

// DeleteDue deletes a due
// @Summary Delete due
// @Description Delete a due and its unpaid companion payment; blocked once a payment has been recorded
// @Tags dues
// @Produce json
// @Param id path int true "Due ID"
// @Success 200 {object} utils.APIResponse "Due deleted"
// @Failure 404 {object} utils.APIResponse "Due not found"
// @Failure 409 {object} utils.APIResponse "Due has a linked payment"
// @Security BearerAuth
// @Router /api/v1/dues/{id} [delete]
func (h *DuesHandler) DeleteDue(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid due ID", err)
		return
	}

	if err := h.ledgerService.DeleteDue(id); err != nil {
		h.logger.WithError(err).WithField("due_id", id).Error("Failed to delete due")
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Due deleted successfully", nil)
}

// RecordPayment attaches or updates the payment of a due
// @Summary Record payment
// @Description Record a payment against a due; the amount must equal the due amount
// @Tags dues
// @Accept json
// @Produce json
// @Param id path int true "Due ID"
// @Param request body RecordPaymentRequest true "Payment data"
// @Success 200 {object} utils.APIResponse "Payment recorded"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Due not found"
// @Failure 422 {object} utils.APIResponse "Payment amount does not match the due amount"
// @Security BearerAuth
// @Router /api/v1/dues/{id}/payment [post]
func (h *DuesHandler) RecordPayment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid due ID", err)
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	paymentDate, err := parseDate(&req.PaymentDate)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment_date", err)
		return
	}

	receipt, err := decodeBlob(req.Receipt)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid receipt", err)
		return
	}

	input := service.RecordPaymentInput{
		DueID:       id,
		PaymentDate: paymentDate,
		Amount:      req.Amount,
		StatusID:    req.StatusID,
		Receipt:     receipt,
	}
	if err := h.ledgerService.RecordPayment(input); err != nil {
		h.logger.WithError(err).WithField("due_id", id).Error("Failed to record payment")
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Payment recorded successfully", nil)
}

// GetReceipt serves the receipt blob of a payment
// @Summary Get payment receipt
// @Tags dues
// @Produce octet-stream
// @Param id path int true "Payment ID"
// @Success 200 {file} binary "Receipt"
// @Failure 404 {object} utils.APIResponse "Payment or receipt not found"
// @Security BearerAuth
// @Router /api/v1/payments/{id}/receipt [get]
func (h *DuesHandler) GetReceipt(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment ID", err)
		return
	}

	receipt, err := h.ledgerService.GetReceipt(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", receipt)
}

// ExportDues downloads the dues listing as an Excel file
// @Summary Export dues
// @Description Export the dues listing to an .xlsx file, optionally filtered by member
// @Tags dues
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param member_id query int false "Filter by member ID"
// @Success 200 {file} binary "Excel file"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/dues/export [get]
func (h *DuesHandler) ExportDues(c *gin.Context) {
	var memberID *uint
	if raw := c.Query("member_id"); raw != "" {
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid member_id", err)
			return
		}
		id := uint(value)
		memberID = &id
	}

	content, filename, err := h.reportService.ExportDuesToExcel(memberID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to export dues")
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
