package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gestao-associado-svc/internal/service"
	"gestao-associado-svc/pkg/logger"
	"gestao-associado-svc/pkg/utils"
)

// MemberRequest represents the member fields accepted on create and update.
// Dates use the YYYY-MM-DD format; the photo is an opaque base64 blob.
type MemberRequest struct {
	NationalID        string  `json:"national_id" binding:"required"`
	FullName          string  `json:"full_name" binding:"required"`
	BirthDate         *string `json:"birth_date"`
	Email             string  `json:"email" binding:"omitempty,email"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	WorkSituation     string  `json:"work_situation"`
	BloodType         string  `json:"blood_type"`
	ChildrenCount     int     `json:"children_count" binding:"omitempty,min=0"`
	IdentityDocument  string  `json:"identity_document" binding:"required"`
	Photo             string  `json:"photo,omitempty"`
	EnrollmentDate    *string `json:"enrollment_date"`
	TerminationDate   *string `json:"termination_date"`
	TerminationReason *string `json:"termination_reason"`
	Status            int     `json:"status" binding:"omitempty,min=1,max=2"`
	Category          int     `json:"category" binding:"omitempty,min=1,max=3"`
	BillingCycle      int     `json:"billing_cycle" binding:"omitempty,min=1,max=2"`
}

// toInput converts the request into the service input, parsing dates and
// decoding the photo blob
func (r *MemberRequest) toInput() (*service.MemberInput, error) {
	birthDate, err := parseDate(r.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth_date: %w", err)
	}
	enrollmentDate, err := parseDate(r.EnrollmentDate)
	if err != nil {
		return nil, fmt.Errorf("invalid enrollment_date: %w", err)
	}
	terminationDate, err := parseDate(r.TerminationDate)
	if err != nil {
		return nil, fmt.Errorf("invalid termination_date: %w", err)
	}
	photo, err := decodeBlob(r.Photo)
	if err != nil {
		return nil, fmt.Errorf("invalid photo: %w", err)
	}

	return &service.MemberInput{
		NationalID:        r.NationalID,
		FullName:          r.FullName,
		BirthDate:         birthDate,
		Email:             r.Email,
		Phone:             r.Phone,
		Address:           r.Address,
		City:              r.City,
		State:             r.State,
		WorkSituation:     r.WorkSituation,
		BloodType:         r.BloodType,
		ChildrenCount:     r.ChildrenCount,
		IdentityDocument:  r.IdentityDocument,
		Photo:             photo,
		EnrollmentDate:    enrollmentDate,
		TerminationDate:   terminationDate,
		TerminationReason: r.TerminationReason,
		Status:            r.Status,
		Category:          r.Category,
		BillingCycle:      r.BillingCycle,
	}, nil
}

// CreateMemberRequest represents the admin member-creation request body
type CreateMemberRequest struct {
	MemberRequest
	Password string `json:"password" binding:"required,min=4"`
}

// MemberHandler handles member-related HTTP requests
type MemberHandler struct {
	memberService service.MemberService
	authService   service.AuthService
	logger        *logger.Logger
}

// NewMemberHandler creates a new MemberHandler instance
func NewMemberHandler(memberService service.MemberService, authService service.AuthService, logger *logger.Logger) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		authService:   authService,
		logger:        logger,
	}
}

// ListMembers lists all members
// @Summary List members
// @Description List all members joined with their login usernames, ordered by name
// @Tags members
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response.MemberRow} "Members retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberService.List()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list members")
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Members retrieved successfully", members)
}

// ListEligible lists members that may receive new dues
// @Summary List members eligible for billing
// @Description List enabled contributing members
// @Tags members
// @Produce json
// @Success 200 {object} utils.APIResponse "Eligible members retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/members/eligible [get]
func (h *MemberHandler) ListEligible(c *gin.Context) {
	members, err := h.memberService.ListEligibleForBilling()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list eligible members")
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Eligible members retrieved successfully", members)
}

// GetMember retrieves one member by id
// @Summary Get member
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} utils.APIResponse "Member retrieved"
// @Failure 404 {object} utils.APIResponse "Member not found"
// @Security BearerAuth
// @Router /api/v1/members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid member ID", err)
		return
	}

	member, err := h.memberService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Member retrieved successfully", member)
}

// CreateMember registers a member on behalf of an administrator
// @Summary Create member
// @Description Create a member record with its login credential
// @Tags members
// @Accept json
// @Produce json
// @Param request body CreateMemberRequest true "Member data and initial password"
// @Success 201 {object} utils.APIResponse "Member created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "National id already registered"
// @Security BearerAuth
// @Router /api/v1/members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	input, err := req.MemberRequest.toInput()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid member data", err)
		return
	}

	member, err := h.authService.Register(*input, req.Password)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create member")
		handleServiceError(c, err)
		return
	}

	h.logger.WithField("member_id", member.ID).Info("Member created by administrator")
	utils.CreatedResponse(c, "Member created successfully", member)
}

// UpdateMember overwrites all member fields
// @Summary Update member
// @Description Full overwrite of a member; the login username follows the national id digits
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param request body MemberRequest true "Member data"
// @Success 200 {object} utils.APIResponse "Member updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Member not found"
// @Failure 409 {object} utils.APIResponse "National id already registered"
// @Security BearerAuth
// @Router /api/v1/members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid member ID", err)
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid member data", err)
		return
	}

	if err := h.memberService.UpdateAll(id, *input); err != nil {
		h.logger.WithError(err).WithField("member_id", id).Error("Failed to update member")
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Member updated successfully", nil)
}

// GetMemberPhoto serves the member's photo blob
// @Summary Get member photo
// @Tags members
// @Produce octet-stream
// @Param id path int true "Member ID"
// @Success 200 {file} binary "Photo"
// @Failure 404 {object} utils.APIResponse "Member not found"
// @Security BearerAuth
// @Router /api/v1/members/{id}/photo [get]
func (h *MemberHandler) GetMemberPhoto(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid member ID", err)
		return
	}

	photo, err := h.memberService.GetPhoto(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if len(photo) == 0 {
		utils.NotFoundResponse(c, "Member has no photo")
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", photo)
}

// parseIDParam parses an unsigned integer path parameter
func parseIDParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
