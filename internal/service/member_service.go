package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"gestao-associado-svc/internal/apperrors"
	"gestao-associado-svc/internal/models"
	"gestao-associado-svc/internal/models/response"
	"gestao-associado-svc/internal/repository"
	"gestao-associado-svc/pkg/logger"
	"gestao-associado-svc/pkg/utils"
)

// MemberInput carries the member fields accepted on creation and full
// update. Photo is only written on creation; updates leave the stored photo
// untouched.
type MemberInput struct {
	NationalID        string
	FullName          string
	BirthDate         *time.Time
	Email             string
	Phone             string
	Address           string
	City              string
	State             string
	WorkSituation     string
	BloodType         string
	ChildrenCount     int
	IdentityDocument  string
	Photo             []byte
	EnrollmentDate    *time.Time
	TerminationDate   *time.Time
	TerminationReason *string
	Status            int
	Category          int
	BillingCycle      int
}

// MemberService manages member records and keeps the linked credential's
// username synchronized with the member's national id digits
type MemberService interface {
	Create(in MemberInput, passwordHash string) (*models.Member, error)
	UpdateAll(id uint, in MemberInput) error
	GetByID(id uint) (*models.Member, error)
	GetByNationalID(nationalID string) (*models.Member, error)
	GetByCredentialID(credentialID uint) (*models.Member, error)
	List() ([]*response.MemberRow, error)
	ListEligibleForBilling() ([]*models.Member, error)
	GetPhoto(id uint) ([]byte, error)
}

// memberService implements MemberService
type memberService struct {
	memberRepo repository.MemberRepository
	db         *gorm.DB
	logger     *logger.Logger
}

// NewMemberService creates a new instance of MemberService
func NewMemberService(memberRepo repository.MemberRepository, db *gorm.DB, logger *logger.Logger) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		db:         db,
		logger:     logger,
	}
}

// Create registers a member together with its login credential in a single
// transaction. The username is the national id as bare digits; the password
// hash is received ready, hashing is the caller's concern.
func (s *memberService) Create(in MemberInput, passwordHash string) (*models.Member, error) {
	masked, digits, err := utils.NormalizeCPF(in.NationalID)
	if err != nil {
		return nil, apperrors.NewValidation("%v", err)
	}
	if in.FullName == "" {
		return nil, apperrors.NewValidation("full name is required")
	}
	if in.IdentityDocument == "" {
		return nil, apperrors.NewValidation("identity document is required")
	}
	if err := validateMemberFlags(&in); err != nil {
		return nil, err
	}

	if _, err := s.memberRepo.FindByNationalID(masked); err == nil {
		return nil, apperrors.ErrDuplicateNationalID
	} else if !errors.Is(err, apperrors.ErrMemberNotFound) {
		return nil, err
	}

	member := &models.Member{
		NationalID:        masked,
		Photo:             in.Photo,
		FullName:          in.FullName,
		BirthDate:         in.BirthDate,
		Email:             in.Email,
		Phone:             in.Phone,
		Address:           in.Address,
		City:              in.City,
		State:             in.State,
		WorkSituation:     in.WorkSituation,
		BloodType:         in.BloodType,
		ChildrenCount:     in.ChildrenCount,
		IdentityDocument:  in.IdentityDocument,
		EnrollmentDate:    in.EnrollmentDate,
		TerminationDate:   in.TerminationDate,
		TerminationReason: in.TerminationReason,
		Status:            in.Status,
		Category:          in.Category,
		BillingCycle:      in.BillingCycle,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		credential := &models.Credential{
			Username:     digits,
			DisplayName:  in.FullName,
			PasswordHash: passwordHash,
			Active:       true,
		}
		if err := tx.Create(credential).Error; err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrDuplicateUsername
			}
			return apperrors.NewStore("create credential", err)
		}

		member.CredentialID = credential.ID
		if err := tx.Create(member).Error; err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrDuplicateNationalID
			}
			return apperrors.NewStore("create member", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"member_id":   member.ID,
		"national_id": masked,
	}).Info("Member created")

	return member, nil
}

// UpdateAll overwrites every member field except the photo and keeps the
// linked credential consistent in the same transaction: its username follows
// the national id digits, its display name follows the full name, and its
// active flag follows the member status.
func (s *memberService) UpdateAll(id uint, in MemberInput) error {
	masked, digits, err := utils.NormalizeCPF(in.NationalID)
	if err != nil {
		return apperrors.NewValidation("%v", err)
	}
	if in.FullName == "" {
		return apperrors.NewValidation("full name is required")
	}
	if err := validateMemberFlags(&in); err != nil {
		return err
	}

	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return err
	}

	if other, err := s.memberRepo.FindByNationalID(masked); err == nil {
		if other.ID != id {
			return apperrors.ErrDuplicateNationalID
		}
	} else if !errors.Is(err, apperrors.ErrMemberNotFound) {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"cpf":                 masked,
			"nome_completo":       in.FullName,
			"data_nascimento":     in.BirthDate,
			"email":               in.Email,
			"telefone":            in.Phone,
			"endereco":            in.Address,
			"cidade":              in.City,
			"estado_uf":           in.State,
			"situacao_trabalho":   in.WorkSituation,
			"tipo_sanguineo":      in.BloodType,
			"quantidade_filhos":   in.ChildrenCount,
			"identidade":          in.IdentityDocument,
			"data_inicio":         in.EnrollmentDate,
			"data_desligamento":   in.TerminationDate,
			"motivo_desligamento": in.TerminationReason,
			"situacao_associado":  in.Status,
			"tipo_associado":      in.Category,
			"ciclo_cobranca":      in.BillingCycle,
		}
		if err := tx.Model(&models.Member{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrDuplicateNationalID
			}
			return apperrors.NewStore("update member", err)
		}

		// The login follows the member's standing: disabling the member
		// locks them out, re-enabling restores access.
		credUpdates := map[string]interface{}{
			"username": digits,
			"nome":     in.FullName,
			"ativo":    in.Status == models.MemberStatusEnabled,
		}
		if err := tx.Model(&models.Credential{}).Where("id = ?", member.CredentialID).
			Updates(credUpdates).Error; err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrDuplicateUsername
			}
			return apperrors.NewStore("sync credential", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"member_id":   id,
		"national_id": masked,
	}).Info("Member updated")

	return nil
}

// GetByID retrieves a member by ID
func (s *memberService) GetByID(id uint) (*models.Member, error) {
	return s.memberRepo.FindByID(id)
}

// GetByNationalID retrieves a member by national id, accepting either the
// masked or the bare-digit form
func (s *memberService) GetByNationalID(nationalID string) (*models.Member, error) {
	masked, _, err := utils.NormalizeCPF(nationalID)
	if err != nil {
		return nil, apperrors.NewValidation("%v", err)
	}
	return s.memberRepo.FindByNationalID(masked)
}

// GetByCredentialID retrieves the member linked to a login
func (s *memberService) GetByCredentialID(credentialID uint) (*models.Member, error) {
	return s.memberRepo.FindByCredentialID(credentialID)
}

// List retrieves all members with their login usernames
func (s *memberService) List() ([]*response.MemberRow, error) {
	return s.memberRepo.List()
}

// ListEligibleForBilling retrieves the members that may receive new dues
func (s *memberService) ListEligibleForBilling() ([]*models.Member, error) {
	return s.memberRepo.ListEligibleForBilling()
}

// GetPhoto retrieves a member's photo blob
func (s *memberService) GetPhoto(id uint) ([]byte, error) {
	return s.memberRepo.GetPhoto(id)
}

// validateMemberFlags normalizes and validates status, category and billing
// cycle. A disabled member must carry a termination date.
func validateMemberFlags(in *MemberInput) error {
	if in.Status == 0 {
		in.Status = models.MemberStatusEnabled
	}
	if in.Category == 0 {
		in.Category = models.MemberCategoryContributing
	}
	if in.BillingCycle == 0 {
		in.BillingCycle = models.BillingCycleMonthly
	}

	switch in.Status {
	case models.MemberStatusEnabled, models.MemberStatusDisabled:
	default:
		return apperrors.NewValidation("invalid member status %d", in.Status)
	}
	switch in.Category {
	case models.MemberCategoryHonorary, models.MemberCategoryContributing, models.MemberCategoryCommunity:
	default:
		return apperrors.NewValidation("invalid member category %d", in.Category)
	}
	switch in.BillingCycle {
	case models.BillingCycleMonthly, models.BillingCycleAnnual:
	default:
		return apperrors.NewValidation("invalid billing cycle %d", in.BillingCycle)
	}

	if in.Status == models.MemberStatusDisabled && in.TerminationDate == nil {
		return apperrors.NewValidation("a disabled member must have a termination date")
	}

	return nil
}
