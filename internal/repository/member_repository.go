package repository

import (
	"errors"

	"gorm.io/gorm"

	"gestao-associado-svc/internal/apperrors"
	"gestao-associado-svc/internal/models"
	"gestao-associado-svc/internal/models/response"
)

// MemberRepository defines the interface for member data operations
type MemberRepository interface {
	FindByID(id uint) (*models.Member, error)
	FindByNationalID(nationalID string) (*models.Member, error)
	FindByCredentialID(credentialID uint) (*models.Member, error)
	List() ([]*response.MemberRow, error)
	ListEligibleForBilling() ([]*models.Member, error)
	GetPhoto(id uint) ([]byte, error)
}

// memberRepository implements MemberRepository
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new instance of MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// FindByID retrieves a member by ID
func (r *memberRepository) FindByID(id uint) (*models.Member, error) {
	var member models.Member

	err := r.db.Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.NewStore("find member by id", err)
	}

	return &member, nil
}

// FindByNationalID retrieves a member by the canonical masked national id
func (r *memberRepository) FindByNationalID(nationalID string) (*models.Member, error) {
	var member models.Member

	err := r.db.Where("cpf = ?", nationalID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.NewStore("find member by national id", err)
	}

	return &member, nil
}

// FindByCredentialID retrieves the member linked to a login
func (r *memberRepository) FindByCredentialID(credentialID uint) (*models.Member, error) {
	var member models.Member

	err := r.db.Where("login_id = ?", credentialID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.NewStore("find member by credential id", err)
	}

	return &member, nil
}

// List retrieves all members joined with their login username, ordered by
// full name
func (r *memberRepository) List() ([]*response.MemberRow, error) {
	var rows []*response.MemberRow

	query := `
		SELECT
			a.id,
			a.login_id AS credential_id,
			l.username,
			a.cpf AS national_id,
			a.nome_completo AS full_name,
			a.data_nascimento AS birth_date,
			a.email,
			a.telefone AS phone,
			a.cidade AS city,
			a.estado_uf AS state,
			a.data_inicio AS enrollment_date,
			a.data_desligamento AS termination_date,
			a.situacao_associado AS status,
			a.tipo_associado AS category,
			a.ciclo_cobranca AS billing_cycle
		FROM associado a
		JOIN login l ON a.login_id = l.id
		ORDER BY a.nome_completo
	`

	if err := r.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, apperrors.NewStore("list members", err)
	}

	return rows, nil
}

// ListEligibleForBilling retrieves members that may receive new dues:
// contributing category and enabled status
func (r *memberRepository) ListEligibleForBilling() ([]*models.Member, error) {
	var members []*models.Member

	err := r.db.
		Where("tipo_associado = ? AND situacao_associado = ?",
			models.MemberCategoryContributing, models.MemberStatusEnabled).
		Order("nome_completo").
		Find(&members).Error
	if err != nil {
		return nil, apperrors.NewStore("list eligible members", err)
	}

	return members, nil
}

// GetPhoto retrieves only the photo blob for a member
func (r *memberRepository) GetPhoto(id uint) ([]byte, error) {
	var member models.Member

	err := r.db.Select("foto").Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.NewStore("get member photo", err)
	}

	return member.Photo, nil
}
