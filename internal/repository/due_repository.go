package repository

import (
	"errors"

	"gorm.io/gorm"

	"gestao-associado-svc/internal/apperrors"
	"gestao-associado-svc/internal/models"
	"gestao-associado-svc/internal/models/response"
)

// DueRepository defines the interface for dues and payment data operations
type DueRepository interface {
	GetDueByID(id uint) (*models.Due, error)
	GetPaymentByID(id uint) (*models.Payment, error)
	GetPaymentByDueID(dueID uint) (*models.Payment, error)
	HasDueInPeriod(memberID uint, year int, month int) (bool, error)
	List(memberID *uint) ([]*response.DueRow, error)
	GetReceipt(paymentID uint) ([]byte, error)
}

// dueRepository implements DueRepository
type dueRepository struct {
	db *gorm.DB
}

// NewDueRepository creates a new instance of DueRepository
func NewDueRepository(db *gorm.DB) DueRepository {
	return &dueRepository{
		db: db,
	}
}

// GetDueByID retrieves a due by ID
func (r *dueRepository) GetDueByID(id uint) (*models.Due, error) {
	var due models.Due

	err := r.db.Where("id = ?", id).First(&due).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDueNotFound
		}
		return nil, apperrors.NewStore("get due by id", err)
	}

	return &due, nil
}

// GetPaymentByID retrieves a payment by ID
func (r *dueRepository) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment

	err := r.db.Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.NewStore("get payment by id", err)
	}

	return &payment, nil
}

// GetPaymentByDueID retrieves the payment linked to a due
func (r *dueRepository) GetPaymentByDueID(dueID uint) (*models.Payment, error) {
	var payment models.Payment

	err := r.db.Where("mensalidade_id = ?", dueID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.NewStore("get payment by due id", err)
	}

	return &payment, nil
}

// HasDueInPeriod reports whether the member already has a due whose due date
// falls in the given calendar month, regardless of the day
func (r *dueRepository) HasDueInPeriod(memberID uint, year int, month int) (bool, error) {
	var count int64

	err := r.db.Model(&models.Due{}).
		Where("associado_id = ? AND ano_vencimento = ? AND mes_vencimento = ?", memberID, year, month).
		Count(&count).Error
	if err != nil {
		return false, apperrors.NewStore("check due period", err)
	}

	return count > 0, nil
}

// List retrieves dues joined with member name, status labels and linked
// payment fields, ordered by due date descending. When memberID is non-nil
// the listing is filtered to that member.
func (r *dueRepository) List(memberID *uint) ([]*response.DueRow, error) {
	var rows []*response.DueRow

	query := `
		SELECT
			m.id,
			m.associado_id AS member_id,
			a.nome_completo AS member_name,
			a.cpf AS national_id,
			m.valor AS amount,
			m.data_emissao AS issue_date,
			m.data_vencimento AS due_date,
			m.status_mensalidade_id AS status_id,
			sm.descricao AS status_label,
			m.pagamento_id AS payment_id,
			p.data_pagamento AS payment_date,
			COALESCE(p.valor_pagamento, 0) AS payment_amount,
			p.status_pagamento_id AS payment_status_id,
			COALESCE(sp.descricao, '') AS payment_status_label,
			p.comprovante IS NOT NULL AS has_receipt
		FROM mensalidade m
		JOIN associado a ON m.associado_id = a.id
		JOIN status_mensalidade sm ON m.status_mensalidade_id = sm.id
		LEFT JOIN pagamento p ON m.pagamento_id = p.id
		LEFT JOIN status_pagamento sp ON p.status_pagamento_id = sp.id
	`

	args := []interface{}{}
	if memberID != nil {
		query += " WHERE m.associado_id = ?"
		args = append(args, *memberID)
	}
	query += " ORDER BY m.data_vencimento DESC"

	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, apperrors.NewStore("list dues", err)
	}

	return rows, nil
}

// GetReceipt retrieves the receipt blob of a payment, nil when none was
// attached
func (r *dueRepository) GetReceipt(paymentID uint) ([]byte, error) {
	var payment models.Payment

	err := r.db.Select("comprovante").Where("id = ?", paymentID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.NewStore("get payment receipt", err)
	}

	return payment.Receipt, nil
}
