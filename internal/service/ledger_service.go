package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gestao-associado-svc/internal/apperrors"
	"gestao-associado-svc/internal/models"
	"gestao-associado-svc/internal/models/response"
	"gestao-associado-svc/internal/repository"
	"gestao-associado-svc/pkg/logger"
	"gestao-associado-svc/pkg/money"
)

// RecordPaymentInput carries the fields of a payment being recorded against
// a due. Receipt is optional: when nil the previously stored receipt is
// preserved.
type RecordPaymentInput struct {
	DueID       uint
	PaymentDate *time.Time
	Amount      money.Money
	StatusID    int
	Receipt     []byte
}

// LedgerService owns the lifecycle of dues and their linked payments
type LedgerService interface {
	IssueDue(memberID uint, amount money.Money, dueDate time.Time) (uint, error)
	RecordPayment(in RecordPaymentInput) error
	UpdateDueFields(dueID uint, amount money.Money, dueDate time.Time) error
	UpdateDueStatus(dueID uint, statusID int) error
	DeleteDue(dueID uint) error
	ListDues(memberID *uint) ([]*response.DueRow, error)
	GetReceipt(paymentID uint) ([]byte, error)
}

// ledgerService implements LedgerService
type ledgerService struct {
	dueRepo    repository.DueRepository
	memberRepo repository.MemberRepository
	db         *gorm.DB
	logger     *logger.Logger
}

// NewLedgerService creates a new instance of LedgerService
func NewLedgerService(dueRepo repository.DueRepository, memberRepo repository.MemberRepository, db *gorm.DB, logger *logger.Logger) LedgerService {
	return &ledgerService{
		dueRepo:    dueRepo,
		memberRepo: memberRepo,
		db:         db,
		logger:     logger,
	}
}

// IssueDue creates a due for a contributing, enabled member together with
// its companion unpaid payment record. Both rows are written in a single
// transaction; a partial pair is never observable. At most one due may
// exist per member per calendar month of the due date.
func (s *ledgerService) IssueDue(memberID uint, amount money.Money, dueDate time.Time) (uint, error) {
	if !amount.IsPositive() {
		return 0, apperrors.NewValidation("due amount must be greater than zero")
	}
	if dueDate.IsZero() {
		return 0, apperrors.NewValidation("due date is required")
	}

	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		return 0, err
	}
	if !member.EligibleForBilling() {
		return 0, apperrors.NewValidation("dues can only be issued to enabled contributing members")
	}

	exists, err := s.dueRepo.HasDueInPeriod(memberID, dueDate.Year(), int(dueDate.Month()))
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperrors.ErrDuplicateDue
	}

	due := &models.Due{
		MemberID:  memberID,
		Amount:    amount,
		IssueDate: time.Now(),
		DueDate:   dueDate,
		StatusID:  models.DueStatusUnpaid,
	}
	due.SetPeriod()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(due).Error; err != nil {
			// The unique index on (member, year, month) backstops the
			// period check against concurrent issuance.
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrDuplicateDue
			}
			return apperrors.NewStore("create due", err)
		}

		payment := &models.Payment{
			DueID:    due.ID,
			Amount:   amount,
			StatusID: models.PaymentStatusUnpaid,
		}
		if err := tx.Create(payment).Error; err != nil {
			return apperrors.NewStore("create companion payment", err)
		}

		if err := tx.Model(due).Update("pagamento_id", payment.ID).Error; err != nil {
			return apperrors.NewStore("link companion payment", err)
		}
		due.PaymentID = &payment.ID

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(map[string]interface{}{
		"due_id":    due.ID,
		"member_id": memberID,
		"amount":    amount.String(),
		"due_date":  dueDate.Format("2006-01-02"),
	}).Info("Due issued")

	return due.ID, nil
}

// RecordPayment attaches or updates the payment of a due. The payment
// amount must equal the due amount after rounding to two decimal places;
// on mismatch nothing is written. The due status itself is not touched:
// status transitions are a separate administrative action.
func (s *ledgerService) RecordPayment(in RecordPaymentInput) error {
	if in.PaymentDate == nil {
		return apperrors.NewValidation("payment date is required")
	}
	if in.StatusID != models.PaymentStatusPaid && in.StatusID != models.PaymentStatusUnpaid {
		return apperrors.NewValidation("invalid payment status %d", in.StatusID)
	}

	due, err := s.dueRepo.GetDueByID(in.DueID)
	if err != nil {
		return err
	}

	if locked, err := s.isSettled(due); err != nil {
		return err
	} else if locked {
		return apperrors.NewValidation("due is fully settled and can no longer be modified")
	}

	if !in.Amount.Equals(due.Amount) {
		return &apperrors.PaymentAmountMismatchError{Expected: due.Amount}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if due.PaymentID == nil {
			payment := &models.Payment{
				DueID:       due.ID,
				PaymentDate: in.PaymentDate,
				Amount:      in.Amount,
				StatusID:    in.StatusID,
				Receipt:     in.Receipt,
			}
			if err := tx.Create(payment).Error; err != nil {
				return apperrors.NewStore("create payment", err)
			}
			if err := tx.Model(&models.Due{}).Where("id = ?", due.ID).
				Update("pagamento_id", payment.ID).Error; err != nil {
				return apperrors.NewStore("link payment", err)
			}
			return nil
		}

		updates := map[string]interface{}{
			"data_pagamento":      in.PaymentDate,
			"valor_pagamento":     in.Amount,
			"status_pagamento_id": in.StatusID,
		}
		// A new receipt replaces the stored one; absent a new upload the
		// previous receipt is preserved.
		if len(in.Receipt) > 0 {
			updates["comprovante"] = in.Receipt
		}
		if err := tx.Model(&models.Payment{}).Where("id = ?", *due.PaymentID).
			Updates(updates).Error; err != nil {
			return apperrors.NewStore("update payment", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"due_id": in.DueID,
		"amount": in.Amount.String(),
		"status": in.StatusID,
	}).Info("Payment recorded")

	return nil
}

// UpdateDueFields edits the amount and due date of a due. The calendar
// period columns follow the new due date; a same-month collision with
// another due for the member surfaces from the store's unique index.
func (s *ledgerService) UpdateDueFields(dueID uint, amount money.Money, dueDate time.Time) error {
	if !amount.IsPositive() {
		return apperrors.NewValidation("due amount must be greater than zero")
	}
	if dueDate.IsZero() {
		return apperrors.NewValidation("due date is required")
	}

	due, err := s.dueRepo.GetDueByID(dueID)
	if err != nil {
		return err
	}

	if locked, err := s.isSettled(due); err != nil {
		return err
	} else if locked {
		return apperrors.NewValidation("due is fully settled and can no longer be modified")
	}

	updates := map[string]interface{}{
		"valor":           amount,
		"data_vencimento": dueDate,
		"ano_vencimento":  dueDate.Year(),
		"mes_vencimento":  int(dueDate.Month()),
	}
	if err := s.db.Model(&models.Due{}).Where("id = ?", dueID).Updates(updates).Error; err != nil {
		return apperrors.NewStore("update due", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"due_id":   dueID,
		"amount":   amount.String(),
		"due_date": dueDate.Format("2006-01-02"),
	}).Info("Due updated")

	return nil
}

// UpdateDueStatus sets the administrative status of a due. The status is
// admin-set metadata, not derived from the payment state.
func (s *ledgerService) UpdateDueStatus(dueID uint, statusID int) error {
	switch statusID {
	case models.DueStatusUnpaid, models.DueStatusPartiallyPending, models.DueStatusPaid:
	default:
		return apperrors.NewValidation("invalid due status %d", statusID)
	}

	result := s.db.Model(&models.Due{}).Where("id = ?", dueID).
		Update("status_mensalidade_id", statusID)
	if result.Error != nil {
		return apperrors.NewStore("update due status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDueNotFound
	}

	s.logger.WithFields(map[string]interface{}{
		"due_id": dueID,
		"status": statusID,
	}).Info("Due status updated")

	return nil
}

// DeleteDue removes a due together with its still-pristine companion
// payment. A companion that never received a recording (unpaid, no payment
// date, no receipt) carries no information and is deleted in the same
// transaction; a payment that was actually recorded makes the due
// undeletable and both rows remain untouched.
func (s *ledgerService) DeleteDue(dueID uint) error {
	if _, err := s.dueRepo.GetDueByID(dueID); err != nil {
		return err
	}

	payment, err := s.dueRepo.GetPaymentByDueID(dueID)
	if err != nil && !errors.Is(err, apperrors.ErrPaymentNotFound) {
		return err
	}
	if payment != nil && (payment.Paid() || payment.PaymentDate != nil || len(payment.Receipt) > 0) {
		return apperrors.ErrDueInUse
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if payment != nil {
			if err := tx.Delete(&models.Payment{}, payment.ID).Error; err != nil {
				return apperrors.NewStore("delete companion payment", err)
			}
		}

		result := tx.Delete(&models.Due{}, dueID)
		if result.Error != nil {
			// Referential backstop against a payment row linked outside
			// the companion column.
			if repository.IsForeignKeyViolation(result.Error) {
				return apperrors.ErrDueInUse
			}
			return apperrors.NewStore("delete due", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrDueNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.WithField("due_id", dueID).Info("Due deleted")

	return nil
}

// ListDues returns dues joined with member and payment information,
// optionally filtered to one member, ordered by due date descending
func (s *ledgerService) ListDues(memberID *uint) ([]*response.DueRow, error) {
	return s.dueRepo.List(memberID)
}

// GetReceipt returns the receipt blob stored for a payment
func (s *ledgerService) GetReceipt(paymentID uint) ([]byte, error) {
	receipt, err := s.dueRepo.GetReceipt(paymentID)
	if err != nil {
		return nil, err
	}
	if len(receipt) == 0 {
		return nil, fmt.Errorf("payment %d has no receipt: %w", paymentID, apperrors.ErrPaymentNotFound)
	}
	return receipt, nil
}

// isSettled reports whether both the due and its payment are marked paid,
// in which case further edits are rejected
func (s *ledgerService) isSettled(due *models.Due) (bool, error) {
	if !due.Settled() || due.PaymentID == nil {
		return false, nil
	}
	payment, err := s.dueRepo.GetPaymentByID(*due.PaymentID)
	if err != nil {
		return false, err
	}
	return payment.Paid(), nil
}
