package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gestao-associado-svc/internal/apperrors"
	"gestao-associado-svc/internal/models"
	"gestao-associado-svc/internal/repository"
	"gestao-associado-svc/pkg/money"
)

func newLedgerFixture(t *testing.T) (LedgerService, MemberService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	log := newTestLogger()
	memberRepo := repository.NewMemberRepository(db)
	dueRepo := repository.NewDueRepository(db)
	memberService := NewMemberService(memberRepo, db, log)
	ledgerService := NewLedgerService(dueRepo, memberRepo, db, log)
	return ledgerService, memberService, db
}

func mustMoney(t *testing.T, s string) money.Money {
	t.Helper()
	m, err := money.FromString(s)
	require.NoError(t, err)
	return m
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestIssueDue_CreatesLinkedPaymentPair(t *testing.T) {
	ledger, members, db := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	dueID, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	var due models.Due
	require.NoError(t, db.First(&due, dueID).Error)
	require.NotNil(t, due.PaymentID)
	assert.Equal(t, member.ID, due.MemberID)
	assert.Equal(t, models.DueStatusUnpaid, due.StatusID)
	assert.Equal(t, 2026, due.DueYear)
	assert.Equal(t, 3, due.DueMonth)

	var payment models.Payment
	require.NoError(t, db.First(&payment, *due.PaymentID).Error)
	assert.Equal(t, due.ID, payment.DueID)
	assert.Equal(t, models.PaymentStatusUnpaid, payment.StatusID)
	assert.True(t, payment.Amount.Equals(due.Amount))
	assert.Nil(t, payment.PaymentDate)

	assert.EqualValues(t, 1, countRows(t, db, &models.Due{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Payment{}))
}

func TestIssueDue_RejectsIneligibleMember(t *testing.T) {
	ledger, members, db := newLedgerFixture(t)

	communityIn := testMemberInput("João Lima")
	communityIn.Category = models.MemberCategoryCommunity
	community := createTestMember(t, members, communityIn)

	termination := date(2025, time.December, 31)
	disabledIn := testMemberInput("Pedro Alves")
	disabledIn.Status = models.MemberStatusDisabled
	disabledIn.TerminationDate = &termination
	disabled := createTestMember(t, members, disabledIn)

	for _, member := range []*models.Member{community, disabled} {
		_, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
		assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)
	}

	assert.EqualValues(t, 0, countRows(t, db, &models.Due{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Payment{}))
}

func TestIssueDue_RejectsNonPositiveAmount(t *testing.T) {
	ledger, members, _ := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	_, err := ledger.IssueDue(member.ID, money.Zero, date(2026, time.March, 10))
	assert.True(t, apperrors.IsValidation(err))

	_, err = ledger.IssueDue(member.ID, money.FromFloat(-10), date(2026, time.March, 10))
	assert.True(t, apperrors.IsValidation(err))
}

func TestIssueDue_OnePerMemberPerMonth(t *testing.T) {
	ledger, members, db := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	_, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	// Same month, different day.
	_, err = ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 25))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateDue)

	// Next month is fine.
	_, err = ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.April, 10))
	require.NoError(t, err)

	// Another member in the already-billed month is fine too.
	other := createTestMember(t, members, testMemberInput("Ana Costa"))
	_, err = ledger.IssueDue(other.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	assert.EqualValues(t, 3, countRows(t, db, &models.Due{}))
}

func TestRecordPayment_AmountMismatchWritesNothing(t *testing.T) {
	ledger, members, db := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	dueID, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	paymentDate := date(2026, time.March, 8)
	err = ledger.RecordPayment(RecordPaymentInput{
		DueID:       dueID,
		PaymentDate: &paymentDate,
		Amount:      mustMoney(t, "140.00"),
		StatusID:    models.PaymentStatusPaid,
		Receipt:     []byte("recibo"),
	})

	var mismatch *apperrors.PaymentAmountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "150.00", mismatch.Expected.String())

	var payment models.Payment
	require.NoError(t, db.Where("mensalidade_id = ?", dueID).First(&payment).Error)
	assert.Nil(t, payment.PaymentDate)
	assert.Equal(t, models.PaymentStatusUnpaid, payment.StatusID)
	assert.Empty(t, payment.Receipt)
}

func TestRecordPayment_EqualAfterRounding(t *testing.T) {
	ledger, members, _ := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	dueID, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	paymentDate := date(2026, time.March, 8)
	err = ledger.RecordPayment(RecordPaymentInput{
		DueID:       dueID,
		PaymentDate: &paymentDate,
		Amount:      mustMoney(t, "150.004"),
		StatusID:    models.PaymentStatusPaid,
	})
	require.NoError(t, err)
}

func TestRecordPayment_UpdatesExistingPaymentInPlace(t *testing.T) {
	ledger, members, db := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	dueID, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	firstDate := date(2026, time.March, 5)
	err = ledger.RecordPayment(RecordPaymentInput{
		DueID:       dueID,
		PaymentDate: &firstDate,
		Amount:      mustMoney(t, "150.00"),
		StatusID:    models.PaymentStatusUnpaid,
		Receipt:     []byte("recibo-original"),
	})
	require.NoError(t, err)

	// A second recording without a new receipt keeps the stored one.
	secondDate := date(2026, time.March, 8)
	err = ledger.RecordPayment(RecordPaymentInput{
		DueID:       dueID,
		PaymentDate: &secondDate,
		Amount:      mustMoney(t, "150.00"),
		StatusID:    models.PaymentStatusUnpaid,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, countRows(t, db, &models.Payment{}))

	var payment models.Payment
	require.NoError(t, db.Where("mensalidade_id = ?", dueID).First(&payment).Error)
	require.NotNil(t, payment.PaymentDate)
	assert.Equal(t, secondDate.Day(), payment.PaymentDate.Day())
	assert.Equal(t, []byte("recibo-original"), payment.Receipt)

	// A new receipt replaces the stored one.
	err = ledger.RecordPayment(RecordPaymentInput{
		DueID:       dueID,
		PaymentDate: &secondDate,
		Amount:      mustMoney(t, "150.00"),
		StatusID:    models.PaymentStatusPaid,
		Receipt:     []byte("recibo-novo"),
	})
	require.NoError(t, err)

	require.NoError(t, db.Where("mensalidade_id = ?", dueID).First(&payment).Error)
	assert.Equal(t, []byte("recibo-novo"), payment.Receipt)
	assert.Equal(t, models.PaymentStatusPaid, payment.StatusID)
}

func TestRecordPayment_SettledDueIsLocked(t *testing.T) {
	ledger, members, _ := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	dueID, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	paymentDate := date(2026, time.March, 8)
	require.NoError(t, ledger.RecordPayment(RecordPaymentInput{
		DueID:       dueID,
		PaymentDate: &paymentDate,
		Amount:      mustMoney(t, "150.00"),
		StatusID:    models.PaymentStatusPaid,
	}))
	require.NoError(t, ledger.UpdateDueStatus(dueID, models.DueStatusPaid))

	err = ledger.RecordPayment(RecordPaymentInput{
		DueID:       dueID,
		PaymentDate: &paymentDate,
		Amount:      mustMoney(t, "150.00"),
		StatusID:    models.PaymentStatusUnpaid,
	})
	assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)

	err = ledger.UpdateDueFields(dueID, mustMoney(t, "200.00"), date(2026, time.March, 15))
	assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)
}

func TestRecordPayment_DueNotFound(t *testing.T) {
	ledger, _, _ := newLedgerFixture(t)

	paymentDate := date(2026, time.March, 8)
	err := ledger.RecordPayment(RecordPaymentInput{
		DueID:       9999,
		PaymentDate: &paymentDate,
		Amount:      mustMoney(t, "150.00"),
		StatusID:    models.PaymentStatusPaid,
	})
	assert.ErrorIs(t, err, apperrors.ErrDueNotFound)
}

func TestUpdateDueFields_MovesPeriodWithDueDate(t *testing.T) {
	ledger, members, db := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	dueID, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	require.NoError(t, ledger.UpdateDueFields(dueID, mustMoney(t, "175.50"), date(2026, time.April, 5)))

	var due models.Due
	require.NoError(t, db.First(&due, dueID).Error)
	assert.Equal(t, "175.50", due.Amount.String())
	assert.Equal(t, 2026, due.DueYear)
	assert.Equal(t, 4, due.DueMonth)

	// The freed month may be billed again.
	_, err = ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 20))
	require.NoError(t, err)
}

func TestUpdateDueStatus(t *testing.T) {
	ledger, members, db := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	dueID, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	require.NoError(t, ledger.UpdateDueStatus(dueID, models.DueStatusPartiallyPending))

	var due models.Due
	require.NoError(t, db.First(&due, dueID).Error)
	assert.Equal(t, models.DueStatusPartiallyPending, due.StatusID)

	assert.True(t, apperrors.IsValidation(ledger.UpdateDueStatus(dueID, 7)))
	assert.ErrorIs(t, ledger.UpdateDueStatus(9999, models.DueStatusPaid), apperrors.ErrDueNotFound)
}

func TestDeleteDue_RemovesPristineCompanionPayment(t *testing.T) {
	ledger, members, db := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	// A freshly issued due was never paid; deleting it must take the
	// companion payment with it.
	dueID, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	require.NoError(t, ledger.DeleteDue(dueID))
	assert.EqualValues(t, 0, countRows(t, db, &models.Due{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Payment{}))

	// The freed month may be billed again afterwards.
	_, err = ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	assert.ErrorIs(t, ledger.DeleteDue(9999), apperrors.ErrDueNotFound)
}

func TestDeleteDue_BlockedByRecordedPayment(t *testing.T) {
	ledger, members, db := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	dueID, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	paymentDate := date(2026, time.March, 8)
	require.NoError(t, ledger.RecordPayment(RecordPaymentInput{
		DueID:       dueID,
		PaymentDate: &paymentDate,
		Amount:      mustMoney(t, "150.00"),
		StatusID:    models.PaymentStatusUnpaid,
	}))

	err = ledger.DeleteDue(dueID)
	assert.ErrorIs(t, err, apperrors.ErrDueInUse)

	assert.EqualValues(t, 1, countRows(t, db, &models.Due{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Payment{}))
}

func TestDeleteDue_BlockedByReceipt(t *testing.T) {
	ledger, members, db := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	dueID, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	// A stored receipt alone marks the payment as recorded.
	require.NoError(t, db.Model(&models.Payment{}).Where("mensalidade_id = ?", dueID).
		Update("comprovante", []byte("recibo")).Error)

	assert.ErrorIs(t, ledger.DeleteDue(dueID), apperrors.ErrDueInUse)
	assert.EqualValues(t, 1, countRows(t, db, &models.Due{}))
}

func TestListDues(t *testing.T) {
	ledger, members, _ := newLedgerFixture(t)
	maria := createTestMember(t, members, testMemberInput("Maria Souza"))
	ana := createTestMember(t, members, testMemberInput("Ana Costa"))

	mariaDueID, err := ledger.IssueDue(maria.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)
	_, err = ledger.IssueDue(ana.ID, mustMoney(t, "150.00"), date(2026, time.April, 10))
	require.NoError(t, err)

	paymentDate := date(2026, time.March, 8)
	require.NoError(t, ledger.RecordPayment(RecordPaymentInput{
		DueID:       mariaDueID,
		PaymentDate: &paymentDate,
		Amount:      mustMoney(t, "150.00"),
		StatusID:    models.PaymentStatusPaid,
		Receipt:     []byte("recibo"),
	}))

	rows, err := ledger.ListDues(nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Newest due date first.
	assert.Equal(t, ana.ID, rows[0].MemberID)
	assert.Equal(t, "Ana Costa", rows[0].MemberName)
	assert.Equal(t, "Não Pago", rows[0].StatusLabel)
	assert.False(t, rows[0].HasReceipt)

	assert.Equal(t, maria.ID, rows[1].MemberID)
	assert.Equal(t, maria.NationalID, rows[1].NationalID)
	assert.Equal(t, "150.00", rows[1].Amount.String())
	require.NotNil(t, rows[1].PaymentStatusID)
	assert.Equal(t, models.PaymentStatusPaid, *rows[1].PaymentStatusID)
	assert.Equal(t, "Pago", rows[1].PaymentStatusLabel)
	assert.True(t, rows[1].HasReceipt)

	filtered, err := ledger.ListDues(&maria.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, maria.ID, filtered[0].MemberID)
}

func TestGetReceipt(t *testing.T) {
	ledger, members, db := newLedgerFixture(t)
	member := createTestMember(t, members, testMemberInput("Maria Souza"))

	dueID, err := ledger.IssueDue(member.ID, mustMoney(t, "150.00"), date(2026, time.March, 10))
	require.NoError(t, err)

	var due models.Due
	require.NoError(t, db.First(&due, dueID).Error)
	require.NotNil(t, due.PaymentID)

	// The companion payment starts without a receipt.
	_, err = ledger.GetReceipt(*due.PaymentID)
	assert.ErrorIs(t, err, apperrors.ErrPaymentNotFound)

	paymentDate := date(2026, time.March, 8)
	require.NoError(t, ledger.RecordPayment(RecordPaymentInput{
		DueID:       dueID,
		PaymentDate: &paymentDate,
		Amount:      mustMoney(t, "150.00"),
		StatusID:    models.PaymentStatusPaid,
		Receipt:     []byte("recibo"),
	}))

	receipt, err := ledger.GetReceipt(*due.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, []byte("recibo"), receipt)
}
