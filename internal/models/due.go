package models

import (
	"time"

	"gestao-associado-svc/pkg/money"
)

// Due status values (status_mensalidade_id)
const (
	DueStatusUnpaid           = 1
	DueStatusPartiallyPending = 2
	DueStatusPaid             = 3
)

// Due represents the mensalidade table: one billing obligation for one
// member for one calendar month. DueYear/DueMonth are derived from DueDate
// at write time and carry the composite unique index that makes the
// one-due-per-member-per-month rule a store-level constraint instead of a
// check-then-insert.
type Due struct {
	ID        uint        `json:"id" gorm:"primarykey"`
	MemberID  uint        `json:"member_id" gorm:"column:associado_id;not null;uniqueIndex:idx_mensalidade_member_period"`
	Amount    money.Money `json:"amount" gorm:"column:valor;not null"`
	IssueDate time.Time   `json:"issue_date" gorm:"column:data_emissao;type:date;not null"`
	DueDate   time.Time   `json:"due_date" gorm:"column:data_vencimento;type:date;not null"`
	DueYear   int         `json:"-" gorm:"column:ano_vencimento;not null;uniqueIndex:idx_mensalidade_member_period"`
	DueMonth  int         `json:"-" gorm:"column:mes_vencimento;not null;uniqueIndex:idx_mensalidade_member_period"`
	StatusID  int         `json:"status_id" gorm:"column:status_mensalidade_id;not null;default:1"`
	PaymentID *uint       `json:"payment_id" gorm:"column:pagamento_id"`

	Member *Member `json:"-" gorm:"foreignKey:MemberID;references:ID"`
}

// TableName sets the insert table name for Due
func (Due) TableName() string {
	return "mensalidade"
}

// SetPeriod derives the unique-index period columns from the due date
func (d *Due) SetPeriod() {
	d.DueYear = d.DueDate.Year()
	d.DueMonth = int(d.DueDate.Month())
}

// Settled reports whether the due itself has been marked paid
func (d *Due) Settled() bool {
	return d.StatusID == DueStatusPaid
}
