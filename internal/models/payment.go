package models

import (
	"time"

	"gestao-associado-svc/pkg/money"
)

// Payment status values (status_pagamento_id)
const (
	PaymentStatusPaid   = 1
	PaymentStatusUnpaid = 2
)

// Payment represents the pagamento table: the settlement record linked to a
// due. DueID is the back-reference the store uses to veto deletion of a due
// that still owns a payment record.
type Payment struct {
	ID          uint        `json:"id" gorm:"primarykey"`
	DueID       uint        `json:"due_id" gorm:"column:mensalidade_id;not null;uniqueIndex"`
	PaymentDate *time.Time  `json:"payment_date" gorm:"column:data_pagamento;type:date"`
	Amount      money.Money `json:"amount" gorm:"column:valor_pagamento"`
	StatusID    int         `json:"status_id" gorm:"column:status_pagamento_id;not null;default:2"`
	Receipt     []byte      `json:"-" gorm:"column:comprovante"`

	Due *Due `json:"-" gorm:"foreignKey:DueID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName sets the insert table name for Payment
func (Payment) TableName() string {
	return "pagamento"
}

// Paid reports whether the payment has been marked paid
func (p *Payment) Paid() bool {
	return p.StatusID == PaymentStatusPaid
}
