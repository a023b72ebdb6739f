package response

import (
	"time"

	"gestao-associado-svc/pkg/money"
)

// DueRow is one row of the dues listing: the due joined with its member's
// name, status labels and linked payment fields when present. Payment
// columns are zero-valued when the due has no linked payment; PaymentID
// disambiguates.
type DueRow struct {
	ID                 uint        `json:"id"`
	MemberID           uint        `json:"member_id"`
	MemberName         string      `json:"member_name"`
	NationalID         string      `json:"national_id"`
	Amount             money.Money `json:"amount"`
	IssueDate          time.Time   `json:"issue_date"`
	DueDate            time.Time   `json:"due_date"`
	StatusID           int         `json:"status_id"`
	StatusLabel        string      `json:"status_label"`
	PaymentID          *uint       `json:"payment_id"`
	PaymentDate        *time.Time  `json:"payment_date"`
	PaymentAmount      money.Money `json:"payment_amount"`
	PaymentStatusID    *int        `json:"payment_status_id"`
	PaymentStatusLabel string      `json:"payment_status_label"`
	HasReceipt         bool        `json:"has_receipt"`
}
