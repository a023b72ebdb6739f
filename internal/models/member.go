package models

import (
	"time"
)

// Member status values (situacao_associado)
const (
	MemberStatusEnabled  = 1
	MemberStatusDisabled = 2
)

// Member category values (tipo_associado)
const (
	MemberCategoryHonorary     = 1
	MemberCategoryContributing = 2
	MemberCategoryCommunity    = 3
)

// Billing cycle values (ciclo_cobranca)
const (
	BillingCycleMonthly = 1
	BillingCycleAnnual  = 2
)

// Member represents the associado table. NationalID is stored in the
// canonical masked form XXX.XXX.XXX-XX; the linked credential's username
// holds the same id as bare digits.
type Member struct {
	ID                uint       `json:"id" gorm:"primarykey"`
	CredentialID      uint       `json:"credential_id" gorm:"column:login_id;not null"`
	NationalID        string     `json:"national_id" gorm:"column:cpf;size:14;uniqueIndex;not null"`
	Photo             []byte     `json:"-" gorm:"column:foto"`
	FullName          string     `json:"full_name" gorm:"column:nome_completo;size:150;not null"`
	BirthDate         *time.Time `json:"birth_date" gorm:"column:data_nascimento;type:date"`
	Email             string     `json:"email" gorm:"column:email;size:150"`
	Phone             string     `json:"phone" gorm:"column:telefone;size:20"`
	Address           string     `json:"address" gorm:"column:endereco"`
	City              string     `json:"city" gorm:"column:cidade;size:100"`
	State             string     `json:"state" gorm:"column:estado_uf;size:10"`
	WorkSituation     string     `json:"work_situation" gorm:"column:situacao_trabalho;size:100"`
	BloodType         string     `json:"blood_type" gorm:"column:tipo_sanguineo;size:3"`
	ChildrenCount     int        `json:"children_count" gorm:"column:quantidade_filhos"`
	IdentityDocument  string     `json:"identity_document" gorm:"column:identidade;size:30;not null"`
	EnrollmentDate    *time.Time `json:"enrollment_date" gorm:"column:data_inicio;type:date"`
	TerminationDate   *time.Time `json:"termination_date" gorm:"column:data_desligamento;type:date"`
	TerminationReason *string    `json:"termination_reason" gorm:"column:motivo_desligamento"`
	Status            int        `json:"status" gorm:"column:situacao_associado;not null;default:1"`
	Category          int        `json:"category" gorm:"column:tipo_associado;not null;default:2"`
	BillingCycle      int        `json:"billing_cycle" gorm:"column:ciclo_cobranca;not null;default:1"`

	Credential *Credential `json:"-" gorm:"foreignKey:CredentialID;references:ID"`
}

// TableName sets the insert table name for Member
func (Member) TableName() string {
	return "associado"
}

// EligibleForBilling reports whether new dues may be issued to this member
func (m *Member) EligibleForBilling() bool {
	return m.Category == MemberCategoryContributing && m.Status == MemberStatusEnabled
}
