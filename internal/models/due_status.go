package models

// DueStatus represents the status_mensalidade lookup table
type DueStatus struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Description string `json:"description" gorm:"column:descricao;size:80;uniqueIndex;not null"`
}

// TableName sets the insert table name for DueStatus
func (DueStatus) TableName() string {
	return "status_mensalidade"
}

// PaymentStatus represents the status_pagamento lookup table
type PaymentStatus struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Description string `json:"description" gorm:"column:descricao;size:80;uniqueIndex;not null"`
}

// TableName sets the insert table name for PaymentStatus
func (PaymentStatus) TableName() string {
	return "status_pagamento"
}
