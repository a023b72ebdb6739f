package models

// Credential represents the login table. For member credentials the
// username is always the 11 digits of the member's national id.
type Credential struct {
	ID           uint   `json:"id" gorm:"primarykey"`
	Username     string `json:"username" gorm:"column:username;size:50;uniqueIndex;not null"`
	DisplayName  string `json:"display_name" gorm:"column:nome;size:100;not null"`
	PasswordHash string `json:"-" gorm:"column:senha_hash;size:255;not null"`
	Active       bool   `json:"active" gorm:"column:ativo;not null;default:true"`
}

// TableName sets the insert table name for Credential
func (Credential) TableName() string {
	return "login"
}
