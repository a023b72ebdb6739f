package repository

import (
	"errors"

	"gorm.io/gorm"

	"gestao-associado-svc/internal/apperrors"
	"gestao-associado-svc/internal/models"
)

// CredentialRepository defines the interface for login data operations.
// Credential rows are created and kept in sync inside the member service's
// transactions; the repository only covers the single-row lookups and
// updates.
type CredentialRepository interface {
	FindByUsername(username string) (*models.Credential, error)
	UpdatePassword(username string, newHash string) error
}

// credentialRepository implements CredentialRepository
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new instance of CredentialRepository
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// FindByUsername retrieves an active credential by exact username
func (r *credentialRepository) FindByUsername(username string) (*models.Credential, error) {
	var credential models.Credential

	err := r.db.Where("username = ? AND ativo = ?", username, true).First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStore("find credential by username", err)
	}

	return &credential, nil
}

// UpdatePassword replaces the stored password hash for the username
func (r *credentialRepository) UpdatePassword(username string, newHash string) error {
	result := r.db.Model(&models.Credential{}).
		Where("username = ?", username).
		Update("senha_hash", newHash)
	if result.Error != nil {
		return apperrors.NewStore("update password", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
