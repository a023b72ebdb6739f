package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gestao-associado-svc/internal/config"
	"gestao-associado-svc/internal/models"
)

// Database wraps the GORM connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a PostgreSQL connection using the application config
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate creates or updates the schema and seeds the lookup tables and
// the default admin credential. All statements are idempotent.
func (d *Database) AutoMigrate() error {
	err := d.DB.AutoMigrate(
		&models.Credential{},
		&models.Member{},
		&models.Due{},
		&models.Payment{},
		&models.DueStatus{},
		&models.PaymentStatus{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return d.Seed()
}

// Seed inserts the status labels and the default admin login if missing
func (d *Database) Seed() error {
	dueStatuses := []models.DueStatus{
		{ID: models.DueStatusUnpaid, Description: "Não Pago"},
		{ID: models.DueStatusPartiallyPending, Description: "Ainda Falta Pagar!"},
		{ID: models.DueStatusPaid, Description: "Pago"},
	}
	for _, status := range dueStatuses {
		if err := d.DB.Where("id = ?", status.ID).FirstOrCreate(&status).Error; err != nil {
			return fmt.Errorf("failed to seed due statuses: %w", err)
		}
	}

	paymentStatuses := []models.PaymentStatus{
		{ID: models.PaymentStatusPaid, Description: "Pago"},
		{ID: models.PaymentStatusUnpaid, Description: "Não Pago"},
	}
	for _, status := range paymentStatuses {
		if err := d.DB.Where("id = ?", status.ID).FirstOrCreate(&status).Error; err != nil {
			return fmt.Errorf("failed to seed payment statuses: %w", err)
		}
	}

	// Default admin credential (password: 1234)
	admin := models.Credential{
		Username:     "admin",
		DisplayName:  "Administrador",
		PasswordHash: "$2b$12$78DTTvYLYXqjbw2T.PCRn.p7KLcghBdjUwP6ZvMOJu.TvNpsShqhC",
		Active:       true,
	}
	if err := d.DB.Where("username = ?", admin.Username).FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin credential: %w", err)
	}

	return nil
}

// Close closes the underlying connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
