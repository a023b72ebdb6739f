package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gestao-associado-svc/internal/models"
	"gestao-associado-svc/pkg/logger"
)

// setupTestDB creates an in-memory SQLite database with foreign key
// enforcement enabled, migrated and seeded with the status labels. The
// connection pool is pinned to one connection so every query sees the same
// in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to open SQLite test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Credential{},
		&models.Member{},
		&models.DueStatus{},
		&models.PaymentStatus{},
		&models.Due{},
		&models.Payment{},
	)
	require.NoError(t, err, "failed to migrate test database")

	dueStatuses := []models.DueStatus{
		{ID: models.DueStatusUnpaid, Description: "Não Pago"},
		{ID: models.DueStatusPartiallyPending, Description: "Ainda Falta Pagar!"},
		{ID: models.DueStatusPaid, Description: "Pago"},
	}
	require.NoError(t, db.Create(&dueStatuses).Error)

	paymentStatuses := []models.PaymentStatus{
		{ID: models.PaymentStatusPaid, Description: "Pago"},
		{ID: models.PaymentStatusUnpaid, Description: "Não Pago"},
	}
	require.NoError(t, db.Create(&paymentStatuses).Error)

	return db
}

// newTestLogger returns a logger that only emits on errors
func newTestLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

// memberSeq disambiguates national ids across fixture members in one test
var memberSeq int

// testMemberInput builds a valid contributing, enabled member input with a
// unique national id
func testMemberInput(fullName string) MemberInput {
	memberSeq++
	return MemberInput{
		NationalID:       fmt.Sprintf("529982247%02d", memberSeq%100),
		FullName:         fullName,
		IdentityDocument: fmt.Sprintf("MG-%02d", memberSeq%100),
		Email:            "member@example.com",
		City:             "Belo Horizonte",
		State:            "MG",
	}
}

// createTestMember persists a member through the member service and returns it
func createTestMember(t *testing.T, svc MemberService, in MemberInput) *models.Member {
	t.Helper()

	member, err := svc.Create(in, "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtesth")
	require.NoError(t, err)
	return member
}

// date builds a midnight time for the given day
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
