package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gestao-associado-svc/internal/models"
	"gestao-associado-svc/internal/repository"
	"gestao-associado-svc/internal/service"
	"gestao-associado-svc/pkg/logger"
	"gestao-associado-svc/pkg/money"
)

func setupSchedulerFixture(t *testing.T) (*DuesScheduler, service.MemberService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to open SQLite test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Credential{},
		&models.Member{},
		&models.Due{},
		&models.Payment{},
	))

	log := logger.NewLogger("error", "text")
	memberRepo := repository.NewMemberRepository(db)
	dueRepo := repository.NewDueRepository(db)
	memberService := service.NewMemberService(memberRepo, db, log)
	ledgerService := service.NewLedgerService(dueRepo, memberRepo, db, log)

	defaultAmount, err := money.FromString("100.00")
	require.NoError(t, err)

	sched := NewDuesScheduler(ledgerService, memberService, log, "0 0 0 1 * *", defaultAmount, 10)
	return sched, memberService, db
}

func createSchedulerMember(t *testing.T, svc service.MemberService, fullName string, seq int, mutate func(*service.MemberInput)) *models.Member {
	t.Helper()

	in := service.MemberInput{
		NationalID:       fmt.Sprintf("111222333%02d", seq),
		FullName:         fullName,
		IdentityDocument: fmt.Sprintf("MG-%02d", seq),
	}
	if mutate != nil {
		mutate(&in)
	}
	member, err := svc.Create(in, "hash")
	require.NoError(t, err)
	return member
}

func TestRunOnce_BillsOnlyMonthlyEligibleMembers(t *testing.T) {
	sched, members, db := setupSchedulerFixture(t)

	monthly := createSchedulerMember(t, members, "Maria Souza", 1, nil)
	createSchedulerMember(t, members, "Ana Costa", 2, func(in *service.MemberInput) {
		in.BillingCycle = models.BillingCycleAnnual
	})
	createSchedulerMember(t, members, "João Lima", 3, func(in *service.MemberInput) {
		in.Category = models.MemberCategoryHonorary
	})

	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	issued, skipped, failed := sched.RunOnce(now)
	assert.Equal(t, 1, issued)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 0, failed)

	var dues []models.Due
	require.NoError(t, db.Find(&dues).Error)
	require.Len(t, dues, 1)
	assert.Equal(t, monthly.ID, dues[0].MemberID)
	assert.Equal(t, "100.00", dues[0].Amount.String())
	assert.Equal(t, 2026, dues[0].DueYear)
	assert.Equal(t, 3, dues[0].DueMonth)
	assert.Equal(t, 10, dues[0].DueDate.Day())
}

func TestRunOnce_SkipsAlreadyBilledMonth(t *testing.T) {
	sched, members, db := setupSchedulerFixture(t)
	createSchedulerMember(t, members, "Maria Souza", 1, nil)

	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	issued, skipped, _ := sched.RunOnce(now)
	assert.Equal(t, 1, issued)
	assert.Equal(t, 0, skipped)

	// A rerun inside the same month issues nothing new.
	issued, skipped, failed := sched.RunOnce(now.AddDate(0, 0, 14))
	assert.Equal(t, 0, issued)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 0, failed)

	var count int64
	require.NoError(t, db.Model(&models.Due{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// The next month gets its own due.
	issued, skipped, _ = sched.RunOnce(now.AddDate(0, 1, 0))
	assert.Equal(t, 1, issued)
	assert.Equal(t, 0, skipped)
}

func TestDueDateFor_ClampsToMonthEnd(t *testing.T) {
	february := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 28, dueDateFor(february, 31).Day())
	assert.Equal(t, time.February, dueDateFor(february, 31).Month())

	april := time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 30, dueDateFor(april, 31).Day())

	january := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 31, dueDateFor(january, 31).Day())
	assert.Equal(t, 1, dueDateFor(january, 0).Day())
}
