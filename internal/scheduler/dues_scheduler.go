package scheduler

import (
	"errors"
	"fmt"
	"time"

	"gestao-associado-svc/internal/apperrors"
	"gestao-associado-svc/internal/models"
	"gestao-associado-svc/internal/service"
	"gestao-associado-svc/pkg/logger"
	"gestao-associado-svc/pkg/money"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// DuesScheduler handles scheduled dues issuance
type DuesScheduler struct {
	ledgerService  service.LedgerService
	memberService  service.MemberService
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
	defaultAmount  money.Money
	dueDayOfMonth  int
}

// NewDuesScheduler creates a new dues scheduler
func NewDuesScheduler(ledgerService service.LedgerService, memberService service.MemberService, logger *logger.Logger, cronExpression string, defaultAmount money.Money, dueDayOfMonth int) *DuesScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &DuesScheduler{
		ledgerService:  ledgerService,
		memberService:  memberService,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
		defaultAmount:  defaultAmount,
		dueDayOfMonth:  dueDayOfMonth,
	}
}

// Start initializes and starts all scheduled jobs
func (s *DuesScheduler) Start() error {
	s.logger.Info("Starting dues scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling monthly dues job")
	_, err := s.cron.AddFunc(s.cronExpression, s.issueMonthlyDues)
	if err != nil {
		return fmt.Errorf("failed to schedule monthly dues job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Dues scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *DuesScheduler) Stop() {
	s.logger.Info("Stopping dues scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Dues scheduler stopped successfully")
}

// issueMonthlyDues is the scheduled job entry point
func (s *DuesScheduler) issueMonthlyDues() {
	s.RunOnce(time.Now())
}

// RunOnce issues the dues of the month containing now to every enabled
// contributing member on a monthly billing cycle. Members who already have a
// due in the month are skipped. Returns the issued/skipped/failed counts.
func (s *DuesScheduler) RunOnce(now time.Time) (issued, skipped, failed int) {
	runID := uuid.New().String()
	dueDate := dueDateFor(now, s.dueDayOfMonth)

	log := s.logger.WithFields(map[string]interface{}{
		"run_id":    runID,
		"due_month": int(now.Month()),
		"due_year":  now.Year(),
	})
	log.Info("Starting scheduled monthly dues issuance")

	members, err := s.memberService.ListEligibleForBilling()
	if err != nil {
		log.WithError(err).Error("Failed to list eligible members")
		return 0, 0, 0
	}

	for _, member := range members {
		if member.BillingCycle != models.BillingCycleMonthly {
			continue
		}

		_, err := s.ledgerService.IssueDue(member.ID, s.defaultAmount, dueDate)
		switch {
		case errors.Is(err, apperrors.ErrDuplicateDue):
			skipped++
		case err != nil:
			failed++
			log.WithError(err).WithField("member_id", member.ID).Error("Failed to issue due")
		default:
			issued++
		}
	}

	log.WithFields(map[string]interface{}{
		"issued":  issued,
		"skipped": skipped,
		"failed":  failed,
	}).Info("Scheduled monthly dues issuance completed")

	return issued, skipped, failed
}

// dueDateFor places the configured day of month inside the month containing
// now, clamped to the month's last day so a day like 31 never rolls over
// into the next month.
func dueDateFor(now time.Time, day int) time.Time {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastDay := firstOfMonth.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	if day < 1 {
		day = 1
	}
	return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
}
