package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"rentora.backend/internal/domain/entities"
	"rentora.backend/internal/domain/repositories"
	"rentora.backend/internal/infrastructure/email"
	"rentora.backend/pkg/logger"
	"rentora.backend/pkg/redis"
)

// dedupeTTL keeps a sent-marker long enough to survive overlapping
// scheduler runs without suppressing the next day's reminder.
const dedupeTTL = 20 * time.Hour

// ReminderScan is a single stateless pass over upcoming and overdue
// rent payments. It is meant to be triggered by an external scheduler
// (cron, systemd timer); it holds no timers of its own, so concurrent
// runs on different hosts stay safe through the redis sent-markers.
type ReminderScan struct {
	paymentRepo repositories.PaymentRepository
	leaseRepo   repositories.LeaseRepository
	userRepo    repositories.UserRepository
	mailer      email.Sender

	// window is how far ahead of the due date upcoming reminders go out
	window time.Duration
}

// NewReminderScan creates a reminder scan pass
func NewReminderScan(
	paymentRepo repositories.PaymentRepository,
	leaseRepo repositories.LeaseRepository,
	userRepo repositories.UserRepository,
	mailer email.Sender,
	window time.Duration,
) *ReminderScan {
	return &ReminderScan{
		paymentRepo: paymentRepo,
		leaseRepo:   leaseRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		window:      window,
	}
}

// Run executes one scan. Individual send failures are logged and
// skipped so one bad address cannot stall the whole batch.
func (s *ReminderScan) Run(ctx context.Context) error {
	now := time.Now()

	upcoming, err := s.paymentRepo.GetDueBetween(ctx, now, now.Add(s.window))
	if err != nil {
		return fmt.Errorf("fetch upcoming payments: %w", err)
	}
	overdue, err := s.paymentRepo.GetOverdue(ctx, now)
	if err != nil {
		return fmt.Errorf("fetch overdue payments: %w", err)
	}

	logger.Info(ctx, "reminder scan started",
		zap.Int("upcoming", len(upcoming)),
		zap.Int("overdue", len(overdue)))

	sent := 0
	for _, p := range upcoming {
		if s.remind(ctx, p, "upcoming") {
			sent++
		}
	}
	for _, p := range overdue {
		if s.remind(ctx, p, "overdue") {
			sent++
		}
	}

	logger.Info(ctx, "reminder scan finished", zap.Int("sent", sent))
	return nil
}

// remind sends a single reminder unless another run already claimed it
func (s *ReminderScan) remind(ctx context.Context, payment *entities.RentPayment, kind string) bool {
	key := fmt.Sprintf("reminder:%s:%s:%s", payment.ID, kind, time.Now().Format("2006-01-02"))
	claimed, err := redis.SetNX(ctx, key, "1", dedupeTTL)
	if err != nil {
		logger.Warn(ctx, "reminder dedupe check failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !claimed {
		return false
	}

	lease, err := s.leaseRepo.GetByID(ctx, payment.LeaseID)
	if err != nil {
		logger.Warn(ctx, "reminder lease lookup failed", zap.String("payment_id", payment.ID.String()), zap.Error(err))
		return false
	}
	tenant, err := s.userRepo.GetByID(ctx, lease.TenantID)
	if err != nil {
		logger.Warn(ctx, "reminder tenant lookup failed", zap.String("payment_id", payment.ID.String()), zap.Error(err))
		return false
	}

	subject := "Rent payment due soon"
	body := fmt.Sprintf("<p>Your rent payment of BDT %.2f is due on %s.</p>",
		payment.Amount, payment.DueDate.Format("2006-01-02"))
	if kind == "overdue" {
		subject = "Rent payment overdue"
		body = fmt.Sprintf("<p>Your rent payment of BDT %.2f was due on %s and is still pending.</p>",
			payment.Amount, payment.DueDate.Format("2006-01-02"))
	}

	if err := s.mailer.Send(ctx, tenant.Email, subject, body); err != nil {
		logger.Warn(ctx, "reminder email failed", zap.String("to", tenant.Email), zap.Error(err))
		// Drop the claim so the next run retries this payment
		if delErr := redis.Del(ctx, key); delErr != nil {
			logger.Warn(ctx, "reminder claim release failed", zap.String("key", key), zap.Error(delErr))
		}
		return false
	}

	return true
}
