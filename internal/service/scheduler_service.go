package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/renewalhq/renewal-gateway/internal/config"
	"github.com/renewalhq/renewal-gateway/internal/repository"
	"github.com/renewalhq/renewal-gateway/internal/scheduler"
)

type schedulerService struct {
	scheduler       *scheduler.Scheduler
	repo            repository.Repository
	whatsappService WhatsAppService
	emailService    EmailService
	paymentService  PaymentService
	logger          *zap.Logger
}

func NewSchedulerService(
	cfg *config.Config,
	repo repository.Repository,
	whatsappService WhatsAppService,
	emailService EmailService,
	paymentService PaymentService,
	logger *zap.Logger,
) SchedulerService {
	interval := time.Duration(cfg.Scheduler.IntervalMinutes) * time.Minute

	svc := &schedulerService{
		repo:            repo,
		whatsappService: whatsappService,
		emailService:    emailService,
		paymentService:  paymentService,
		logger:          logger,
	}

	svc.scheduler = scheduler.NewScheduler(logger, interval, svc.executeMaintenanceTask)
	return svc
}

func (s *schedulerService) Start() error {
	ctx := context.Background()
	return s.scheduler.Start(ctx)
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

// executeMaintenanceTask is the periodic sweep: counter rollovers, overdue
// stamping and health probes. Each step runs even when earlier steps fail.
func (s *schedulerService) executeMaintenanceTask(_ context.Context) error {
	now := time.Now()
	var errs []error

	if err := s.repo.Account().ResetStaleCounters(now); err != nil {
		s.logger.Error("Failed to reset account counters", zap.Error(err))
		errs = append(errs, err)
	}
	if err := s.repo.Email().ResetStaleCounters(now); err != nil {
		s.logger.Error("Failed to reset email provider counters", zap.Error(err))
		errs = append(errs, err)
	}
	if _, err := s.paymentService.SweepOverdue(); err != nil {
		s.logger.Error("Failed to sweep overdue installments", zap.Error(err))
		errs = append(errs, err)
	}
	if err := s.whatsappService.RunHealthSweep(); err != nil {
		s.logger.Error("WhatsApp health sweep failed", zap.Error(err))
		errs = append(errs, err)
	}
	if err := s.emailService.RunHealthSweep(); err != nil {
		s.logger.Error("Email health sweep failed", zap.Error(err))
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
