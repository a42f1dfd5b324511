package service

import (
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/renewalhq/renewal-gateway/internal/config"
	"github.com/renewalhq/renewal-gateway/internal/crypto"
	"github.com/renewalhq/renewal-gateway/internal/repository"
)

type Service struct {
	WhatsApp  WhatsAppService
	Email     EmailService
	Payment   PaymentService
	Scheduler SchedulerService
	Health    HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	box *crypto.Box,
	logger *zap.Logger,
) *Service {
	whatsappService := NewWhatsAppService(cfg, repo, redisClient, box, logger)
	emailService := NewEmailService(cfg, repo, redisClient, box,
		NewSMTPSender(time.Duration(cfg.Email.Timeout)*time.Second), logger)
	paymentService := NewPaymentService(repo, logger)
	schedulerService := NewSchedulerService(cfg, repo, whatsappService, emailService, paymentService, logger)
	healthService := NewHealthService(repo, redisClient, schedulerService, whatsappService)

	return &Service{
		WhatsApp:  whatsappService,
		Email:     emailService,
		Payment:   paymentService,
		Scheduler: schedulerService,
		Health:    healthService,
	}
}
