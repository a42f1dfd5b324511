package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/renewalhq/renewal-gateway/internal/config"
	"github.com/renewalhq/renewal-gateway/internal/crypto"
	"github.com/renewalhq/renewal-gateway/internal/models"
	"github.com/renewalhq/renewal-gateway/internal/repository"
)

const credentialCacheKeyFormat = "email:credentials:%d"

type emailService struct {
	cfg         *config.Config
	repo        repository.Repository
	redisClient *redis.Client
	box         *crypto.Box
	sender      SMTPSender
	logger      *zap.Logger
}

func NewEmailService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	box *crypto.Box,
	sender SMTPSender,
	logger *zap.Logger,
) EmailService {
	return &emailService{
		cfg:         cfg,
		repo:        repo,
		redisClient: redisClient,
		box:         box,
		sender:      sender,
		logger:      logger,
	}
}

func (s *emailService) CreateProvider(req *models.CreateProviderRequest) (*models.EmailProvider, error) {
	if req.Name == "" || req.Host == "" || req.Port == 0 || req.FromEmail == "" {
		return nil, fmt.Errorf("%w: name, host, port and from_email are required", ErrInvalidRequest)
	}

	sealed, err := s.box.Seal(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt password: %w", err)
	}

	provider := &models.EmailProvider{
		Name:               req.Name,
		Host:               req.Host,
		Port:               req.Port,
		Username:           req.Username,
		Password:           sealed,
		UseTLS:             req.UseTLS,
		UseSSL:             req.UseSSL,
		FromEmail:          req.FromEmail,
		Priority:           req.Priority,
		IsDefault:          req.IsDefault,
		IsActive:           true,
		DailyLimit:         req.DailyLimit,
		MonthlyLimit:       req.MonthlyLimit,
		RateLimitPerMinute: req.RateLimitPerMinute,
		HealthStatus:       models.ProviderUnknown,
	}
	if req.FromName != "" {
		provider.FromName = sql.NullString{String: req.FromName, Valid: true}
	}
	if req.ReplyTo != "" {
		provider.ReplyTo = sql.NullString{String: req.ReplyTo, Valid: true}
	}
	if provider.DailyLimit <= 0 {
		provider.DailyLimit = defaultDailyLimit
	}
	if provider.MonthlyLimit <= 0 {
		provider.MonthlyLimit = defaultMonthlyLimit
	}
	if provider.RateLimitPerMinute <= 0 {
		provider.RateLimitPerMinute = defaultRateLimitPerMinute
	}

	if err := s.repo.Email().Create(provider); err != nil {
		return nil, err
	}

	s.logger.Info("Email provider created",
		zap.Int64("providerID", provider.ID),
		zap.String("host", provider.Host))

	return provider, nil
}

func (s *emailService) GetProvider(id int64) (*models.EmailProvider, error) {
	return s.repo.Email().GetByID(id)
}

func (s *emailService) ListProviders() ([]*models.EmailProvider, error) {
	return s.repo.Email().List()
}

func (s *emailService) UpdateProvider(id int64, req *models.UpdateProviderRequest) (*models.EmailProvider, error) {
	provider, err := s.repo.Email().GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		provider.Name = *req.Name
	}
	if req.Host != nil {
		provider.Host = *req.Host
	}
	if req.Port != nil {
		provider.Port = *req.Port
	}
	if req.Username != nil {
		provider.Username = *req.Username
	}
	if req.Password != nil {
		sealed, err := s.box.Seal(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt password: %w", err)
		}
		provider.Password = sealed
	}
	if req.UseTLS != nil {
		provider.UseTLS = *req.UseTLS
	}
	if req.UseSSL != nil {
		provider.UseSSL = *req.UseSSL
	}
	if req.FromEmail != nil {
		provider.FromEmail = *req.FromEmail
	}
	if req.Priority != nil {
		provider.Priority = *req.Priority
	}
	if req.IsDefault != nil {
		provider.IsDefault = *req.IsDefault
	}
	if req.IsActive != nil {
		provider.IsActive = *req.IsActive
	}
	if req.DailyLimit != nil {
		provider.DailyLimit = *req.DailyLimit
	}
	if req.MonthlyLimit != nil {
		provider.MonthlyLimit = *req.MonthlyLimit
	}

	if err := s.repo.Email().Update(provider); err != nil {
		return nil, err
	}

	s.dropCachedCredentials(id)
	return provider, nil
}

func (s *emailService) DeleteProvider(id int64) error {
	if err := s.repo.Email().SoftDelete(id); err != nil {
		return err
	}
	s.dropCachedCredentials(id)
	return nil
}

// CheckProviderHealth opens an authenticated SMTP session and records the
// timed outcome on the provider and in the health log.
func (s *emailService) CheckProviderHealth(id int64) (*models.EmailHealthLog, error) {
	provider, err := s.repo.Email().GetByID(id)
	if err != nil {
		return nil, err
	}

	password, err := s.credentials(provider)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	probeErr := s.sender.Probe(provider, password)
	elapsed := time.Since(started)

	status := models.ProviderHealthy
	var errMsg sql.NullString
	if probeErr != nil {
		status = models.ProviderUnhealthy
		errMsg = sql.NullString{String: probeErr.Error(), Valid: true}
	}

	checkedAt := time.Now()
	log := &models.EmailHealthLog{
		ProviderID:     provider.ID,
		Status:         status,
		ResponseTimeMS: elapsed.Milliseconds(),
		ErrorMessage:   errMsg,
		CheckedAt:      checkedAt,
	}

	if err := s.repo.Email().UpdateHealth(provider.ID, status, errMsg.String, checkedAt); err != nil {
		return nil, err
	}
	if err := s.repo.Email().InsertHealthLog(log); err != nil {
		return nil, err
	}

	if probeErr != nil {
		s.logger.Warn("Email provider health check failed",
			zap.Int64("providerID", provider.ID),
			zap.Error(probeErr))
	}

	return log, nil
}

// RunHealthSweep checks every available provider. Individual failures are
// logged and do not abort the sweep.
func (s *emailService) RunHealthSweep() error {
	providers, err := s.repo.Email().ListAvailable()
	if err != nil {
		return fmt.Errorf("failed to list available providers: %w", err)
	}

	for _, provider := range providers {
		if _, err := s.CheckProviderHealth(provider.ID); err != nil {
			s.logger.Error("Health sweep failed for provider",
				zap.Int64("providerID", provider.ID),
				zap.Error(err))
		}
	}

	return nil
}

// Send delivers one email. With an explicit provider the send is attempted
// once; without one, providers are tried in priority order until one
// succeeds. Usage counters only move on delivery.
func (s *emailService) Send(req *models.SendEmailRequest) (*models.SendEmailResponse, error) {
	if len(req.To) == 0 || req.Subject == "" || req.Body == "" {
		return nil, fmt.Errorf("%w: to, subject and body are required", ErrInvalidRequest)
	}

	now := time.Now()

	if req.ProviderID != 0 {
		provider, err := s.repo.Email().GetByID(req.ProviderID)
		if err != nil {
			return nil, err
		}
		if !provider.CanSend(now) {
			return nil, fmt.Errorf("%w: provider %d cannot send right now", ErrNoProviderAvailable, provider.ID)
		}
		if err := s.deliver(provider, req, now); err != nil {
			return nil, err
		}
		return &models.SendEmailResponse{ProviderID: provider.ID, ProviderName: provider.Name}, nil
	}

	providers, err := s.repo.Email().ListAvailable()
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, provider := range providers {
		if !provider.CanSend(now) {
			continue
		}
		if err := s.deliver(provider, req, now); err != nil {
			lastErr = err
			s.logger.Warn("Provider send failed, trying next",
				zap.Int64("providerID", provider.ID),
				zap.Error(err))
			continue
		}
		return &models.SendEmailResponse{ProviderID: provider.ID, ProviderName: provider.Name}, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoProviderAvailable, lastErr.Error())
	}
	return nil, ErrNoProviderAvailable
}

func (s *emailService) deliver(provider *models.EmailProvider, req *models.SendEmailRequest, now time.Time) error {
	password, err := s.credentials(provider)
	if err != nil {
		return err
	}

	msg := buildMIMEMessage(provider, req)

	if err := s.sender.Send(provider, password, req.To, msg); err != nil {
		if recErr := s.repo.Email().RecordUsage(provider.ID, now, 0, 1); recErr != nil {
			s.logger.Error("Failed to record email usage", zap.Error(recErr))
		}
		return fmt.Errorf("%w: %s", ErrSendFailed, err.Error())
	}

	if err := s.repo.Email().IncrementUsage(provider.ID, now); err != nil {
		s.logger.Error("Failed to increment email usage counters", zap.Error(err))
	}
	if err := s.repo.Email().RecordUsage(provider.ID, now, 1, 0); err != nil {
		s.logger.Error("Failed to record email usage", zap.Error(err))
	}

	s.logger.Info("Email sent",
		zap.Int64("providerID", provider.ID),
		zap.Int("recipients", len(req.To)))

	return nil
}

// credentials returns the decrypted SMTP password, serving it from Redis
// when cached and decrypting plus caching it otherwise.
func (s *emailService) credentials(provider *models.EmailProvider) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := fmt.Sprintf(credentialCacheKeyFormat, provider.ID)
	cached, err := s.redisClient.Get(ctx, key).Result()
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		s.logger.Warn("Credential cache read failed", zap.Error(err))
	}

	password, err := s.box.Open(provider.Password)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt provider password: %w", err)
	}

	ttl := time.Duration(s.cfg.Email.CredentialCacheTTL) * time.Second
	if err := s.redisClient.Set(ctx, key, password, ttl).Err(); err != nil {
		s.logger.Warn("Credential cache write failed", zap.Error(err))
	}

	return password, nil
}

func (s *emailService) dropCachedCredentials(id int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := fmt.Sprintf(credentialCacheKeyFormat, id)
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("Credential cache invalidation failed", zap.Error(err))
	}
}

func buildMIMEMessage(provider *models.EmailProvider, req *models.SendEmailRequest) []byte {
	from := provider.FromEmail
	if provider.FromName.Valid {
		from = fmt.Sprintf("%s <%s>", provider.FromName.String, provider.FromEmail)
	}

	contentType := "text/plain; charset=UTF-8"
	if req.HTML {
		contentType = "text/html; charset=UTF-8"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(req.To, ", "))
	if provider.ReplyTo.Valid {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", provider.ReplyTo.String)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", req.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(req.Body)

	return []byte(b.String())
}
