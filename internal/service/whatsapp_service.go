package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/renewalhq/renewal-gateway/internal/config"
	"github.com/renewalhq/renewal-gateway/internal/crypto"
	"github.com/renewalhq/renewal-gateway/internal/models"
	"github.com/renewalhq/renewal-gateway/internal/repository"
)

const (
	defaultDailyLimit         = 1000
	defaultMonthlyLimit       = 10000
	defaultRateLimitPerMinute = 60
	defaultTemplateLanguage   = "en"
)

type whatsAppService struct {
	cfg            *config.Config
	repo           repository.Repository
	redisClient    *redis.Client
	graph          *graphClient
	box            *crypto.Box
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker

	mu       sync.Mutex
	limiters map[int64]*accountLimiter
}

// accountLimiter pins a token bucket to the per-minute rate it was built
// with, so a config change on the account rebuilds the bucket.
type accountLimiter struct {
	limiter   *rate.Limiter
	perMinute int
}

func NewWhatsAppService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	box *crypto.Box,
	logger *zap.Logger,
) WhatsAppService {
	cb := NewCircuitBreaker(&cfg.WhatsApp.CircuitBreaker, logger)

	return &whatsAppService{
		cfg:            cfg,
		repo:           repo,
		redisClient:    redisClient,
		graph:          newGraphClient(cfg.WhatsApp.GraphAPIBaseURL, time.Duration(cfg.WhatsApp.Timeout)*time.Second),
		box:            box,
		logger:         logger,
		circuitBreaker: cb,
		limiters:       make(map[int64]*accountLimiter),
	}
}

func (s *whatsAppService) CreateAccount(req *models.CreateAccountRequest) (*models.Account, error) {
	if req.Name == "" || req.WabaID == "" || req.AccessToken == "" || req.WebhookVerifyToken == "" {
		return nil, fmt.Errorf("%w: name, waba_id, access_token and webhook_verify_token are required", ErrInvalidRequest)
	}

	sealedToken, err := s.box.Seal(req.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}

	account := &models.Account{
		Name:               req.Name,
		WabaID:             req.WabaID,
		AccessToken:        sealedToken,
		WebhookVerifyToken: req.WebhookVerifyToken,
		Status:             models.AccountStatusPending,
		HealthStatus:       models.HealthStatusUnknown,
		DailyLimit:         req.DailyLimit,
		MonthlyLimit:       req.MonthlyLimit,
		RateLimitPerMinute: req.RateLimitPerMinute,
		GreetingMessage:    req.GreetingMessage,
		FallbackMessage:    req.FallbackMessage,
		AutoReply:          req.AutoReply,
		IsDefault:          req.IsDefault,
		IsActive:           true,
	}
	if account.DailyLimit <= 0 {
		account.DailyLimit = defaultDailyLimit
	}
	if account.MonthlyLimit <= 0 {
		account.MonthlyLimit = defaultMonthlyLimit
	}
	if account.RateLimitPerMinute <= 0 {
		account.RateLimitPerMinute = defaultRateLimitPerMinute
	}

	if err := s.repo.Account().Create(account); err != nil {
		return nil, err
	}

	if req.PhoneNumberID != "" && req.PhoneNumber != "" {
		phone := &models.PhoneNumber{
			AccountID:     account.ID,
			PhoneNumberID: req.PhoneNumberID,
			PhoneNumber:   req.PhoneNumber,
			Status:        models.PhoneNumberStatusPending,
			IsPrimary:     true,
			IsActive:      true,
		}
		if err := s.repo.Account().CreatePhoneNumber(phone); err != nil {
			return nil, err
		}
	}

	s.logger.Info("WhatsApp account created",
		zap.Int64("accountID", account.ID),
		zap.String("wabaID", account.WabaID))

	return account, nil
}

func (s *whatsAppService) GetAccount(id int64) (*models.Account, error) {
	return s.repo.Account().GetByID(id)
}

func (s *whatsAppService) ListAccounts() ([]*models.Account, error) {
	return s.repo.Account().List()
}

func (s *whatsAppService) UpdateAccount(id int64, req *models.UpdateAccountRequest) (*models.Account, error) {
	account, err := s.repo.Account().GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccessToken != nil {
		sealed, err := s.box.Seal(*req.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt access token: %w", err)
		}
		account.AccessToken = sealed
	}
	if req.WebhookVerifyToken != nil {
		account.WebhookVerifyToken = *req.WebhookVerifyToken
	}
	if req.Status != nil {
		account.Status = models.AccountStatus(*req.Status)
	}
	if req.DailyLimit != nil {
		account.DailyLimit = *req.DailyLimit
	}
	if req.MonthlyLimit != nil {
		account.MonthlyLimit = *req.MonthlyLimit
	}
	if req.RateLimitPerMinute != nil {
		account.RateLimitPerMinute = *req.RateLimitPerMinute
	}
	if req.GreetingMessage != nil {
		account.GreetingMessage = *req.GreetingMessage
	}
	if req.FallbackMessage != nil {
		account.FallbackMessage = *req.FallbackMessage
	}
	if req.AutoReply != nil {
		account.AutoReply = *req.AutoReply
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	if err := s.repo.Account().Update(account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *whatsAppService) DeleteAccount(id int64) error {
	if err := s.repo.Account().SoftDelete(id); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.limiters, id)
	s.mu.Unlock()

	return nil
}

// CheckAccountHealth probes the WABA node on the Graph API and records the
// outcome on the account and in the health log.
func (s *whatsAppService) CheckAccountHealth(id int64) (*models.AccountHealthLog, error) {
	account, err := s.repo.Account().GetByID(id)
	if err != nil {
		return nil, err
	}

	token, err := s.box.Open(account.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.WhatsApp.Timeout)*time.Second)
	defer cancel()

	started := time.Now()
	probeErr := s.graph.CheckAccount(ctx, token, account.WabaID)
	elapsed := time.Since(started)

	status := models.HealthStatusHealthy
	var errMsg sql.NullString
	if probeErr != nil {
		status = models.HealthStatusUnhealthy
		errMsg = sql.NullString{String: probeErr.Error(), Valid: true}
	}

	checkedAt := time.Now()
	details, _ := json.Marshal(map[string]interface{}{
		"waba_id":          account.WabaID,
		"response_time_ms": elapsed.Milliseconds(),
	})

	log := &models.AccountHealthLog{
		AccountID:    account.ID,
		HealthStatus: status,
		Details:      details,
		ErrorMessage: errMsg,
		CheckedAt:    checkedAt,
	}

	if err := s.repo.Account().UpdateHealth(account.ID, status, checkedAt); err != nil {
		return nil, err
	}
	if err := s.repo.Account().InsertHealthLog(log); err != nil {
		return nil, err
	}

	if probeErr != nil {
		s.logger.Warn("WhatsApp account health check failed",
			zap.Int64("accountID", account.ID),
			zap.Error(probeErr))
	}

	return log, nil
}

// RunHealthSweep checks every active account. Individual failures are logged
// and do not abort the sweep.
func (s *whatsAppService) RunHealthSweep() error {
	accounts, err := s.repo.Account().ListActive()
	if err != nil {
		return fmt.Errorf("failed to list active accounts: %w", err)
	}

	for _, account := range accounts {
		if _, err := s.CheckAccountHealth(account.ID); err != nil {
			s.logger.Error("Health sweep failed for account",
				zap.Int64("accountID", account.ID),
				zap.Error(err))
		}
	}

	return nil
}

func (s *whatsAppService) CreateTemplate(req *models.CreateTemplateRequest) (*models.Template, error) {
	if req.AccountID == 0 || req.Name == "" || req.BodyText == "" {
		return nil, fmt.Errorf("%w: account_id, name and body_text are required", ErrInvalidRequest)
	}
	if _, err := s.repo.Account().GetByID(req.AccountID); err != nil {
		return nil, err
	}

	template := &models.Template{
		AccountID: req.AccountID,
		Name:      req.Name,
		Category:  req.Category,
		Language:  req.Language,
		BodyText:  req.BodyText,
		Status:    models.TemplateStatusPending,
	}
	if template.Language == "" {
		template.Language = defaultTemplateLanguage
	}
	if req.HeaderText != "" {
		template.HeaderText = sql.NullString{String: req.HeaderText, Valid: true}
	}
	if req.FooterText != "" {
		template.FooterText = sql.NullString{String: req.FooterText, Valid: true}
	}

	if err := s.repo.Template().Create(template); err != nil {
		return nil, err
	}

	return template, nil
}

func (s *whatsAppService) ListTemplates(accountID int64) ([]*models.Template, error) {
	return s.repo.Template().ListByAccount(accountID)
}

// SendMessage dispatches one outbound message through the Graph API. Usage
// counters only move after the provider accepts the message; a refused or
// failed send leaves them untouched.
func (s *whatsAppService) SendMessage(req *models.SendMessageRequest) (*models.SendMessageResponse, error) {
	if err := validateSendRequest(req); err != nil {
		return nil, err
	}

	account, err := s.repo.Account().GetByID(req.AccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !account.CanSend(now) {
		return nil, refusalReason(account, now)
	}

	if lim := s.limiterFor(account); lim != nil && !lim.Allow() {
		return nil, ErrRateLimited
	}

	phone, err := s.repo.Account().PrimaryPhoneNumber(account.ID)
	if err != nil {
		return nil, fmt.Errorf("no primary phone number for account %d: %w", account.ID, err)
	}

	token, err := s.box.Open(account.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}

	payload, templateID, err := s.buildPayload(account.ID, req)
	if err != nil {
		return nil, err
	}
	content, _ := json.Marshal(payload)

	msg := &models.Message{
		AccountID:     account.ID,
		PhoneNumberID: phone.ID,
		Direction:     models.DirectionOutbound,
		MessageType:   models.MessageType(req.Type),
		ToPhone:       req.To,
		FromPhone:     phone.PhoneNumber,
		Content:       content,
		TemplateID:    templateID,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.WhatsApp.Timeout)*time.Second)
	defer cancel()

	var providerMessageID string
	sendErr := s.circuitBreaker.Execute(ctx, func() error {
		id, err := s.graph.SendMessage(ctx, token, phone.PhoneNumberID, payload)
		if err != nil {
			return err
		}
		providerMessageID = id
		return nil
	})

	if sendErr != nil {
		msg.MessageID = fmt.Sprintf("failed-%d-%d", account.ID, now.UnixNano())
		msg.Status = models.MessageStatusFailed
		msg.ErrorMessage = sql.NullString{String: sendErr.Error(), Valid: true}
		if err := s.repo.Message().Create(msg); err != nil {
			s.logger.Error("Failed to record failed message", zap.Error(err))
		}
		if err := s.repo.Account().RecordUsage(account.ID, now, 0, 0, 1, 0); err != nil {
			s.logger.Error("Failed to record usage", zap.Error(err))
		}

		requests, failures := s.circuitBreaker.GetCounts()
		s.logger.Error("Failed to send message",
			zap.Int64("accountID", account.ID),
			zap.Error(sendErr),
			zap.String("circuitBreakerState", string(s.circuitBreaker.GetState())),
			zap.Uint32("totalRequests", requests),
			zap.Uint32("totalFailures", failures))

		return nil, fmt.Errorf("%w: %s", ErrSendFailed, sendErr.Error())
	}

	msg.MessageID = providerMessageID
	msg.Status = models.MessageStatusSent
	msg.SentAt = sql.NullTime{Time: now, Valid: true}
	if err := s.repo.Message().Create(msg); err != nil {
		return nil, err
	}

	if err := s.repo.Account().IncrementUsage(account.ID, now); err != nil {
		s.logger.Error("Failed to increment usage counters", zap.Error(err))
	}
	if err := s.repo.Account().RecordUsage(account.ID, now, 1, 0, 0, 0); err != nil {
		s.logger.Error("Failed to record usage", zap.Error(err))
	}
	if templateID.Valid {
		if err := s.repo.Template().IncrementUsage(templateID.Int64, now); err != nil {
			s.logger.Error("Failed to increment template usage", zap.Error(err))
		}
	}

	cacheKey := fmt.Sprintf("message:%s", providerMessageID)
	cacheValue := fmt.Sprintf("%d:%s", msg.ID, now.Format(time.RFC3339))
	if err := s.redisClient.Set(ctx, cacheKey, cacheValue, 24*time.Hour).Err(); err != nil {
		s.logger.Warn("Failed to cache message ID in Redis",
			zap.String("messageID", providerMessageID),
			zap.Error(err))
	}

	s.logger.Info("Message sent successfully",
		zap.Int64("accountID", account.ID),
		zap.String("messageID", providerMessageID))

	return &models.SendMessageResponse{
		MessageID: providerMessageID,
		Status:    models.MessageStatusSent,
	}, nil
}

func validateSendRequest(req *models.SendMessageRequest) error {
	if req.AccountID == 0 || req.To == "" {
		return fmt.Errorf("%w: account_id and to are required", ErrInvalidRequest)
	}
	switch models.MessageType(req.Type) {
	case models.MessageTypeText:
		if req.Text == "" {
			return fmt.Errorf("%w: text is required for text messages", ErrInvalidRequest)
		}
	case models.MessageTypeTemplate:
		if req.TemplateName == "" {
			return fmt.Errorf("%w: template_name is required for template messages", ErrInvalidRequest)
		}
	default:
		return fmt.Errorf("%w: unsupported message type %q", ErrInvalidRequest, req.Type)
	}
	return nil
}

// refusalReason names which gate blocked the send.
func refusalReason(account *models.Account, now time.Time) error {
	if !account.IsActive || account.Status != models.AccountStatusVerified {
		return ErrAccountNotSendable
	}

	sentToday := account.SentToday
	if account.LastResetDaily.Format("2006-01-02") != now.Format("2006-01-02") {
		sentToday = 0
	}
	if sentToday >= account.DailyLimit {
		return ErrDailyLimitExceeded
	}

	return ErrMonthlyLimitExceeded
}

func (s *whatsAppService) limiterFor(account *models.Account) *rate.Limiter {
	if account.RateLimitPerMinute <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.limiters[account.ID]; ok && l.perMinute == account.RateLimitPerMinute {
		return l.limiter
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(account.RateLimitPerMinute)), account.RateLimitPerMinute)
	s.limiters[account.ID] = &accountLimiter{limiter: limiter, perMinute: account.RateLimitPerMinute}
	return limiter
}

func (s *whatsAppService) buildPayload(accountID int64, req *models.SendMessageRequest) (interface{}, sql.NullInt64, error) {
	var templateID sql.NullInt64

	switch models.MessageType(req.Type) {
	case models.MessageTypeText:
		payload := map[string]interface{}{
			"messaging_product": "whatsapp",
			"to":                req.To,
			"type":              "text",
			"text":              map[string]string{"body": req.Text},
		}
		return payload, templateID, nil

	case models.MessageTypeTemplate:
		language := req.Language
		if language == "" {
			language = defaultTemplateLanguage
		}

		template, err := s.repo.Template().GetByName(accountID, req.TemplateName, language)
		if err != nil {
			return nil, templateID, err
		}
		if !template.Approved() {
			return nil, templateID, ErrTemplateNotApproved
		}
		templateID = sql.NullInt64{Int64: template.ID, Valid: true}

		tpl := map[string]interface{}{
			"name":     template.Name,
			"language": map[string]string{"code": template.Language},
		}
		if len(req.Params) > 0 {
			params := make([]map[string]string, 0, len(req.Params))
			for _, p := range req.Params {
				params = append(params, map[string]string{"type": "text", "text": p})
			}
			tpl["components"] = []map[string]interface{}{
				{"type": "body", "parameters": params},
			}
		}

		payload := map[string]interface{}{
			"messaging_product": "whatsapp",
			"to":                req.To,
			"type":              "template",
			"template":          tpl,
		}
		return payload, templateID, nil
	}

	return nil, templateID, fmt.Errorf("%w: unsupported message type %q", ErrInvalidRequest, req.Type)
}

func (s *whatsAppService) ListMessages(accountID int64, page, limit int) (*MessageListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	messages, err := s.repo.Message().List(accountID, offset, limit)
	if err != nil {
		return nil, err
	}

	totalCount, err := s.repo.Message().Count(accountID)
	if err != nil {
		return nil, err
	}

	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	return &MessageListResult{
		Messages: messages,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   int(totalCount),
			ItemsPerPage: limit,
		},
	}, nil
}

// VerifyWebhook handles the Graph API subscription handshake. The verify
// token must belong to a registered account.
func (s *whatsAppService) VerifyWebhook(mode, token, challenge string) (string, error) {
	if mode != "subscribe" || token == "" {
		return "", ErrVerifyTokenMismatch
	}

	if _, err := s.repo.Account().GetByVerifyToken(token); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrVerifyTokenMismatch
		}
		return "", err
	}

	return challenge, nil
}

// webhookPayload mirrors the value object of Graph API webhook deliveries.
type webhookPayload struct {
	Metadata struct {
		PhoneNumberID string `json:"phone_number_id"`
	} `json:"metadata"`
	Messages []struct {
		From      string `json:"from"`
		ID        string `json:"id"`
		Timestamp string `json:"timestamp"`
		Type      string `json:"type"`
		Text      struct {
			Body string `json:"body"`
		} `json:"text"`
	} `json:"messages"`
	Statuses []struct {
		ID        string `json:"id"`
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
		Errors    []struct {
			Code  int    `json:"code"`
			Title string `json:"title"`
		} `json:"errors"`
	} `json:"statuses"`
	TemplateStatusUpdate *struct {
		Event             string `json:"event"`
		MessageTemplateID string `json:"message_template_id"`
		Reason            string `json:"reason"`
	} `json:"message_template_status_update"`
}

// ProcessWebhook stores the raw event, classifies it and applies its side
// effects. Unparseable or unknown payloads are still persisted for audit.
func (s *whatsAppService) ProcessWebhook(raw []byte) (*models.WebhookEvent, error) {
	var payload webhookPayload
	parseErr := json.Unmarshal(raw, &payload)

	event := &models.WebhookEvent{
		EventType: classifyEvent(&payload, parseErr),
		Payload:   raw,
	}

	if payload.Metadata.PhoneNumberID != "" {
		if phone, err := s.repo.Account().PhoneNumberByProviderID(payload.Metadata.PhoneNumberID); err == nil {
			event.AccountID = sql.NullInt64{Int64: phone.AccountID, Valid: true}
		}
	}

	if err := s.repo.Webhook().Create(event); err != nil {
		return nil, err
	}

	var processingError *string
	if parseErr != nil {
		msg := parseErr.Error()
		processingError = &msg
	} else if err := s.applyWebhook(event, &payload); err != nil {
		msg := err.Error()
		processingError = &msg
		s.logger.Error("Failed to apply webhook event",
			zap.Int64("eventID", event.ID),
			zap.Error(err))
	}

	if err := s.repo.Webhook().MarkProcessed(event.ID, processingError); err != nil {
		return nil, err
	}

	event.Processed = true
	if processingError != nil {
		event.ProcessingError = sql.NullString{String: *processingError, Valid: true}
	}

	return event, nil
}

func classifyEvent(payload *webhookPayload, parseErr error) models.WebhookEventType {
	switch {
	case parseErr != nil:
		return models.EventTypeUnknown
	case len(payload.Messages) > 0:
		return models.EventTypeMessage
	case len(payload.Statuses) > 0:
		return models.EventTypeMessageStatus
	case payload.TemplateStatusUpdate != nil:
		return models.EventTypeTemplateStatus
	default:
		return models.EventTypeUnknown
	}
}

func (s *whatsAppService) applyWebhook(event *models.WebhookEvent, payload *webhookPayload) error {
	switch event.EventType {
	case models.EventTypeMessageStatus:
		return s.applyStatusUpdates(event, payload)
	case models.EventTypeMessage:
		return s.applyInboundMessages(event, payload)
	case models.EventTypeTemplateStatus:
		upd := payload.TemplateStatusUpdate
		status := models.TemplateStatusRejected
		if upd.Event == "APPROVED" {
			status = models.TemplateStatusApproved
		}
		return s.repo.Template().UpdateStatusByMetaID(upd.MessageTemplateID, status, upd.Reason)
	}
	return nil
}

func (s *whatsAppService) applyStatusUpdates(event *models.WebhookEvent, payload *webhookPayload) error {
	for _, st := range payload.Statuses {
		status, ok := mapProviderStatus(st.Status)
		if !ok {
			s.logger.Warn("Unknown provider message status", zap.String("status", st.Status))
			continue
		}

		var errCode, errMsg *string
		if len(st.Errors) > 0 {
			code := strconv.Itoa(st.Errors[0].Code)
			title := st.Errors[0].Title
			errCode, errMsg = &code, &title
		}

		at := parseProviderTimestamp(st.Timestamp)
		if err := s.repo.Message().UpdateStatus(st.ID, status, errCode, errMsg, at); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.logger.Warn("Status update for unknown message", zap.String("messageID", st.ID))
				continue
			}
			return err
		}

		if event.AccountID.Valid {
			var delivered, failed, read int
			switch status {
			case models.MessageStatusDelivered:
				delivered = 1
			case models.MessageStatusFailed:
				failed = 1
			case models.MessageStatusRead:
				read = 1
			}
			if delivered+failed+read > 0 {
				if err := s.repo.Account().RecordUsage(event.AccountID.Int64, at, 0, delivered, failed, read); err != nil {
					s.logger.Error("Failed to record usage from status update", zap.Error(err))
				}
			}
		}
	}
	return nil
}

func (s *whatsAppService) applyInboundMessages(event *models.WebhookEvent, payload *webhookPayload) error {
	if !event.AccountID.Valid {
		return fmt.Errorf("inbound message for unknown phone number %q", payload.Metadata.PhoneNumberID)
	}

	phone, err := s.repo.Account().PhoneNumberByProviderID(payload.Metadata.PhoneNumberID)
	if err != nil {
		return err
	}

	for _, in := range payload.Messages {
		content, _ := json.Marshal(map[string]string{"type": in.Type, "body": in.Text.Body})
		msg := &models.Message{
			AccountID:     event.AccountID.Int64,
			PhoneNumberID: phone.ID,
			MessageID:     in.ID,
			Direction:     models.DirectionInbound,
			MessageType:   models.MessageTypeText,
			ToPhone:       phone.PhoneNumber,
			FromPhone:     in.From,
			Content:       content,
			Status:        models.MessageStatusDelivered,
		}
		if err := s.repo.Message().Create(msg); err != nil {
			return err
		}
	}
	return nil
}

func mapProviderStatus(status string) (models.MessageStatus, bool) {
	switch status {
	case "sent":
		return models.MessageStatusSent, true
	case "delivered":
		return models.MessageStatusDelivered, true
	case "read":
		return models.MessageStatusRead, true
	case "failed":
		return models.MessageStatusFailed, true
	}
	return "", false
}

func parseProviderTimestamp(ts string) time.Time {
	if secs, err := strconv.ParseInt(ts, 10, 64); err == nil && secs > 0 {
		return time.Unix(secs, 0)
	}
	return time.Now()
}

func (s *whatsAppService) CircuitBreakerStatus() (CircuitState, uint32, uint32) {
	state := s.circuitBreaker.GetState()
	requests, failures := s.circuitBreaker.GetCounts()
	return state, requests, failures
}
