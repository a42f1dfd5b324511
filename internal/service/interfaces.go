package service

import "github.com/renewalhq/renewal-gateway/internal/models"

// WhatsAppService manages WhatsApp Business accounts, templates, outbound
// messages and inbound webhook traffic.
type WhatsAppService interface {
	CreateAccount(req *models.CreateAccountRequest) (*models.Account, error)
	GetAccount(id int64) (*models.Account, error)
	ListAccounts() ([]*models.Account, error)
	UpdateAccount(id int64, req *models.UpdateAccountRequest) (*models.Account, error)
	DeleteAccount(id int64) error
	CheckAccountHealth(id int64) (*models.AccountHealthLog, error)
	RunHealthSweep() error

	CreateTemplate(req *models.CreateTemplateRequest) (*models.Template, error)
	ListTemplates(accountID int64) ([]*models.Template, error)

	SendMessage(req *models.SendMessageRequest) (*models.SendMessageResponse, error)
	ListMessages(accountID int64, page, limit int) (*MessageListResult, error)

	// VerifyWebhook handles the provider subscription handshake and returns
	// the challenge to echo back.
	VerifyWebhook(mode, token, challenge string) (string, error)
	// ProcessWebhook stores and classifies an inbound event payload.
	ProcessWebhook(payload []byte) (*models.WebhookEvent, error)

	CircuitBreakerStatus() (state CircuitState, requests uint32, failures uint32)
}

// EmailService manages SMTP providers and dispatches email with
// priority-ordered failover.
type EmailService interface {
	CreateProvider(req *models.CreateProviderRequest) (*models.EmailProvider, error)
	GetProvider(id int64) (*models.EmailProvider, error)
	ListProviders() ([]*models.EmailProvider, error)
	UpdateProvider(id int64, req *models.UpdateProviderRequest) (*models.EmailProvider, error)
	DeleteProvider(id int64) error
	CheckProviderHealth(id int64) (*models.EmailHealthLog, error)
	RunHealthSweep() error

	Send(req *models.SendEmailRequest) (*models.SendEmailResponse, error)
}

// PaymentService exposes outstanding installment queries, settlement and
// payment plan creation for renewal cases.
type PaymentService interface {
	OutstandingSummary(caseID int64) (*models.OutstandingSummary, error)
	InitiatePayment(caseID int64, req *models.PaymentInitiationRequest) (*models.PaymentInitiationResponse, error)
	SetupPaymentPlan(caseID int64, req *models.PaymentPlanRequest) (*models.PaymentPlanResponse, error)

	// SweepOverdue marks past-due pending installments overdue and returns
	// how many rows changed.
	SweepOverdue() (int64, error)
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth() *HealthStatus
}
