package repository

import (
	"time"

	"github.com/renewalhq/renewal-gateway/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Account returns the WhatsApp account repository
	Account() AccountRepository

	// Template returns the message template repository
	Template() TemplateRepository

	// Message returns the WhatsApp message repository
	Message() MessageRepository

	// Webhook returns the webhook event repository
	Webhook() WebhookRepository

	// Email returns the email provider repository
	Email() EmailRepository

	// Payment returns the installments and payment plan repository
	Payment() PaymentRepository
}

// AccountRepository manages WhatsApp Business Account rows and their
// phone numbers, health logs and usage counters.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByID(id int64) (*models.Account, error)
	GetByVerifyToken(token string) (*models.Account, error)
	List() ([]*models.Account, error)
	ListActive() ([]*models.Account, error)
	Update(account *models.Account) error
	SoftDelete(id int64) error

	CreatePhoneNumber(phone *models.PhoneNumber) error
	PrimaryPhoneNumber(accountID int64) (*models.PhoneNumber, error)
	PhoneNumberByProviderID(phoneNumberID string) (*models.PhoneNumber, error)

	// IncrementUsage bumps daily and monthly send counters, resetting either
	// first when its period rolled over. Runs as a single statement.
	IncrementUsage(id int64, now time.Time) error
	// ResetStaleCounters zeroes counters whose day or month has passed.
	ResetStaleCounters(now time.Time) error

	UpdateHealth(id int64, status models.HealthStatus, checkedAt time.Time) error
	InsertHealthLog(log *models.AccountHealthLog) error
	RecordUsage(accountID int64, date time.Time, sent, delivered, failed, read int) error
}

// TemplateRepository manages approved message templates.
type TemplateRepository interface {
	Create(template *models.Template) error
	GetByID(id int64) (*models.Template, error)
	GetByName(accountID int64, name, language string) (*models.Template, error)
	ListByAccount(accountID int64) ([]*models.Template, error)
	UpdateStatusByMetaID(metaTemplateID string, status models.TemplateStatus, reason string) error
	IncrementUsage(id int64, usedAt time.Time) error
}

// MessageRepository manages individual message rows.
type MessageRepository interface {
	Create(message *models.Message) error
	GetByMessageID(messageID string) (*models.Message, error)
	List(accountID int64, offset, limit int) ([]*models.Message, error)
	Count(accountID int64) (int64, error)
	// UpdateStatus applies a provider status transition, stamping
	// delivered_at or read_at as appropriate.
	UpdateStatus(messageID string, status models.MessageStatus, errorCode, errorMessage *string, at time.Time) error
}

// WebhookRepository stores raw inbound provider events.
type WebhookRepository interface {
	Create(event *models.WebhookEvent) error
	MarkProcessed(id int64, processingError *string) error
	ListUnprocessed(limit int) ([]*models.WebhookEvent, error)
}

// EmailRepository manages SMTP provider rows and their health and usage logs.
type EmailRepository interface {
	Create(provider *models.EmailProvider) error
	GetByID(id int64) (*models.EmailProvider, error)
	List() ([]*models.EmailProvider, error)
	// ListAvailable returns active, non-deleted providers ordered by priority.
	ListAvailable() ([]*models.EmailProvider, error)
	Update(provider *models.EmailProvider) error
	SoftDelete(id int64) error

	IncrementUsage(id int64, now time.Time) error
	ResetStaleCounters(now time.Time) error

	// UpdateHealth records the probe outcome; an unhealthy result increments
	// consecutive_failures, anything else clears it.
	UpdateHealth(id int64, status models.ProviderHealth, errMsg string, checkedAt time.Time) error
	InsertHealthLog(log *models.EmailHealthLog) error
	RecordUsage(providerID int64, date time.Time, sent, failed int) error
}

// PaymentRepository manages installments, payments and payment schedules.
type PaymentRepository interface {
	UnpaidInstallments(caseID int64) ([]*models.Installment, error)
	InstallmentsByIDs(caseID int64, ids []int64) ([]*models.Installment, error)

	// CreatePaymentForInstallments inserts the payment and marks every listed
	// installment paid in one transaction; any installment that is already
	// paid aborts the whole transaction.
	CreatePaymentForInstallments(payment *models.Payment, installmentIDs []int64) error

	CreateSchedules(schedules []*models.PaymentSchedule) error
	ListSchedules(caseID int64) ([]*models.PaymentSchedule, error)

	// MarkOverdue flips pending installments whose due date has passed and
	// returns how many rows changed.
	MarkOverdue(now time.Time) (int64, error)
}
