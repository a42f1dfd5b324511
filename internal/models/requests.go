package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request and response bodies for the v1 API. Validation beyond basic shape
// checks lives in the service layer.

type CreateAccountRequest struct {
	Name               string `json:"name"`
	WabaID             string `json:"waba_id"`
	AccessToken        string `json:"access_token"`
	WebhookVerifyToken string `json:"webhook_verify_token"`
	DailyLimit         int    `json:"daily_limit"`
	MonthlyLimit       int    `json:"monthly_limit"`
	RateLimitPerMinute int    `json:"rate_limit_per_minute"`
	GreetingMessage    string `json:"greeting_message"`
	FallbackMessage    string `json:"fallback_message"`
	AutoReply          bool   `json:"auto_reply"`
	IsDefault          bool   `json:"is_default"`
	PhoneNumberID      string `json:"phone_number_id"`
	PhoneNumber        string `json:"phone_number"`
}

type UpdateAccountRequest struct {
	Name               *string `json:"name,omitempty"`
	AccessToken        *string `json:"access_token,omitempty"`
	WebhookVerifyToken *string `json:"webhook_verify_token,omitempty"`
	Status             *string `json:"status,omitempty"`
	DailyLimit         *int    `json:"daily_limit,omitempty"`
	MonthlyLimit       *int    `json:"monthly_limit,omitempty"`
	RateLimitPerMinute *int    `json:"rate_limit_per_minute,omitempty"`
	GreetingMessage    *string `json:"greeting_message,omitempty"`
	FallbackMessage    *string `json:"fallback_message,omitempty"`
	AutoReply          *bool   `json:"auto_reply,omitempty"`
	IsActive           *bool   `json:"is_active,omitempty"`
}

type CreateTemplateRequest struct {
	AccountID  int64  `json:"account_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Language   string `json:"language"`
	HeaderText string `json:"header_text,omitempty"`
	BodyText   string `json:"body_text"`
	FooterText string `json:"footer_text,omitempty"`
}

// SendMessageRequest dispatches one outbound WhatsApp message. TemplateName
// and Params are only consulted when Type is "template".
type SendMessageRequest struct {
	AccountID    int64    `json:"account_id"`
	To           string   `json:"to"`
	Type         string   `json:"type"`
	Text         string   `json:"text,omitempty"`
	TemplateName string   `json:"template_name,omitempty"`
	Language     string   `json:"language,omitempty"`
	Params       []string `json:"params,omitempty"`
}

type SendMessageResponse struct {
	MessageID string        `json:"message_id"`
	Status    MessageStatus `json:"status"`
}

type CreateProviderRequest struct {
	Name               string `json:"name"`
	Host               string `json:"host"`
	Port               int    `json:"port"`
	Username           string `json:"username"`
	Password           string `json:"password"`
	UseTLS             bool   `json:"use_tls"`
	UseSSL             bool   `json:"use_ssl"`
	FromEmail          string `json:"from_email"`
	FromName           string `json:"from_name,omitempty"`
	ReplyTo            string `json:"reply_to,omitempty"`
	Priority           int    `json:"priority"`
	IsDefault          bool   `json:"is_default"`
	DailyLimit         int    `json:"daily_limit"`
	MonthlyLimit       int    `json:"monthly_limit"`
	RateLimitPerMinute int    `json:"rate_limit_per_minute"`
}

type UpdateProviderRequest struct {
	Name         *string `json:"name,omitempty"`
	Host         *string `json:"host,omitempty"`
	Port         *int    `json:"port,omitempty"`
	Username     *string `json:"username,omitempty"`
	Password     *string `json:"password,omitempty"`
	UseTLS       *bool   `json:"use_tls,omitempty"`
	UseSSL       *bool   `json:"use_ssl,omitempty"`
	FromEmail    *string `json:"from_email,omitempty"`
	Priority     *int    `json:"priority,omitempty"`
	IsDefault    *bool   `json:"is_default,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
	DailyLimit   *int    `json:"daily_limit,omitempty"`
	MonthlyLimit *int    `json:"monthly_limit,omitempty"`
}

// SendEmailRequest submits one email. ProviderID zero means "pick the best
// available provider by priority".
type SendEmailRequest struct {
	ProviderID int64    `json:"provider_id,omitempty"`
	To         []string `json:"to"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	HTML       bool     `json:"html,omitempty"`
}

type SendEmailResponse struct {
	ProviderID   int64  `json:"provider_id"`
	ProviderName string `json:"provider_name"`
}

// OutstandingInstallment is the per-row view inside an outstanding summary.
type OutstandingInstallment struct {
	ID                int64           `json:"id"`
	InstallmentNumber int             `json:"installment_number"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           time.Time       `json:"due_date"`
	Status            string          `json:"status"`
	DaysOverdue       int             `json:"days_overdue"`
}

// OutstandingSummary aggregates a case's unpaid installments.
type OutstandingSummary struct {
	CaseID        int64                    `json:"case_id"`
	TotalAmount   decimal.Decimal          `json:"total_amount"`
	Count         int                      `json:"count"`
	AverageAmount decimal.Decimal          `json:"average_amount"`
	OldestDueDate *time.Time               `json:"oldest_due_date,omitempty"`
	NewestDueDate *time.Time               `json:"newest_due_date,omitempty"`
	Installments  []OutstandingInstallment `json:"installments"`
}

type PaymentInitiationRequest struct {
	InstallmentIDs []int64 `json:"installment_ids"`
	PaymentMode    string  `json:"payment_mode,omitempty"`
	PaymentNotes   string  `json:"payment_notes,omitempty"`
}

type PaymentInitiationResponse struct {
	TransactionID  string          `json:"transaction_id"`
	Amount         decimal.Decimal `json:"amount"`
	InstallmentIDs []int64         `json:"installment_ids"`
}

type PaymentPlanRequest struct {
	TotalAmount      decimal.Decimal `json:"total_amount"`
	InstallmentCount int             `json:"installment_count"`
	FirstDueDate     time.Time       `json:"first_due_date"`
	Frequency        string          `json:"frequency"`
	PaymentMethod    string          `json:"payment_method"`
	AutoDebit        bool            `json:"auto_debit"`
}

type PaymentPlanResponse struct {
	TotalAmount       decimal.Decimal    `json:"total_amount"`
	InstallmentAmount decimal.Decimal    `json:"installment_amount"`
	Schedules         []*PaymentSchedule `json:"schedules"`
}
