// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

type AccountStatus string

const (
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusVerified  AccountStatus = "verified"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusDisabled  AccountStatus = "disabled"
)

type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
	HealthStatusUnknown   HealthStatus = "unknown"
)

// Account represents a WhatsApp Business Account (WABA) configuration row.
// AccessToken is stored encrypted and is never serialized back to clients.
type Account struct {
	ID                 int64         `db:"id" json:"id"`
	Name               string        `db:"name" json:"name"`
	WabaID             string        `db:"waba_id" json:"waba_id"`
	AccessToken        string        `db:"access_token" json:"-"`
	WebhookVerifyToken string        `db:"webhook_verify_token" json:"-"`
	Status             AccountStatus `db:"status" json:"status"`
	HealthStatus       HealthStatus  `db:"health_status" json:"health_status"`
	LastHealthCheck    sql.NullTime  `db:"last_health_check" json:"last_health_check,omitempty"`
	DailyLimit         int           `db:"daily_limit" json:"daily_limit"`
	MonthlyLimit       int           `db:"monthly_limit" json:"monthly_limit"`
	RateLimitPerMinute int           `db:"rate_limit_per_minute" json:"rate_limit_per_minute"`
	SentToday          int           `db:"messages_sent_today" json:"messages_sent_today"`
	SentThisMonth      int           `db:"messages_sent_this_month" json:"messages_sent_this_month"`
	LastResetDaily     time.Time     `db:"last_reset_daily" json:"-"`
	LastResetMonthly   time.Time     `db:"last_reset_monthly" json:"-"`
	GreetingMessage    string        `db:"greeting_message" json:"greeting_message"`
	FallbackMessage    string        `db:"fallback_message" json:"fallback_message"`
	AutoReply          bool          `db:"auto_reply" json:"auto_reply"`
	IsDefault          bool          `db:"is_default" json:"is_default"`
	IsActive           bool          `db:"is_active" json:"is_active"`
	IsDeleted          bool          `db:"is_deleted" json:"-"`
	CreatedAt          time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at" json:"updated_at"`
}

// CanSend reports whether the account may dispatch another message right now.
// Counters that belong to a previous day or month count as zero.
func (a *Account) CanSend(now time.Time) bool {
	if !a.IsActive || a.IsDeleted || a.Status != AccountStatusVerified {
		return false
	}

	today := now.Format("2006-01-02")
	sentToday := a.SentToday
	if a.LastResetDaily.Format("2006-01-02") != today {
		sentToday = 0
	}
	if sentToday >= a.DailyLimit {
		return false
	}

	sentThisMonth := a.SentThisMonth
	if a.LastResetMonthly.Year() != now.Year() || a.LastResetMonthly.Month() != now.Month() {
		sentThisMonth = 0
	}
	return sentThisMonth < a.MonthlyLimit
}

type PhoneNumberStatus string

const (
	PhoneNumberStatusPending   PhoneNumberStatus = "pending"
	PhoneNumberStatusVerified  PhoneNumberStatus = "verified"
	PhoneNumberStatusFailed    PhoneNumberStatus = "failed"
	PhoneNumberStatusSuspended PhoneNumberStatus = "suspended"
)

// PhoneNumber is a provider-assigned sender identity under one account.
type PhoneNumber struct {
	ID                 int64             `db:"id" json:"id"`
	AccountID          int64             `db:"account_id" json:"account_id"`
	PhoneNumberID      string            `db:"phone_number_id" json:"phone_number_id"`
	PhoneNumber        string            `db:"phone_number" json:"phone_number"`
	DisplayPhoneNumber sql.NullString    `db:"display_phone_number" json:"display_phone_number,omitempty"`
	Status             PhoneNumberStatus `db:"status" json:"status"`
	IsPrimary          bool              `db:"is_primary" json:"is_primary"`
	IsActive           bool              `db:"is_active" json:"is_active"`
	CreatedAt          time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time         `db:"updated_at" json:"updated_at"`
}

type TemplateStatus string

const (
	TemplateStatusPending  TemplateStatus = "pending"
	TemplateStatusApproved TemplateStatus = "approved"
	TemplateStatusRejected TemplateStatus = "rejected"
	TemplateStatusDisabled TemplateStatus = "disabled"
)

// Template is a pre-approved message body with placeholder slots.
type Template struct {
	ID              int64          `db:"id" json:"id"`
	AccountID       int64          `db:"account_id" json:"account_id"`
	Name            string         `db:"name" json:"name"`
	Category        string         `db:"category" json:"category"`
	Language        string         `db:"language" json:"language"`
	HeaderText      sql.NullString `db:"header_text" json:"header_text,omitempty"`
	BodyText        string         `db:"body_text" json:"body_text"`
	FooterText      sql.NullString `db:"footer_text" json:"footer_text,omitempty"`
	Status          TemplateStatus `db:"status" json:"status"`
	MetaTemplateID  sql.NullString `db:"meta_template_id" json:"meta_template_id,omitempty"`
	RejectionReason sql.NullString `db:"rejection_reason" json:"rejection_reason,omitempty"`
	UsageCount      int            `db:"usage_count" json:"usage_count"`
	LastUsed        sql.NullTime   `db:"last_used" json:"last_used,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// Approved reports whether the template may be used for outbound sends.
func (t *Template) Approved() bool {
	return t.Status == TemplateStatusApproved && t.MetaTemplateID.Valid
}

type MessageDirection string

const (
	DirectionOutbound MessageDirection = "outbound"
	DirectionInbound  MessageDirection = "inbound"
)

type MessageType string

const (
	MessageTypeText        MessageType = "text"
	MessageTypeTemplate    MessageType = "template"
	MessageTypeInteractive MessageType = "interactive"
)

type MessageStatus string

const (
	MessageStatusQueued    MessageStatus = "queued"
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusRead      MessageStatus = "read"
	MessageStatusFailed    MessageStatus = "failed"
)

// Message records one outbound or inbound WhatsApp message.
type Message struct {
	ID            int64            `db:"id" json:"id"`
	AccountID     int64            `db:"account_id" json:"account_id"`
	PhoneNumberID int64            `db:"phone_number_id" json:"phone_number_id"`
	MessageID     string           `db:"message_id" json:"message_id"`
	Direction     MessageDirection `db:"direction" json:"direction"`
	MessageType   MessageType      `db:"message_type" json:"message_type"`
	ToPhone       string           `db:"to_phone" json:"to_phone"`
	FromPhone     string           `db:"from_phone" json:"from_phone"`
	Content       json.RawMessage  `db:"content" json:"content"`
	TemplateID    sql.NullInt64    `db:"template_id" json:"template_id,omitempty"`
	Status        MessageStatus    `db:"status" json:"status"`
	ErrorCode     sql.NullString   `db:"error_code" json:"error_code,omitempty"`
	ErrorMessage  sql.NullString   `db:"error_message" json:"error_message,omitempty"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
	SentAt        sql.NullTime     `db:"sent_at" json:"sent_at,omitempty"`
	DeliveredAt   sql.NullTime     `db:"delivered_at" json:"delivered_at,omitempty"`
	ReadAt        sql.NullTime     `db:"read_at" json:"read_at,omitempty"`
}

type WebhookEventType string

const (
	EventTypeMessage        WebhookEventType = "message"
	EventTypeMessageStatus  WebhookEventType = "message_status"
	EventTypeTemplateStatus WebhookEventType = "template_status"
	EventTypeUnknown        WebhookEventType = "unknown"
)

// WebhookEvent is a raw inbound provider event kept for auditing and replay.
type WebhookEvent struct {
	ID              int64            `db:"id" json:"id"`
	AccountID       sql.NullInt64    `db:"account_id" json:"account_id,omitempty"`
	EventType       WebhookEventType `db:"event_type" json:"event_type"`
	Payload         json.RawMessage  `db:"payload" json:"payload"`
	Processed       bool             `db:"processed" json:"processed"`
	ProcessingError sql.NullString   `db:"processing_error" json:"processing_error,omitempty"`
	ReceivedAt      time.Time        `db:"received_at" json:"received_at"`
	ProcessedAt     sql.NullTime     `db:"processed_at" json:"processed_at,omitempty"`
}

// AccountHealthLog is one timestamped health check result for an account.
type AccountHealthLog struct {
	ID           int64           `db:"id" json:"id"`
	AccountID    int64           `db:"account_id" json:"account_id"`
	HealthStatus HealthStatus    `db:"health_status" json:"health_status"`
	Details      json.RawMessage `db:"details" json:"details,omitempty"`
	ErrorMessage sql.NullString  `db:"error_message" json:"error_message,omitempty"`
	CheckedAt    time.Time       `db:"checked_at" json:"checked_at"`
}

// AccountUsageLog aggregates per-day delivery counters, one row per
// account and date.
type AccountUsageLog struct {
	ID                int64     `db:"id" json:"id"`
	AccountID         int64     `db:"account_id" json:"account_id"`
	Date              time.Time `db:"date" json:"date"`
	MessagesSent      int       `db:"messages_sent" json:"messages_sent"`
	MessagesDelivered int       `db:"messages_delivered" json:"messages_delivered"`
	MessagesFailed    int       `db:"messages_failed" json:"messages_failed"`
	MessagesRead      int       `db:"messages_read" json:"messages_read"`
}
