package models

import (
	"database/sql"
	"fmt"
	"time"
)

type ProviderHealth string

const (
	ProviderHealthy   ProviderHealth = "healthy"
	ProviderDegraded  ProviderHealth = "degraded"
	ProviderUnhealthy ProviderHealth = "unhealthy"
	ProviderUnknown   ProviderHealth = "unknown"
)

// EmailProvider holds SMTP delivery configuration. Password is stored
// encrypted; lower Priority wins during failover selection.
type EmailProvider struct {
	ID                  int64          `db:"id" json:"id"`
	Name                string         `db:"name" json:"name"`
	Host                string         `db:"host" json:"host"`
	Port                int            `db:"port" json:"port"`
	Username            string         `db:"username" json:"username"`
	Password            string         `db:"password" json:"-"`
	UseTLS              bool           `db:"use_tls" json:"use_tls"`
	UseSSL              bool           `db:"use_ssl" json:"use_ssl"`
	FromEmail           string         `db:"from_email" json:"from_email"`
	FromName            sql.NullString `db:"from_name" json:"from_name,omitempty"`
	ReplyTo             sql.NullString `db:"reply_to" json:"reply_to,omitempty"`
	Priority            int            `db:"priority" json:"priority"`
	IsDefault           bool           `db:"is_default" json:"is_default"`
	IsActive            bool           `db:"is_active" json:"is_active"`
	IsDeleted           bool           `db:"is_deleted" json:"-"`
	DailyLimit          int            `db:"daily_limit" json:"daily_limit"`
	MonthlyLimit        int            `db:"monthly_limit" json:"monthly_limit"`
	RateLimitPerMinute  int            `db:"rate_limit_per_minute" json:"rate_limit_per_minute"`
	SentToday           int            `db:"emails_sent_today" json:"emails_sent_today"`
	SentThisMonth       int            `db:"emails_sent_this_month" json:"emails_sent_this_month"`
	LastResetDaily      time.Time      `db:"last_reset_daily" json:"-"`
	LastResetMonthly    time.Time      `db:"last_reset_monthly" json:"-"`
	HealthStatus        ProviderHealth `db:"health_status" json:"health_status"`
	HealthError         sql.NullString `db:"health_error" json:"health_error,omitempty"`
	ConsecutiveFailures int            `db:"consecutive_failures" json:"consecutive_failures"`
	LastHealthCheck     sql.NullTime   `db:"last_health_check" json:"last_health_check,omitempty"`
	CreatedAt           time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at" json:"updated_at"`
}

// CanSend reports whether the provider may deliver another email right now.
// Counters that belong to a previous day or month count as zero.
func (p *EmailProvider) CanSend(now time.Time) bool {
	if !p.IsActive || p.IsDeleted || p.HealthStatus == ProviderUnhealthy {
		return false
	}

	sentToday := p.SentToday
	if p.LastResetDaily.Format("2006-01-02") != now.Format("2006-01-02") {
		sentToday = 0
	}
	if sentToday >= p.DailyLimit {
		return false
	}

	sentThisMonth := p.SentThisMonth
	if p.LastResetMonthly.Year() != now.Year() || p.LastResetMonthly.Month() != now.Month() {
		sentThisMonth = 0
	}
	return sentThisMonth < p.MonthlyLimit
}

// Addr returns the host:port dial address for the SMTP server.
func (p *EmailProvider) Addr() string {
	return fmt.Sprintf("%s:%d", p.Host, p.Port)
}

// EmailHealthLog is one timed SMTP health probe result.
type EmailHealthLog struct {
	ID             int64          `db:"id" json:"id"`
	ProviderID     int64          `db:"provider_id" json:"provider_id"`
	Status         ProviderHealth `db:"status" json:"status"`
	ResponseTimeMS int64          `db:"response_time_ms" json:"response_time_ms"`
	ErrorMessage   sql.NullString `db:"error_message" json:"error_message,omitempty"`
	CheckedAt      time.Time      `db:"checked_at" json:"checked_at"`
}

// EmailUsageLog aggregates per-day send counters, one row per provider
// and date.
type EmailUsageLog struct {
	ID           int64     `db:"id" json:"id"`
	ProviderID   int64     `db:"provider_id" json:"provider_id"`
	Date         time.Time `db:"date" json:"date"`
	EmailsSent   int       `db:"emails_sent" json:"emails_sent"`
	EmailsFailed int       `db:"emails_failed" json:"emails_failed"`
}
