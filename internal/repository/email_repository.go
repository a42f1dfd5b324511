package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/renewalhq/renewal-gateway/internal/models"
)

const emailProviderColumns = `
	id, name, host, port, username, password, use_tls, use_ssl, from_email,
	from_name, reply_to, priority, is_default, is_active, is_deleted,
	daily_limit, monthly_limit, rate_limit_per_minute, emails_sent_today,
	emails_sent_this_month, last_reset_daily, last_reset_monthly,
	health_status, health_error, consecutive_failures, last_health_check,
	created_at, updated_at
`

type emailRepository struct {
	db *sqlx.DB
}

func NewEmailRepository(db *sqlx.DB) EmailRepository {
	return &emailRepository{
		db: db,
	}
}

// Create inserts a provider; when it is flagged default, every other
// provider loses the flag in the same transaction.
func (r *emailRepository) Create(provider *models.EmailProvider) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if provider.IsDefault {
		if _, err := tx.Exec(`UPDATE email_providers SET is_default = FALSE WHERE is_default = TRUE`); err != nil {
			return fmt.Errorf("failed to clear default provider: %w", err)
		}
	}

	query := `
		INSERT INTO email_providers (
			name, host, port, username, password, use_tls, use_ssl,
			from_email, from_name, reply_to, priority, is_default, is_active,
			daily_limit, monthly_limit, rate_limit_per_minute,
			last_reset_daily, last_reset_monthly, health_status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id
	`

	now := time.Now()
	err = tx.QueryRow(query,
		provider.Name, provider.Host, provider.Port, provider.Username,
		provider.Password, provider.UseTLS, provider.UseSSL, provider.FromEmail,
		provider.FromName, provider.ReplyTo, provider.Priority, provider.IsDefault,
		provider.IsActive, provider.DailyLimit, provider.MonthlyLimit,
		provider.RateLimitPerMinute, now, now, provider.HealthStatus, now, now,
	).Scan(&provider.ID)
	if err != nil {
		return fmt.Errorf("failed to create email provider: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *emailRepository) GetByID(id int64) (*models.EmailProvider, error) {
	query := `SELECT ` + emailProviderColumns + ` FROM email_providers WHERE id = $1 AND is_deleted = FALSE`

	var provider models.EmailProvider
	err := r.db.Get(&provider, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get email provider: %w", err)
	}

	return &provider, nil
}

func (r *emailRepository) List() ([]*models.EmailProvider, error) {
	query := `SELECT ` + emailProviderColumns + ` FROM email_providers WHERE is_deleted = FALSE ORDER BY priority ASC, name ASC`

	var providers []*models.EmailProvider
	if err := r.db.Select(&providers, query); err != nil {
		return nil, fmt.Errorf("failed to list email providers: %w", err)
	}

	return providers, nil
}

// ListAvailable returns active providers in failover order.
func (r *emailRepository) ListAvailable() ([]*models.EmailProvider, error) {
	query := `
		SELECT ` + emailProviderColumns + `
		FROM email_providers
		WHERE is_active = TRUE AND is_deleted = FALSE
		ORDER BY priority ASC, name ASC
	`

	var providers []*models.EmailProvider
	if err := r.db.Select(&providers, query); err != nil {
		return nil, fmt.Errorf("failed to list available email providers: %w", err)
	}

	return providers, nil
}

func (r *emailRepository) Update(provider *models.EmailProvider) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if provider.IsDefault {
		if _, err := tx.Exec(`UPDATE email_providers SET is_default = FALSE WHERE is_default = TRUE AND id <> $1`, provider.ID); err != nil {
			return fmt.Errorf("failed to clear default provider: %w", err)
		}
	}

	query := `
		UPDATE email_providers
		SET name = $2,
		    host = $3,
		    port = $4,
		    username = $5,
		    password = $6,
		    use_tls = $7,
		    use_ssl = $8,
		    from_email = $9,
		    from_name = $10,
		    reply_to = $11,
		    priority = $12,
		    is_default = $13,
		    is_active = $14,
		    daily_limit = $15,
		    monthly_limit = $16,
		    updated_at = $17
		WHERE id = $1 AND is_deleted = FALSE
	`

	result, err := tx.Exec(query,
		provider.ID, provider.Name, provider.Host, provider.Port,
		provider.Username, provider.Password, provider.UseTLS, provider.UseSSL,
		provider.FromEmail, provider.FromName, provider.ReplyTo,
		provider.Priority, provider.IsDefault, provider.IsActive,
		provider.DailyLimit, provider.MonthlyLimit, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update email provider: %w", err)
	}

	if err := requireRowAffected(result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *emailRepository) SoftDelete(id int64) error {
	query := `
		UPDATE email_providers
		SET is_deleted = TRUE, is_active = FALSE, is_default = FALSE, updated_at = $2
		WHERE id = $1 AND is_deleted = FALSE
	`

	result, err := r.db.Exec(query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete email provider: %w", err)
	}

	return requireRowAffected(result)
}

func (r *emailRepository) IncrementUsage(id int64, now time.Time) error {
	query := `
		UPDATE email_providers
		SET emails_sent_today = CASE
		        WHEN last_reset_daily = $2::date THEN emails_sent_today + 1
		        ELSE 1
		    END,
		    last_reset_daily = $2::date,
		    emails_sent_this_month = CASE
		        WHEN date_trunc('month', last_reset_monthly) = date_trunc('month', $2::date) THEN emails_sent_this_month + 1
		        ELSE 1
		    END,
		    last_reset_monthly = $2::date,
		    updated_at = $3
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, now.Format("2006-01-02"), now); err != nil {
		return fmt.Errorf("failed to increment email usage: %w", err)
	}

	return nil
}

func (r *emailRepository) ResetStaleCounters(now time.Time) error {
	today := now.Format("2006-01-02")

	dailyQuery := `
		UPDATE email_providers
		SET emails_sent_today = 0, last_reset_daily = $1::date, updated_at = $2
		WHERE last_reset_daily < $1::date AND is_deleted = FALSE
	`
	if _, err := r.db.Exec(dailyQuery, today, now); err != nil {
		return fmt.Errorf("failed to reset daily email counters: %w", err)
	}

	monthlyQuery := `
		UPDATE email_providers
		SET emails_sent_this_month = 0, last_reset_monthly = $1::date, updated_at = $2
		WHERE date_trunc('month', last_reset_monthly) < date_trunc('month', $1::date) AND is_deleted = FALSE
	`
	if _, err := r.db.Exec(monthlyQuery, today, now); err != nil {
		return fmt.Errorf("failed to reset monthly email counters: %w", err)
	}

	return nil
}

// UpdateHealth records a probe outcome. Unhealthy results accumulate in
// consecutive_failures; any other result clears the streak.
func (r *emailRepository) UpdateHealth(id int64, status models.ProviderHealth, errMsg string, checkedAt time.Time) error {
	query := `
		UPDATE email_providers
		SET health_status = $2,
		    health_error = NULLIF($3, ''),
		    consecutive_failures = CASE WHEN $2 = 'unhealthy' THEN consecutive_failures + 1 ELSE 0 END,
		    last_health_check = $4,
		    updated_at = $4
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, status, errMsg, checkedAt); err != nil {
		return fmt.Errorf("failed to update email provider health: %w", err)
	}

	return nil
}

func (r *emailRepository) InsertHealthLog(log *models.EmailHealthLog) error {
	query := `
		INSERT INTO email_health_logs (provider_id, status, response_time_ms, error_message, checked_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(query,
		log.ProviderID, log.Status, log.ResponseTimeMS, log.ErrorMessage, log.CheckedAt,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("failed to insert email health log: %w", err)
	}

	return nil
}

func (r *emailRepository) RecordUsage(providerID int64, date time.Time, sent, failed int) error {
	query := `
		INSERT INTO email_usage_logs (provider_id, date, emails_sent, emails_failed)
		VALUES ($1, $2::date, $3, $4)
		ON CONFLICT (provider_id, date) DO UPDATE
		SET emails_sent = email_usage_logs.emails_sent + EXCLUDED.emails_sent,
		    emails_failed = email_usage_logs.emails_failed + EXCLUDED.emails_failed
	`

	if _, err := r.db.Exec(query, providerID, date.Format("2006-01-02"), sent, failed); err != nil {
		return fmt.Errorf("failed to record email usage: %w", err)
	}

	return nil
}
