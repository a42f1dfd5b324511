package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/renewalhq/renewal-gateway/internal/models"
)

const accountColumns = `
	id, name, waba_id, access_token, webhook_verify_token, status,
	health_status, last_health_check, daily_limit, monthly_limit,
	rate_limit_per_minute, messages_sent_today, messages_sent_this_month,
	last_reset_daily, last_reset_monthly, greeting_message, fallback_message,
	auto_reply, is_default, is_active, is_deleted, created_at, updated_at
`

type accountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create inserts a new account and fills in its generated id.
func (r *accountRepository) Create(account *models.Account) error {
	query := `
		INSERT INTO whatsapp_accounts (
			name, waba_id, access_token, webhook_verify_token, status,
			health_status, daily_limit, monthly_limit, rate_limit_per_minute,
			last_reset_daily, last_reset_monthly, greeting_message,
			fallback_message, auto_reply, is_default, is_active,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(query,
		account.Name, account.WabaID, account.AccessToken, account.WebhookVerifyToken,
		account.Status, account.HealthStatus, account.DailyLimit, account.MonthlyLimit,
		account.RateLimitPerMinute, now, now, account.GreetingMessage,
		account.FallbackMessage, account.AutoReply, account.IsDefault, account.IsActive,
		now, now,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	account.CreatedAt = now
	account.UpdatedAt = now
	return nil
}

func (r *accountRepository) GetByID(id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM whatsapp_accounts WHERE id = $1 AND is_deleted = FALSE`

	var account models.Account
	err := r.db.Get(&account, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// GetByVerifyToken finds the active account matching a webhook verify token.
func (r *accountRepository) GetByVerifyToken(token string) (*models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM whatsapp_accounts
		WHERE webhook_verify_token = $1 AND is_active = TRUE AND is_deleted = FALSE
		LIMIT 1
	`

	var account models.Account
	err := r.db.Get(&account, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by verify token: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) List() ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM whatsapp_accounts WHERE is_deleted = FALSE ORDER BY created_at DESC`

	var accounts []*models.Account
	if err := r.db.Select(&accounts, query); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) ListActive() ([]*models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM whatsapp_accounts
		WHERE is_active = TRUE AND is_deleted = FALSE
		ORDER BY name ASC
	`

	var accounts []*models.Account
	if err := r.db.Select(&accounts, query); err != nil {
		return nil, fmt.Errorf("failed to list active accounts: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) Update(account *models.Account) error {
	query := `
		UPDATE whatsapp_accounts
		SET name = $2,
		    access_token = $3,
		    webhook_verify_token = $4,
		    status = $5,
		    daily_limit = $6,
		    monthly_limit = $7,
		    rate_limit_per_minute = $8,
		    greeting_message = $9,
		    fallback_message = $10,
		    auto_reply = $11,
		    is_active = $12,
		    updated_at = $13
		WHERE id = $1 AND is_deleted = FALSE
	`

	result, err := r.db.Exec(query,
		account.ID, account.Name, account.AccessToken, account.WebhookVerifyToken,
		account.Status, account.DailyLimit, account.MonthlyLimit,
		account.RateLimitPerMinute, account.GreetingMessage, account.FallbackMessage,
		account.AutoReply, account.IsActive, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return requireRowAffected(result)
}

func (r *accountRepository) SoftDelete(id int64) error {
	query := `
		UPDATE whatsapp_accounts
		SET is_deleted = TRUE, is_active = FALSE, updated_at = $2
		WHERE id = $1 AND is_deleted = FALSE
	`

	result, err := r.db.Exec(query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return requireRowAffected(result)
}

func (r *accountRepository) CreatePhoneNumber(phone *models.PhoneNumber) error {
	query := `
		INSERT INTO whatsapp_phone_numbers (
			account_id, phone_number_id, phone_number, display_phone_number,
			status, is_primary, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(query,
		phone.AccountID, phone.PhoneNumberID, phone.PhoneNumber,
		phone.DisplayPhoneNumber, phone.Status, phone.IsPrimary, phone.IsActive,
		now, now,
	).Scan(&phone.ID)
	if err != nil {
		return fmt.Errorf("failed to create phone number: %w", err)
	}

	return nil
}

func (r *accountRepository) PrimaryPhoneNumber(accountID int64) (*models.PhoneNumber, error) {
	query := `
		SELECT id, account_id, phone_number_id, phone_number, display_phone_number,
		       status, is_primary, is_active, created_at, updated_at
		FROM whatsapp_phone_numbers
		WHERE account_id = $1 AND is_active = TRUE
		ORDER BY is_primary DESC, created_at ASC
		LIMIT 1
	`

	var phone models.PhoneNumber
	err := r.db.Get(&phone, query, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get primary phone number: %w", err)
	}

	return &phone, nil
}

func (r *accountRepository) PhoneNumberByProviderID(phoneNumberID string) (*models.PhoneNumber, error) {
	query := `
		SELECT id, account_id, phone_number_id, phone_number, display_phone_number,
		       status, is_primary, is_active, created_at, updated_at
		FROM whatsapp_phone_numbers
		WHERE phone_number_id = $1 AND is_active = TRUE
		LIMIT 1
	`

	var phone models.PhoneNumber
	err := r.db.Get(&phone, query, phoneNumberID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get phone number: %w", err)
	}

	return &phone, nil
}

// IncrementUsage bumps the daily and monthly counters in a single statement.
// A counter whose period has rolled over restarts at one.
func (r *accountRepository) IncrementUsage(id int64, now time.Time) error {
	query := `
		UPDATE whatsapp_accounts
		SET messages_sent_today = CASE
		        WHEN last_reset_daily = $2::date THEN messages_sent_today + 1
		        ELSE 1
		    END,
		    last_reset_daily = $2::date,
		    messages_sent_this_month = CASE
		        WHEN date_trunc('month', last_reset_monthly) = date_trunc('month', $2::date) THEN messages_sent_this_month + 1
		        ELSE 1
		    END,
		    last_reset_monthly = $2::date,
		    updated_at = $3
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, now.Format("2006-01-02"), now); err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}

	return nil
}

func (r *accountRepository) ResetStaleCounters(now time.Time) error {
	today := now.Format("2006-01-02")

	dailyQuery := `
		UPDATE whatsapp_accounts
		SET messages_sent_today = 0, last_reset_daily = $1::date, updated_at = $2
		WHERE last_reset_daily < $1::date AND is_deleted = FALSE
	`
	if _, err := r.db.Exec(dailyQuery, today, now); err != nil {
		return fmt.Errorf("failed to reset daily counters: %w", err)
	}

	monthlyQuery := `
		UPDATE whatsapp_accounts
		SET messages_sent_this_month = 0, last_reset_monthly = $1::date, updated_at = $2
		WHERE date_trunc('month', last_reset_monthly) < date_trunc('month', $1::date) AND is_deleted = FALSE
	`
	if _, err := r.db.Exec(monthlyQuery, today, now); err != nil {
		return fmt.Errorf("failed to reset monthly counters: %w", err)
	}

	return nil
}

func (r *accountRepository) UpdateHealth(id int64, status models.HealthStatus, checkedAt time.Time) error {
	query := `
		UPDATE whatsapp_accounts
		SET health_status = $2, last_health_check = $3, updated_at = $3
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, status, checkedAt); err != nil {
		return fmt.Errorf("failed to update account health: %w", err)
	}

	return nil
}

func (r *accountRepository) InsertHealthLog(log *models.AccountHealthLog) error {
	query := `
		INSERT INTO whatsapp_health_logs (account_id, health_status, details, error_message, checked_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(query,
		log.AccountID, log.HealthStatus, log.Details, log.ErrorMessage, log.CheckedAt,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("failed to insert health log: %w", err)
	}

	return nil
}

// RecordUsage upserts the per-day usage log row for the account.
func (r *accountRepository) RecordUsage(accountID int64, date time.Time, sent, delivered, failed, read int) error {
	query := `
		INSERT INTO whatsapp_usage_logs (account_id, date, messages_sent, messages_delivered, messages_failed, messages_read)
		VALUES ($1, $2::date, $3, $4, $5, $6)
		ON CONFLICT (account_id, date) DO UPDATE
		SET messages_sent = whatsapp_usage_logs.messages_sent + EXCLUDED.messages_sent,
		    messages_delivered = whatsapp_usage_logs.messages_delivered + EXCLUDED.messages_delivered,
		    messages_failed = whatsapp_usage_logs.messages_failed + EXCLUDED.messages_failed,
		    messages_read = whatsapp_usage_logs.messages_read + EXCLUDED.messages_read
	`

	if _, err := r.db.Exec(query, accountID, date.Format("2006-01-02"), sent, delivered, failed, read); err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}

	return nil
}

func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
