package repository_test

import (
	"database/sql"
	"fmt"
	"time"
)

func insertTestAccount(db *sql.DB, name, wabaID, verifyToken, status string, sentToday, sentThisMonth int, lastResetDaily, lastResetMonthly time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO whatsapp_accounts (
			name, waba_id, access_token, webhook_verify_token, status,
			messages_sent_today, messages_sent_this_month,
			last_reset_daily, last_reset_monthly, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()
	err := db.QueryRow(query,
		name, wabaID, "sealed-token", verifyToken, status,
		sentToday, sentThisMonth,
		lastResetDaily.Format("2006-01-02"), lastResetMonthly.Format("2006-01-02"),
		now, now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test account: %w", err)
	}

	return id, nil
}

func insertTestPhoneNumber(db *sql.DB, accountID int64, providerID, phone string, isPrimary bool) (int64, error) {
	var id int64
	query := `
		INSERT INTO whatsapp_phone_numbers (
			account_id, phone_number_id, phone_number, status, is_primary, created_at, updated_at
		)
		VALUES ($1, $2, $3, 'verified', $4, $5, $6)
		RETURNING id
	`

	now := time.Now()
	err := db.QueryRow(query, accountID, providerID, phone, isPrimary, now, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test phone number: %w", err)
	}

	return id, nil
}

func insertTestMessage(db *sql.DB, accountID, phoneNumberID int64, messageID, status string, createdAt time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO whatsapp_messages (
			account_id, phone_number_id, message_id, direction, message_type,
			to_phone, from_phone, content, status, created_at
		)
		VALUES ($1, $2, $3, 'outbound', 'text', '+971500000002', '+971500000001', '{"body":"hi"}', $4, $5)
		RETURNING id
	`

	err := db.QueryRow(query, accountID, phoneNumberID, messageID, status, createdAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test message: %w", err)
	}

	return id, nil
}

func insertTestEmailProvider(db *sql.DB, name string, priority int, isActive, isDefault bool) (int64, error) {
	var id int64
	query := `
		INSERT INTO email_providers (
			name, host, port, username, password, use_tls, from_email,
			priority, is_default, is_active, daily_limit, monthly_limit,
			last_reset_daily, last_reset_monthly, health_status, created_at, updated_at
		)
		VALUES ($1, $2, 587, $3, 'sealed-password', TRUE, $4, $5, $6, $7, 1000, 10000, $8, $8, 'unknown', $9, $9)
		RETURNING id
	`

	now := time.Now()
	err := db.QueryRow(query,
		name, name+".example.com", "mailer@"+name+".example.com", "noreply@"+name+".example.com",
		priority, isDefault, isActive, now.Format("2006-01-02"), now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test email provider: %w", err)
	}

	return id, nil
}

func insertTestInstallment(db *sql.DB, caseID int64, number int, amount string, dueDate time.Time, status string) (int64, error) {
	var id int64
	query := `
		INSERT INTO installments (case_id, installment_number, amount, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`

	now := time.Now()
	err := db.QueryRow(query, caseID, number, amount, dueDate.Format("2006-01-02"), status, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test installment: %w", err)
	}

	return id, nil
}

func ptr(s string) *string {
	return &s
}
