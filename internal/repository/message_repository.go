package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/renewalhq/renewal-gateway/internal/models"
)

const messageColumns = `
	id, account_id, phone_number_id, message_id, direction, message_type,
	to_phone, from_phone, content, template_id, status, error_code,
	error_message, created_at, sent_at, delivered_at, read_at
`

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

func (r *messageRepository) Create(message *models.Message) error {
	query := `
		INSERT INTO whatsapp_messages (
			account_id, phone_number_id, message_id, direction, message_type,
			to_phone, from_phone, content, template_id, status, error_code,
			error_message, created_at, sent_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(query,
		message.AccountID, message.PhoneNumberID, message.MessageID,
		message.Direction, message.MessageType, message.ToPhone, message.FromPhone,
		message.Content, message.TemplateID, message.Status, message.ErrorCode,
		message.ErrorMessage, now, message.SentAt,
	).Scan(&message.ID)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	message.CreatedAt = now
	return nil
}

func (r *messageRepository) GetByMessageID(messageID string) (*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM whatsapp_messages WHERE message_id = $1`

	var message models.Message
	err := r.db.Get(&message, query, messageID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	return &message, nil
}

// List retrieves messages for an account with pagination, newest first.
func (r *messageRepository) List(accountID int64, offset, limit int) ([]*models.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM whatsapp_messages
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var messages []*models.Message
	if err := r.db.Select(&messages, query, accountID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) Count(accountID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM whatsapp_messages WHERE account_id = $1`

	if err := r.db.Get(&count, query, accountID); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return count, nil
}

// UpdateStatus applies a provider status transition. The delivered_at and
// read_at stamps are only ever set forward, never cleared.
func (r *messageRepository) UpdateStatus(messageID string, status models.MessageStatus, errorCode, errorMessage *string, at time.Time) error {
	query := `
		UPDATE whatsapp_messages
		SET status = $2,
		    delivered_at = CASE WHEN $3 = 'delivered' THEN $4 ELSE delivered_at END,
		    read_at = CASE WHEN $3 = 'read' THEN $4 ELSE read_at END,
		    error_code = COALESCE($5, error_code),
		    error_message = COALESCE($6, error_message)
		WHERE message_id = $1
	`

	var code, msg sql.NullString
	if errorCode != nil {
		code = sql.NullString{String: *errorCode, Valid: true}
	}
	if errorMessage != nil {
		msg = sql.NullString{String: *errorMessage, Valid: true}
	}

	result, err := r.db.Exec(query, messageID, status, string(status), at, code, msg)
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}

	return requireRowAffected(result)
}
