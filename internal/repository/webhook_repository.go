package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/renewalhq/renewal-gateway/internal/models"
)

type webhookRepository struct {
	db *sqlx.DB
}

func NewWebhookRepository(db *sqlx.DB) WebhookRepository {
	return &webhookRepository{
		db: db,
	}
}

func (r *webhookRepository) Create(event *models.WebhookEvent) error {
	query := `
		INSERT INTO webhook_events (account_id, event_type, payload, received_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(query, event.AccountID, event.EventType, event.Payload, now).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to create webhook event: %w", err)
	}

	event.ReceivedAt = now
	return nil
}

// MarkProcessed stamps the event done; a non-nil processingError records the
// failure instead of dropping it.
func (r *webhookRepository) MarkProcessed(id int64, processingError *string) error {
	query := `
		UPDATE webhook_events
		SET processed = TRUE, processing_error = $2, processed_at = $3
		WHERE id = $1
	`

	var errMsg sql.NullString
	if processingError != nil {
		errMsg = sql.NullString{String: *processingError, Valid: true}
	}

	result, err := r.db.Exec(query, id, errMsg, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark webhook event processed: %w", err)
	}

	return requireRowAffected(result)
}

func (r *webhookRepository) ListUnprocessed(limit int) ([]*models.WebhookEvent, error) {
	query := `
		SELECT id, account_id, event_type, payload, processed, processing_error, received_at, processed_at
		FROM webhook_events
		WHERE processed = FALSE
		ORDER BY received_at ASC
		LIMIT $1
	`

	var events []*models.WebhookEvent
	if err := r.db.Select(&events, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list unprocessed webhook events: %w", err)
	}

	return events, nil
}
