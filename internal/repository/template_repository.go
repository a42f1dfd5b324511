package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/renewalhq/renewal-gateway/internal/models"
)

const templateColumns = `
	id, account_id, name, category, language, header_text, body_text,
	footer_text, status, meta_template_id, rejection_reason, usage_count,
	last_used, created_at, updated_at
`

type templateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

func (r *templateRepository) Create(template *models.Template) error {
	query := `
		INSERT INTO whatsapp_templates (
			account_id, name, category, language, header_text, body_text,
			footer_text, status, meta_template_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(query,
		template.AccountID, template.Name, template.Category, template.Language,
		template.HeaderText, template.BodyText, template.FooterText,
		template.Status, template.MetaTemplateID, now, now,
	).Scan(&template.ID)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	return nil
}

func (r *templateRepository) GetByID(id int64) (*models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM whatsapp_templates WHERE id = $1`

	var template models.Template
	err := r.db.Get(&template, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return &template, nil
}

func (r *templateRepository) GetByName(accountID int64, name, language string) (*models.Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM whatsapp_templates
		WHERE account_id = $1 AND name = $2 AND language = $3
	`

	var template models.Template
	err := r.db.Get(&template, query, accountID, name, language)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template by name: %w", err)
	}

	return &template, nil
}

func (r *templateRepository) ListByAccount(accountID int64) ([]*models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM whatsapp_templates WHERE account_id = $1 ORDER BY created_at DESC`

	var templates []*models.Template
	if err := r.db.Select(&templates, query, accountID); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	return templates, nil
}

// UpdateStatusByMetaID applies a provider-side approval decision.
func (r *templateRepository) UpdateStatusByMetaID(metaTemplateID string, status models.TemplateStatus, reason string) error {
	query := `
		UPDATE whatsapp_templates
		SET status = $2, rejection_reason = NULLIF($3, ''), updated_at = $4
		WHERE meta_template_id = $1
	`

	result, err := r.db.Exec(query, metaTemplateID, status, reason, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update template status: %w", err)
	}

	return requireRowAffected(result)
}

func (r *templateRepository) IncrementUsage(id int64, usedAt time.Time) error {
	query := `
		UPDATE whatsapp_templates
		SET usage_count = usage_count + 1, last_used = $2, updated_at = $2
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, usedAt); err != nil {
		return fmt.Errorf("failed to increment template usage: %w", err)
	}

	return nil
}
