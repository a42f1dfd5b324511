package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db       *sqlx.DB
	account  AccountRepository
	template TemplateRepository
	message  MessageRepository
	webhook  WebhookRepository
	email    EmailRepository
	payment  PaymentRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:       db,
		account:  NewAccountRepository(db),
		template: NewTemplateRepository(db),
		message:  NewMessageRepository(db),
		webhook:  NewWebhookRepository(db),
		email:    NewEmailRepository(db),
		payment:  NewPaymentRepository(db),
	}
}

func (r *repositoryImpl) Account() AccountRepository {
	return r.account
}

func (r *repositoryImpl) Template() TemplateRepository {
	return r.template
}

func (r *repositoryImpl) Message() MessageRepository {
	return r.message
}

func (r *repositoryImpl) Webhook() WebhookRepository {
	return r.webhook
}

func (r *repositoryImpl) Email() EmailRepository {
	return r.email
}

func (r *repositoryImpl) Payment() PaymentRepository {
	return r.payment
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
