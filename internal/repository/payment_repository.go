package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/renewalhq/renewal-gateway/internal/models"
)

const installmentColumns = `
	id, case_id, installment_number, amount, due_date, status, paid_at,
	payment_id, created_at, updated_at
`

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

func (r *paymentRepository) UnpaidInstallments(caseID int64) ([]*models.Installment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM installments
		WHERE case_id = $1 AND status <> 'paid'
		ORDER BY due_date ASC, installment_number ASC
	`

	var installments []*models.Installment
	if err := r.db.Select(&installments, query, caseID); err != nil {
		return nil, fmt.Errorf("failed to get unpaid installments: %w", err)
	}

	return installments, nil
}

func (r *paymentRepository) InstallmentsByIDs(caseID int64, ids []int64) ([]*models.Installment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM installments
		WHERE case_id = $1 AND id = ANY($2)
		ORDER BY due_date ASC, installment_number ASC
	`

	var installments []*models.Installment
	if err := r.db.Select(&installments, query, caseID, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("failed to get installments: %w", err)
	}

	return installments, nil
}

// CreatePaymentForInstallments settles the listed installments atomically.
// If any row is already paid the update touches fewer rows than requested
// and the whole transaction rolls back.
func (r *paymentRepository) CreatePaymentForInstallments(payment *models.Payment, installmentIDs []int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertQuery := `
		INSERT INTO payments (case_id, transaction_id, amount, method, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	now := time.Now()
	err = tx.QueryRow(insertQuery,
		payment.CaseID, payment.TransactionID, payment.Amount, payment.Method,
		payment.Notes, payment.Status, now,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	updateQuery := `
		UPDATE installments
		SET status = 'paid', paid_at = $3, payment_id = $4, updated_at = $3
		WHERE case_id = $1 AND id = ANY($2) AND status <> 'paid'
	`

	result, err := tx.Exec(updateQuery, payment.CaseID, pq.Array(installmentIDs), now, payment.ID)
	if err != nil {
		return fmt.Errorf("failed to mark installments paid: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected != int64(len(installmentIDs)) {
		return ErrInstallmentAlreadyPaid
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	payment.CreatedAt = now
	return nil
}

// CreateSchedules bulk-inserts a payment plan in one transaction.
func (r *paymentRepository) CreateSchedules(schedules []*models.PaymentSchedule) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO payment_schedules (
			case_id, installment_number, total_installments, amount_due,
			due_date, frequency, method, auto_debit, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()
	for _, schedule := range schedules {
		err := tx.QueryRow(query,
			schedule.CaseID, schedule.InstallmentNumber, schedule.TotalInstallments,
			schedule.AmountDue, schedule.DueDate, schedule.Frequency,
			schedule.Method, schedule.AutoDebit, schedule.Status, now, now,
		).Scan(&schedule.ID)
		if err != nil {
			return fmt.Errorf("failed to create payment schedule %d: %w", schedule.InstallmentNumber, err)
		}
		schedule.CreatedAt = now
		schedule.UpdatedAt = now
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *paymentRepository) ListSchedules(caseID int64) ([]*models.PaymentSchedule, error) {
	query := `
		SELECT id, case_id, installment_number, total_installments, amount_due,
		       due_date, frequency, method, auto_debit, status, created_at, updated_at
		FROM payment_schedules
		WHERE case_id = $1
		ORDER BY installment_number ASC
	`

	var schedules []*models.PaymentSchedule
	if err := r.db.Select(&schedules, query, caseID); err != nil {
		return nil, fmt.Errorf("failed to list payment schedules: %w", err)
	}

	return schedules, nil
}

func (r *paymentRepository) MarkOverdue(now time.Time) (int64, error) {
	query := `
		UPDATE installments
		SET status = 'overdue', updated_at = $2
		WHERE status = 'pending' AND due_date < $1::date
	`

	result, err := r.db.Exec(query, now.Format("2006-01-02"), now)
	if err != nil {
		return 0, fmt.Errorf("failed to mark installments overdue: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected, nil
}
