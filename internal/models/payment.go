package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pending"
	InstallmentStatusOverdue InstallmentStatus = "overdue"
	InstallmentStatusPaid    InstallmentStatus = "paid"
)

// Installment is one scheduled partial payment of a renewal premium.
type Installment struct {
	ID                int64             `db:"id" json:"id"`
	CaseID            int64             `db:"case_id" json:"case_id"`
	InstallmentNumber int               `db:"installment_number" json:"installment_number"`
	Amount            decimal.Decimal   `db:"amount" json:"amount"`
	DueDate           time.Time         `db:"due_date" json:"due_date"`
	Status            InstallmentStatus `db:"status" json:"status"`
	PaidAt            sql.NullTime      `db:"paid_at" json:"paid_at,omitempty"`
	PaymentID         sql.NullInt64     `db:"payment_id" json:"payment_id,omitempty"`
	CreatedAt         time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `db:"updated_at" json:"updated_at"`
}

// DaysOverdue returns how many whole days past due the installment is as of
// now, and zero when it is not yet due or already paid.
func (i *Installment) DaysOverdue(now time.Time) int {
	if i.Status == InstallmentStatusPaid {
		return 0
	}
	due := time.Date(i.DueDate.Year(), i.DueDate.Month(), i.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(due).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment groups one or more installments settled in a single transaction.
type Payment struct {
	ID            int64           `db:"id" json:"id"`
	CaseID        int64           `db:"case_id" json:"case_id"`
	TransactionID string          `db:"transaction_id" json:"transaction_id"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Method        string          `db:"method" json:"method"`
	Notes         sql.NullString  `db:"notes" json:"notes,omitempty"`
	Status        PaymentStatus   `db:"status" json:"status"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

type ScheduleFrequency string

const (
	FrequencyMonthly    ScheduleFrequency = "monthly"
	FrequencyQuarterly  ScheduleFrequency = "quarterly"
	FrequencyHalfYearly ScheduleFrequency = "half_yearly"
	FrequencyYearly     ScheduleFrequency = "yearly"
)

// Days returns the day span between consecutive installments for the
// frequency; unknown values fall back to monthly.
func (f ScheduleFrequency) Days() int {
	switch f {
	case FrequencyQuarterly:
		return 90
	case FrequencyHalfYearly:
		return 180
	case FrequencyYearly:
		return 365
	default:
		return 30
	}
}

type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusCompleted ScheduleStatus = "completed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// PaymentSchedule is one planned installment of a recurring payment plan.
type PaymentSchedule struct {
	ID                int64             `db:"id" json:"id"`
	CaseID            int64             `db:"case_id" json:"case_id"`
	InstallmentNumber int               `db:"installment_number" json:"installment_number"`
	TotalInstallments int               `db:"total_installments" json:"total_installments"`
	AmountDue         decimal.Decimal   `db:"amount_due" json:"amount_due"`
	DueDate           time.Time         `db:"due_date" json:"due_date"`
	Frequency         ScheduleFrequency `db:"frequency" json:"frequency"`
	Method            string            `db:"method" json:"method"`
	AutoDebit         bool              `db:"auto_debit" json:"auto_debit"`
	Status            ScheduleStatus    `db:"status" json:"status"`
	CreatedAt         time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `db:"updated_at" json:"updated_at"`
}
