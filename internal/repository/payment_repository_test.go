package repository_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renewalhq/renewal-gateway/internal/models"
	"github.com/renewalhq/renewal-gateway/internal/repository"
)

func TestPaymentRepository_UnpaidInstallments(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewPaymentRepository(db)

	now := time.Now()

	_, err := insertTestInstallment(db.DB, 42, 2, "200.25", now.AddDate(0, 0, 10), "pending")
	require.NoError(t, err)

	_, err = insertTestInstallment(db.DB, 42, 1, "100.50", now.AddDate(0, 0, -5), "overdue")
	require.NoError(t, err)

	_, err = insertTestInstallment(db.DB, 42, 3, "99.25", now.AddDate(0, 0, 40), "paid")
	require.NoError(t, err)

	_, err = insertTestInstallment(db.DB, 77, 1, "500.00", now, "pending")
	require.NoError(t, err)

	installments, err := repo.UnpaidInstallments(42)
	require.NoError(t, err)
	require.Len(t, installments, 2)

	assert.Equal(t, 1, installments[0].InstallmentNumber, "earliest due date first")
	assert.Equal(t, models.InstallmentStatusOverdue, installments[0].Status)
	assert.True(t, installments[0].Amount.Equal(decimal.RequireFromString("100.50")))
	assert.Equal(t, 2, installments[1].InstallmentNumber)
}

func TestPaymentRepository_InstallmentsByIDs(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewPaymentRepository(db)

	now := time.Now()

	firstID, err := insertTestInstallment(db.DB, 42, 1, "100.00", now, "pending")
	require.NoError(t, err)

	_, err = insertTestInstallment(db.DB, 42, 2, "100.00", now.AddDate(0, 1, 0), "pending")
	require.NoError(t, err)

	otherCaseID, err := insertTestInstallment(db.DB, 77, 1, "100.00", now, "pending")
	require.NoError(t, err)

	installments, err := repo.InstallmentsByIDs(42, []int64{firstID, otherCaseID})
	require.NoError(t, err)
	require.Len(t, installments, 1, "rows from another case must not match")
	assert.Equal(t, firstID, installments[0].ID)
}

func TestPaymentRepository_CreatePaymentForInstallments_Success(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewPaymentRepository(db)

	now := time.Now()

	firstID, err := insertTestInstallment(db.DB, 42, 1, "150.00", now.AddDate(0, 0, -5), "overdue")
	require.NoError(t, err)

	secondID, err := insertTestInstallment(db.DB, 42, 2, "150.75", now, "pending")
	require.NoError(t, err)

	payment := &models.Payment{
		CaseID:        42,
		TransactionID: "TXN-0F8FAD5BD9CB469FA165B7AC009393BE",
		Amount:        decimal.RequireFromString("300.75"),
		Method:        "card",
		Notes:         sql.NullString{String: "settled at branch", Valid: true},
		Status:        models.PaymentStatusCompleted,
	}

	err = repo.CreatePaymentForInstallments(payment, []int64{firstID, secondID})
	require.NoError(t, err)
	assert.NotZero(t, payment.ID)
	assert.False(t, payment.CreatedAt.IsZero())

	installments, err := repo.InstallmentsByIDs(42, []int64{firstID, secondID})
	require.NoError(t, err)
	require.Len(t, installments, 2)

	for _, inst := range installments {
		assert.Equal(t, models.InstallmentStatusPaid, inst.Status)
		assert.True(t, inst.PaidAt.Valid)
		assert.True(t, inst.PaymentID.Valid)
		assert.Equal(t, payment.ID, inst.PaymentID.Int64)
	}
}

func TestPaymentRepository_CreatePaymentForInstallments_AlreadyPaidRollsBack(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewPaymentRepository(db)

	now := time.Now()

	pendingID, err := insertTestInstallment(db.DB, 42, 1, "150.00", now, "pending")
	require.NoError(t, err)

	paidID, err := insertTestInstallment(db.DB, 42, 2, "150.00", now, "paid")
	require.NoError(t, err)

	payment := &models.Payment{
		CaseID:        42,
		TransactionID: "TXN-7C9E6679742540DE944BE07FC1F90AE7",
		Amount:        decimal.RequireFromString("300.00"),
		Method:        "card",
		Status:        models.PaymentStatusCompleted,
	}

	err = repo.CreatePaymentForInstallments(payment, []int64{pendingID, paidID})
	assert.ErrorIs(t, err, repository.ErrInstallmentAlreadyPaid)

	var paymentCount int
	err = db.Get(&paymentCount, "SELECT COUNT(*) FROM payments WHERE case_id = 42")
	require.NoError(t, err)
	assert.Equal(t, 0, paymentCount, "the payment insert must roll back")

	var status string
	err = db.Get(&status, "SELECT status FROM installments WHERE id = $1", pendingID)
	require.NoError(t, err)
	assert.Equal(t, "pending", status, "the pending installment must stay untouched")
}

func TestPaymentRepository_CreateAndListSchedules(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewPaymentRepository(db)

	firstDue := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	schedules := []*models.PaymentSchedule{
		{
			CaseID:            42,
			InstallmentNumber: 1,
			TotalInstallments: 2,
			AmountDue:         decimal.RequireFromString("50.00"),
			DueDate:           firstDue,
			Frequency:         models.FrequencyMonthly,
			Method:            "manual",
			Status:            models.ScheduleStatusScheduled,
		},
		{
			CaseID:            42,
			InstallmentNumber: 2,
			TotalInstallments: 2,
			AmountDue:         decimal.RequireFromString("50.00"),
			DueDate:           firstDue.AddDate(0, 0, 30),
			Frequency:         models.FrequencyMonthly,
			Method:            "manual",
			Status:            models.ScheduleStatusScheduled,
		},
	}

	err := repo.CreateSchedules(schedules)
	require.NoError(t, err)
	assert.NotZero(t, schedules[0].ID)
	assert.NotZero(t, schedules[1].ID)

	listed, err := repo.ListSchedules(42)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	assert.Equal(t, 1, listed[0].InstallmentNumber)
	assert.Equal(t, 2, listed[1].InstallmentNumber)
	assert.Equal(t, models.FrequencyMonthly, listed[0].Frequency)
	assert.True(t, listed[0].AmountDue.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(t, firstDue.Format("2006-01-02"), listed[0].DueDate.Format("2006-01-02"))
}

func TestPaymentRepository_MarkOverdue(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewPaymentRepository(db)

	now := time.Now()

	tests := []struct {
		name          string
		setupData     func() error
		expectedCount int64
	}{
		{
			name: "Past due pending installments are flipped",
			setupData: func() error {
				if _, err := insertTestInstallment(db.DB, 42, 1, "100.00", now.AddDate(0, 0, -10), "pending"); err != nil {
					return err
				}
				if _, err := insertTestInstallment(db.DB, 42, 2, "100.00", now.AddDate(0, 0, -1), "pending"); err != nil {
					return err
				}
				_, err := insertTestInstallment(db.DB, 42, 3, "100.00", now.AddDate(0, 0, 5), "pending")
				return err
			},
			expectedCount: 2,
		},
		{
			name: "Paid and already overdue rows are skipped",
			setupData: func() error {
				if _, err := insertTestInstallment(db.DB, 42, 1, "100.00", now.AddDate(0, 0, -10), "paid"); err != nil {
					return err
				}
				_, err := insertTestInstallment(db.DB, 42, 2, "100.00", now.AddDate(0, 0, -10), "overdue")
				return err
			},
			expectedCount: 0,
		},
		{
			name: "Due today is not overdue yet",
			setupData: func() error {
				_, err := insertTestInstallment(db.DB, 42, 1, "100.00", now, "pending")
				return err
			},
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestData(db)

			err := tt.setupData()
			require.NoError(t, err)

			count, err := repo.MarkOverdue(now)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)

			if tt.expectedCount > 0 {
				var overdue int
				err = db.Get(&overdue, "SELECT COUNT(*) FROM installments WHERE status = 'overdue'")
				require.NoError(t, err)
				assert.Equal(t, int(tt.expectedCount), overdue)
			}
		})
	}
}
