package repository_test

import (
	"testing"
	"time"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renewalhq/renewal-gateway/internal/models"
	"github.com/renewalhq/renewal-gateway/internal/repository"
)

func TestAccountRepository_CreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewAccountRepository(db)

	tests := []struct {
		name     string
		account  *models.Account
		validate func(t *testing.T, created *models.Account)
	}{
		{
			name: "Create account and read it back",
			account: &models.Account{
				Name:               "Renewals UAE",
				WabaID:             "waba-100",
				AccessToken:        "sealed-access-token",
				WebhookVerifyToken: "verify-100",
				Status:             models.AccountStatusVerified,
				HealthStatus:       models.HealthStatusUnknown,
				DailyLimit:         1000,
				MonthlyLimit:       10000,
				RateLimitPerMinute: 60,
				IsActive:           true,
			},
			validate: func(t *testing.T, created *models.Account) {
				got, err := repo.GetByID(created.ID)
				require.NoError(t, err)

				assert.Equal(t, "Renewals UAE", got.Name)
				assert.Equal(t, "waba-100", got.WabaID)
				assert.Equal(t, "sealed-access-token", got.AccessToken)
				assert.Equal(t, models.AccountStatusVerified, got.Status)
				assert.Equal(t, 1000, got.DailyLimit)
				assert.Equal(t, 10000, got.MonthlyLimit)
				assert.Equal(t, 0, got.SentToday)
				assert.Equal(t, 0, got.SentThisMonth)
				assert.True(t, got.IsActive)
				assert.False(t, got.CreatedAt.IsZero())
			},
		},
		{
			name: "Create pending account keeps pending status",
			account: &models.Account{
				Name:               "Pending Account",
				WabaID:             "waba-101",
				AccessToken:        "sealed-access-token",
				WebhookVerifyToken: "verify-101",
				Status:             models.AccountStatusPending,
				HealthStatus:       models.HealthStatusUnknown,
				DailyLimit:         500,
				MonthlyLimit:       5000,
				RateLimitPerMinute: 30,
				IsActive:           true,
			},
			validate: func(t *testing.T, created *models.Account) {
				got, err := repo.GetByID(created.ID)
				require.NoError(t, err)

				assert.Equal(t, models.AccountStatusPending, got.Status)
				assert.Equal(t, models.HealthStatusUnknown, got.HealthStatus)
				assert.False(t, got.LastHealthCheck.Valid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestData(db)

			err := repo.Create(tt.account)
			require.NoError(t, err)
			assert.NotZero(t, tt.account.ID)

			tt.validate(t, tt.account)
		})
	}
}

func TestAccountRepository_GetByID_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewAccountRepository(db)

	account, err := repo.GetByID(99999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, account)
}

func TestAccountRepository_GetByVerifyToken(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewAccountRepository(db)

	tests := []struct {
		name        string
		setupData   func() error
		token       string
		expectError error
		expectName  string
	}{
		{
			name: "Matching token returns the account",
			setupData: func() error {
				now := time.Now()
				_, err := insertTestAccount(db.DB, "Primary", "waba-200", "verify-secret", "verified", 0, 0, now, now)
				return err
			},
			token:      "verify-secret",
			expectName: "Primary",
		},
		{
			name: "Unknown token returns not found",
			setupData: func() error {
				now := time.Now()
				_, err := insertTestAccount(db.DB, "Primary", "waba-201", "verify-secret", "verified", 0, 0, now, now)
				return err
			},
			token:       "bogus-token",
			expectError: repository.ErrNotFound,
		},
		{
			name: "Inactive account is not matched",
			setupData: func() error {
				now := time.Now()
				id, err := insertTestAccount(db.DB, "Disabled", "waba-202", "verify-disabled", "verified", 0, 0, now, now)
				if err != nil {
					return err
				}
				_, err = db.Exec("UPDATE whatsapp_accounts SET is_active = FALSE WHERE id = $1", id)
				return err
			},
			token:       "verify-disabled",
			expectError: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestData(db)

			err := tt.setupData()
			require.NoError(t, err)

			account, err := repo.GetByVerifyToken(tt.token)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, account)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectName, account.Name)
		})
	}
}

func TestAccountRepository_IncrementUsage(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewAccountRepository(db)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	lastMonth := now.AddDate(0, -1, 0)

	tests := []struct {
		name               string
		sentToday          int
		sentThisMonth      int
		lastResetDaily     time.Time
		lastResetMonthly   time.Time
		expectedToday      int
		expectedThisMonth  int
	}{
		{
			name:              "Same day increments both counters",
			sentToday:         5,
			sentThisMonth:     42,
			lastResetDaily:    now,
			lastResetMonthly:  now,
			expectedToday:     6,
			expectedThisMonth: 43,
		},
		{
			name:              "Day rollover restarts daily counter at one",
			sentToday:         999,
			sentThisMonth:     42,
			lastResetDaily:    yesterday,
			lastResetMonthly:  now,
			expectedToday:     1,
			expectedThisMonth: 43,
		},
		{
			name:              "Month rollover restarts both counters at one",
			sentToday:         999,
			sentThisMonth:     9999,
			lastResetDaily:    lastMonth,
			lastResetMonthly:  lastMonth,
			expectedToday:     1,
			expectedThisMonth: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestData(db)

			id, err := insertTestAccount(db.DB, "Counter", "waba-300", "verify-300", "verified",
				tt.sentToday, tt.sentThisMonth, tt.lastResetDaily, tt.lastResetMonthly)
			require.NoError(t, err)

			err = repo.IncrementUsage(id, now)
			require.NoError(t, err)

			account, err := repo.GetByID(id)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedToday, account.SentToday)
			assert.Equal(t, tt.expectedThisMonth, account.SentThisMonth)
			assert.Equal(t, now.Format("2006-01-02"), account.LastResetDaily.Format("2006-01-02"))
			assert.Equal(t, now.Format("2006-01-02"), account.LastResetMonthly.Format("2006-01-02"))
		})
	}
}

func TestAccountRepository_ResetStaleCounters(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewAccountRepository(db)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	staleID, err := insertTestAccount(db.DB, "Stale", "waba-400", "verify-400", "verified", 800, 5000, yesterday, yesterday)
	require.NoError(t, err)

	freshID, err := insertTestAccount(db.DB, "Fresh", "waba-401", "verify-401", "verified", 12, 120, now, now)
	require.NoError(t, err)

	err = repo.ResetStaleCounters(now)
	require.NoError(t, err)

	stale, err := repo.GetByID(staleID)
	require.NoError(t, err)
	assert.Equal(t, 0, stale.SentToday)
	assert.Equal(t, now.Format("2006-01-02"), stale.LastResetDaily.Format("2006-01-02"))

	fresh, err := repo.GetByID(freshID)
	require.NoError(t, err)
	assert.Equal(t, 12, fresh.SentToday, "counters reset today must not be touched")
	assert.Equal(t, 120, fresh.SentThisMonth)
}

func TestAccountRepository_RecordUsage_Upsert(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewAccountRepository(db)

	now := time.Now()
	id, err := insertTestAccount(db.DB, "Usage", "waba-500", "verify-500", "verified", 0, 0, now, now)
	require.NoError(t, err)

	err = repo.RecordUsage(id, now, 1, 0, 0, 0)
	require.NoError(t, err)

	err = repo.RecordUsage(id, now, 2, 1, 1, 3)
	require.NoError(t, err)

	var log models.AccountUsageLog
	err = db.Get(&log, "SELECT id, account_id, date, messages_sent, messages_delivered, messages_failed, messages_read FROM whatsapp_usage_logs WHERE account_id = $1", id)
	require.NoError(t, err)

	assert.Equal(t, 3, log.MessagesSent)
	assert.Equal(t, 1, log.MessagesDelivered)
	assert.Equal(t, 1, log.MessagesFailed)
	assert.Equal(t, 3, log.MessagesRead)

	var count int
	err = db.Get(&count, "SELECT COUNT(*) FROM whatsapp_usage_logs WHERE account_id = $1", id)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "same account and date must share one row")
}

func TestAccountRepository_UpdateAndSoftDelete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewAccountRepository(db)

	now := time.Now()
	id, err := insertTestAccount(db.DB, "Before", "waba-600", "verify-600", "pending", 0, 0, now, now)
	require.NoError(t, err)

	account, err := repo.GetByID(id)
	require.NoError(t, err)

	account.Name = "After"
	account.Status = models.AccountStatusVerified
	account.DailyLimit = 2000

	err = repo.Update(account)
	require.NoError(t, err)

	updated, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, models.AccountStatusVerified, updated.Status)
	assert.Equal(t, 2000, updated.DailyLimit)

	err = repo.SoftDelete(id)
	require.NoError(t, err)

	_, err = repo.GetByID(id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.SoftDelete(id)
	assert.ErrorIs(t, err, repository.ErrNotFound, "second delete must report not found")

	err = repo.Update(updated)
	assert.ErrorIs(t, err, repository.ErrNotFound, "update of a deleted account must report not found")
}

func TestAccountRepository_PhoneNumbers(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewAccountRepository(db)

	now := time.Now()
	accountID, err := insertTestAccount(db.DB, "Phones", "waba-700", "verify-700", "verified", 0, 0, now, now)
	require.NoError(t, err)

	_, err = insertTestPhoneNumber(db.DB, accountID, "pn-secondary", "+971500000002", false)
	require.NoError(t, err)

	primaryID, err := insertTestPhoneNumber(db.DB, accountID, "pn-primary", "+971500000001", true)
	require.NoError(t, err)

	primary, err := repo.PrimaryPhoneNumber(accountID)
	require.NoError(t, err)
	assert.Equal(t, primaryID, primary.ID)
	assert.Equal(t, "pn-primary", primary.PhoneNumberID)
	assert.True(t, primary.IsPrimary)

	byProvider, err := repo.PhoneNumberByProviderID("pn-secondary")
	require.NoError(t, err)
	assert.Equal(t, accountID, byProvider.AccountID)
	assert.Equal(t, "+971500000002", byProvider.PhoneNumber)

	_, err = repo.PhoneNumberByProviderID("pn-unknown")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
