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

func TestMessageRepository_CreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)

	now := time.Now()
	accountID, err := insertTestAccount(db.DB, "Messages", "waba-800", "verify-800", "verified", 0, 0, now, now)
	require.NoError(t, err)

	phoneID, err := insertTestPhoneNumber(db.DB, accountID, "pn-800", "+971500000001", true)
	require.NoError(t, err)

	message := &models.Message{
		AccountID:     accountID,
		PhoneNumberID: phoneID,
		MessageID:     "wamid.CREATE1",
		Direction:     models.DirectionOutbound,
		MessageType:   models.MessageTypeText,
		ToPhone:       "+971500000002",
		FromPhone:     "+971500000001",
		Content:       []byte(`{"body":"Your policy expires soon"}`),
		Status:        models.MessageStatusSent,
	}

	err = repo.Create(message)
	require.NoError(t, err)
	assert.NotZero(t, message.ID)

	got, err := repo.GetByMessageID("wamid.CREATE1")
	require.NoError(t, err)
	assert.Equal(t, accountID, got.AccountID)
	assert.Equal(t, models.DirectionOutbound, got.Direction)
	assert.Equal(t, models.MessageTypeText, got.MessageType)
	assert.Equal(t, models.MessageStatusSent, got.Status)
	assert.JSONEq(t, `{"body":"Your policy expires soon"}`, string(got.Content))

	_, err = repo.GetByMessageID("wamid.MISSING")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMessageRepository_List_Pagination(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)

	now := time.Now()
	accountID, err := insertTestAccount(db.DB, "Paging", "waba-801", "verify-801", "verified", 0, 0, now, now)
	require.NoError(t, err)

	phoneID, err := insertTestPhoneNumber(db.DB, accountID, "pn-801", "+971500000001", true)
	require.NoError(t, err)

	otherID, err := insertTestAccount(db.DB, "Other", "waba-802", "verify-802", "verified", 0, 0, now, now)
	require.NoError(t, err)

	otherPhoneID, err := insertTestPhoneNumber(db.DB, otherID, "pn-802", "+971500000009", true)
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		createdAt := now.Add(time.Duration(i) * time.Minute)
		_, err := insertTestMessage(db.DB, accountID, phoneID, "wamid.PAGE"+string(rune('A'+i)), "sent", createdAt)
		require.NoError(t, err)
	}
	_, err = insertTestMessage(db.DB, otherID, otherPhoneID, "wamid.OTHER", "sent", now)
	require.NoError(t, err)

	messages, err := repo.List(accountID, 0, 5)
	require.NoError(t, err)
	require.Len(t, messages, 5)

	assert.Equal(t, "wamid.PAGEG", messages[0].MessageID, "newest message first")
	for i := 1; i < len(messages); i++ {
		assert.True(t, messages[i-1].CreatedAt.After(messages[i].CreatedAt) ||
			messages[i-1].CreatedAt.Equal(messages[i].CreatedAt),
			"messages should be ordered by created_at DESC")
	}

	secondPage, err := repo.List(accountID, 5, 5)
	require.NoError(t, err)
	assert.Len(t, secondPage, 2)

	count, err := repo.Count(accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count, "other accounts must not leak into the count")
}

func TestMessageRepository_UpdateStatus(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)

	now := time.Now()
	accountID, err := insertTestAccount(db.DB, "Status", "waba-803", "verify-803", "verified", 0, 0, now, now)
	require.NoError(t, err)

	phoneID, err := insertTestPhoneNumber(db.DB, accountID, "pn-803", "+971500000001", true)
	require.NoError(t, err)

	tests := []struct {
		name         string
		status       models.MessageStatus
		errorCode    *string
		errorMessage *string
		validate     func(t *testing.T, msg *models.Message)
	}{
		{
			name:   "Delivered stamps delivered_at",
			status: models.MessageStatusDelivered,
			validate: func(t *testing.T, msg *models.Message) {
				assert.Equal(t, models.MessageStatusDelivered, msg.Status)
				assert.True(t, msg.DeliveredAt.Valid)
				assert.False(t, msg.ReadAt.Valid)
				assert.False(t, msg.ErrorCode.Valid)
			},
		},
		{
			name:   "Read stamps read_at without touching delivered_at",
			status: models.MessageStatusRead,
			validate: func(t *testing.T, msg *models.Message) {
				assert.Equal(t, models.MessageStatusRead, msg.Status)
				assert.True(t, msg.ReadAt.Valid)
				assert.False(t, msg.DeliveredAt.Valid)
			},
		},
		{
			name:         "Failed keeps error code and message",
			status:       models.MessageStatusFailed,
			errorCode:    ptr("131026"),
			errorMessage: ptr("Message undeliverable"),
			validate: func(t *testing.T, msg *models.Message) {
				assert.Equal(t, models.MessageStatusFailed, msg.Status)
				assert.True(t, msg.ErrorCode.Valid)
				assert.Equal(t, "131026", msg.ErrorCode.String)
				assert.True(t, msg.ErrorMessage.Valid)
				assert.Equal(t, "Message undeliverable", msg.ErrorMessage.String)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _ = db.Exec("TRUNCATE TABLE whatsapp_messages RESTART IDENTITY CASCADE")

			_, err := insertTestMessage(db.DB, accountID, phoneID, "wamid.STATUS1", "sent", now)
			require.NoError(t, err)

			err = repo.UpdateStatus("wamid.STATUS1", tt.status, tt.errorCode, tt.errorMessage, now)
			require.NoError(t, err)

			msg, err := repo.GetByMessageID("wamid.STATUS1")
			require.NoError(t, err)
			tt.validate(t, msg)
		})
	}
}

func TestMessageRepository_UpdateStatus_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMessageRepository(db)

	err := repo.UpdateStatus("wamid.NOSUCH", models.MessageStatusDelivered, nil, nil, time.Now())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
