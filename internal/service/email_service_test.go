package service_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/renewalhq/renewal-gateway/internal/config"
	"github.com/renewalhq/renewal-gateway/internal/crypto"
	"github.com/renewalhq/renewal-gateway/internal/models"
	"github.com/renewalhq/renewal-gateway/internal/repository/mocks"
	"github.com/renewalhq/renewal-gateway/internal/service"
)

type fakeDelivery struct {
	providerID int64
	password   string
	to         []string
	msg        []byte
}

// fakeSMTPSender records deliveries instead of dialing out. Providers listed
// in failing refuse every send and probe.
type fakeSMTPSender struct {
	failing map[int64]error
	sent    []fakeDelivery
}

func newFakeSMTPSender() *fakeSMTPSender {
	return &fakeSMTPSender{failing: make(map[int64]error)}
}

func (f *fakeSMTPSender) Probe(provider *models.EmailProvider, password string) error {
	if err, ok := f.failing[provider.ID]; ok {
		return err
	}
	return nil
}

func (f *fakeSMTPSender) Send(provider *models.EmailProvider, password string, to []string, msg []byte) error {
	if err, ok := f.failing[provider.ID]; ok {
		return err
	}
	f.sent = append(f.sent, fakeDelivery{
		providerID: provider.ID,
		password:   password,
		to:         to,
		msg:        msg,
	})
	return nil
}

func newEmailTestConfig() *config.Config {
	return &config.Config{
		Email: config.EmailConfig{
			Timeout:            5,
			CredentialCacheTTL: 3600,
		},
	}
}

func availableProvider(t *testing.T, box *crypto.Box, id int64, priority int) *models.EmailProvider {
	t.Helper()

	sealed, err := box.Seal(fmt.Sprintf("smtp-password-%d", id))
	require.NoError(t, err)

	now := time.Now()
	return &models.EmailProvider{
		ID:               id,
		Name:             fmt.Sprintf("provider-%d", id),
		Host:             fmt.Sprintf("smtp%d.example.com", id),
		Port:             587,
		Username:         "mailer",
		Password:         sealed,
		UseTLS:           true,
		FromEmail:        "renewals@example.com",
		Priority:         priority,
		IsActive:         true,
		DailyLimit:       1000,
		MonthlyLimit:     10000,
		LastResetDaily:   now,
		LastResetMonthly: now,
		HealthStatus:     models.ProviderHealthy,
	}
}

func TestEmailService_Send_FailoverToNextProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	box := newTestBox(t)
	p1 := availableProvider(t, box, 1, 10)
	p2 := availableProvider(t, box, 2, 20)

	sender := newFakeSMTPSender()
	sender.failing[1] = errors.New("connection refused")

	mockRepo := mocks.NewMockRepository(ctrl)
	mockEmailRepo := mocks.NewMockEmailRepository(ctrl)
	mockRepo.EXPECT().Email().Return(mockEmailRepo).AnyTimes()

	mockEmailRepo.EXPECT().ListAvailable().Return([]*models.EmailProvider{p1, p2}, nil)
	mockEmailRepo.EXPECT().RecordUsage(int64(1), gomock.Any(), 0, 1).Return(nil)
	mockEmailRepo.EXPECT().IncrementUsage(int64(2), gomock.Any()).Return(nil)
	mockEmailRepo.EXPECT().RecordUsage(int64(2), gomock.Any(), 1, 0).Return(nil)

	svc := service.NewEmailService(newEmailTestConfig(), mockRepo, newTestRedis(), box, sender, zap.NewNop())

	resp, err := svc.Send(&models.SendEmailRequest{
		To:      []string{"customer@example.com"},
		Subject: "Renewal notice",
		Body:    "Your policy is up for renewal.",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ProviderID)
	assert.Equal(t, "provider-2", resp.ProviderName)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(2), sender.sent[0].providerID)
	assert.Equal(t, "smtp-password-2", sender.sent[0].password)
	assert.Contains(t, string(sender.sent[0].msg), "Subject: Renewal notice")
	assert.Contains(t, string(sender.sent[0].msg), "Content-Type: text/plain; charset=UTF-8")
}

func TestEmailService_Send_AllProvidersFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	box := newTestBox(t)
	p1 := availableProvider(t, box, 1, 10)
	p2 := availableProvider(t, box, 2, 20)

	sender := newFakeSMTPSender()
	sender.failing[1] = errors.New("connection refused")
	sender.failing[2] = errors.New("550 mailbox unavailable")

	mockRepo := mocks.NewMockRepository(ctrl)
	mockEmailRepo := mocks.NewMockEmailRepository(ctrl)
	mockRepo.EXPECT().Email().Return(mockEmailRepo).AnyTimes()

	mockEmailRepo.EXPECT().ListAvailable().Return([]*models.EmailProvider{p1, p2}, nil)
	// Failed attempts only move the per-day failure tallies, never the
	// send counters.
	mockEmailRepo.EXPECT().RecordUsage(int64(1), gomock.Any(), 0, 1).Return(nil)
	mockEmailRepo.EXPECT().RecordUsage(int64(2), gomock.Any(), 0, 1).Return(nil)

	svc := service.NewEmailService(newEmailTestConfig(), mockRepo, newTestRedis(), box, sender, zap.NewNop())

	_, err := svc.Send(&models.SendEmailRequest{
		To:      []string{"customer@example.com"},
		Subject: "Renewal notice",
		Body:    "Your policy is up for renewal.",
	})
	assert.ErrorIs(t, err, service.ErrNoProviderAvailable)
	assert.Contains(t, err.Error(), "550 mailbox unavailable")
	assert.Empty(t, sender.sent)
}

func TestEmailService_Send_SkipsExhaustedProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	box := newTestBox(t)
	p1 := availableProvider(t, box, 1, 10)
	p1.SentToday = p1.DailyLimit
	p2 := availableProvider(t, box, 2, 20)

	sender := newFakeSMTPSender()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockEmailRepo := mocks.NewMockEmailRepository(ctrl)
	mockRepo.EXPECT().Email().Return(mockEmailRepo).AnyTimes()

	mockEmailRepo.EXPECT().ListAvailable().Return([]*models.EmailProvider{p1, p2}, nil)
	mockEmailRepo.EXPECT().IncrementUsage(int64(2), gomock.Any()).Return(nil)
	mockEmailRepo.EXPECT().RecordUsage(int64(2), gomock.Any(), 1, 0).Return(nil)

	svc := service.NewEmailService(newEmailTestConfig(), mockRepo, newTestRedis(), box, sender, zap.NewNop())

	resp, err := svc.Send(&models.SendEmailRequest{
		To:      []string{"customer@example.com"},
		Subject: "Renewal notice",
		Body:    "Your policy is up for renewal.",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ProviderID)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(2), sender.sent[0].providerID)
}

func TestEmailService_Send_ExplicitProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	box := newTestBox(t)
	p3 := availableProvider(t, box, 3, 50)

	sender := newFakeSMTPSender()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockEmailRepo := mocks.NewMockEmailRepository(ctrl)
	mockRepo.EXPECT().Email().Return(mockEmailRepo).AnyTimes()

	mockEmailRepo.EXPECT().GetByID(int64(3)).Return(p3, nil)
	mockEmailRepo.EXPECT().IncrementUsage(int64(3), gomock.Any()).Return(nil)
	mockEmailRepo.EXPECT().RecordUsage(int64(3), gomock.Any(), 1, 0).Return(nil)

	svc := service.NewEmailService(newEmailTestConfig(), mockRepo, newTestRedis(), box, sender, zap.NewNop())

	resp, err := svc.Send(&models.SendEmailRequest{
		ProviderID: 3,
		To:         []string{"customer@example.com"},
		Subject:    "Renewal notice",
		Body:       "<p>Your policy is up for renewal.</p>",
		HTML:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ProviderID)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, string(sender.sent[0].msg), "Content-Type: text/html; charset=UTF-8")
}

func TestEmailService_Send_ExplicitProviderNotSendable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	box := newTestBox(t)
	p3 := availableProvider(t, box, 3, 50)
	p3.IsActive = false

	sender := newFakeSMTPSender()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockEmailRepo := mocks.NewMockEmailRepository(ctrl)
	mockRepo.EXPECT().Email().Return(mockEmailRepo).AnyTimes()

	mockEmailRepo.EXPECT().GetByID(int64(3)).Return(p3, nil)

	svc := service.NewEmailService(newEmailTestConfig(), mockRepo, newTestRedis(), box, sender, zap.NewNop())

	_, err := svc.Send(&models.SendEmailRequest{
		ProviderID: 3,
		To:         []string{"customer@example.com"},
		Subject:    "Renewal notice",
		Body:       "Your policy is up for renewal.",
	})
	assert.ErrorIs(t, err, service.ErrNoProviderAvailable)
	assert.Empty(t, sender.sent)
}

func TestEmailService_Send_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	box := newTestBox(t)
	mockRepo := mocks.NewMockRepository(ctrl)

	svc := service.NewEmailService(newEmailTestConfig(), mockRepo, newTestRedis(), box, newFakeSMTPSender(), zap.NewNop())

	_, err := svc.Send(&models.SendEmailRequest{Subject: "no recipients", Body: "x"})
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestEmailService_CheckProviderHealth(t *testing.T) {
	tests := []struct {
		name           string
		probeErr       error
		expectedStatus models.ProviderHealth
	}{
		{
			name:           "healthy",
			expectedStatus: models.ProviderHealthy,
		},
		{
			name:           "unhealthy",
			probeErr:       errors.New("535 authentication failed"),
			expectedStatus: models.ProviderUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			box := newTestBox(t)
			provider := availableProvider(t, box, 1, 10)

			sender := newFakeSMTPSender()
			if tt.probeErr != nil {
				sender.failing[1] = tt.probeErr
			}

			mockRepo := mocks.NewMockRepository(ctrl)
			mockEmailRepo := mocks.NewMockEmailRepository(ctrl)
			mockRepo.EXPECT().Email().Return(mockEmailRepo).AnyTimes()

			mockEmailRepo.EXPECT().GetByID(int64(1)).Return(provider, nil)
			mockEmailRepo.EXPECT().UpdateHealth(int64(1), tt.expectedStatus, gomock.Any(), gomock.Any()).Return(nil)
			mockEmailRepo.EXPECT().InsertHealthLog(gomock.Any()).DoAndReturn(func(log *models.EmailHealthLog) error {
				assert.Equal(t, tt.expectedStatus, log.Status)
				assert.Equal(t, tt.probeErr != nil, log.ErrorMessage.Valid)
				return nil
			})

			svc := service.NewEmailService(newEmailTestConfig(), mockRepo, newTestRedis(), box, sender, zap.NewNop())

			log, err := svc.CheckProviderHealth(1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, log.Status)
		})
	}
}

func TestEmailService_CreateProvider_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	box := newTestBox(t)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockEmailRepo := mocks.NewMockEmailRepository(ctrl)
	mockRepo.EXPECT().Email().Return(mockEmailRepo).AnyTimes()

	mockEmailRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(provider *models.EmailProvider) error {
		assert.Equal(t, 1000, provider.DailyLimit)
		assert.Equal(t, 10000, provider.MonthlyLimit)
		assert.Equal(t, 60, provider.RateLimitPerMinute)
		assert.Equal(t, models.ProviderUnknown, provider.HealthStatus)
		assert.True(t, provider.IsActive)
		assert.NotEqual(t, "plain-password", provider.Password)
		provider.ID = 1
		return nil
	})

	svc := service.NewEmailService(newEmailTestConfig(), mockRepo, newTestRedis(), box, newFakeSMTPSender(), zap.NewNop())

	provider, err := svc.CreateProvider(&models.CreateProviderRequest{
		Name:      "primary",
		Host:      "smtp.example.com",
		Port:      587,
		Username:  "mailer",
		Password:  "plain-password",
		UseTLS:    true,
		FromEmail: "renewals@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), provider.ID)
}

func TestEmailService_CreateProvider_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	box := newTestBox(t)
	mockRepo := mocks.NewMockRepository(ctrl)

	svc := service.NewEmailService(newEmailTestConfig(), mockRepo, newTestRedis(), box, newFakeSMTPSender(), zap.NewNop())

	_, err := svc.CreateProvider(&models.CreateProviderRequest{Name: "incomplete"})
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestEmailService_DeleteProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	box := newTestBox(t)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockEmailRepo := mocks.NewMockEmailRepository(ctrl)
	mockRepo.EXPECT().Email().Return(mockEmailRepo).AnyTimes()

	mockEmailRepo.EXPECT().SoftDelete(int64(4)).Return(nil)

	svc := service.NewEmailService(newEmailTestConfig(), mockRepo, newTestRedis(), box, newFakeSMTPSender(), zap.NewNop())

	err := svc.DeleteProvider(4)
	assert.NoError(t, err)
}
