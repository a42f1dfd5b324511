package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/renewalhq/renewal-gateway/internal/config"
	"github.com/renewalhq/renewal-gateway/internal/repository/mocks"
	"github.com/renewalhq/renewal-gateway/internal/service"
	servicemocks "github.com/renewalhq/renewal-gateway/internal/service/mocks"
)

type schedulerFixture struct {
	repo     *mocks.MockRepository
	account  *mocks.MockAccountRepository
	email    *mocks.MockEmailRepository
	whatsapp *servicemocks.MockWhatsAppService
	emailSvc *servicemocks.MockEmailService
	payment  *servicemocks.MockPaymentService
}

func newSchedulerService(t *testing.T, ctrl *gomock.Controller, setup func(f *schedulerFixture)) service.SchedulerService {
	t.Helper()

	f := &schedulerFixture{
		repo:     mocks.NewMockRepository(ctrl),
		account:  mocks.NewMockAccountRepository(ctrl),
		email:    mocks.NewMockEmailRepository(ctrl),
		whatsapp: servicemocks.NewMockWhatsAppService(ctrl),
		emailSvc: servicemocks.NewMockEmailService(ctrl),
		payment:  servicemocks.NewMockPaymentService(ctrl),
	}

	f.repo.EXPECT().Account().Return(f.account).AnyTimes()
	f.repo.EXPECT().Email().Return(f.email).AnyTimes()

	setup(f)

	cfg := &config.Config{
		Scheduler: config.SchedulerConfig{
			IntervalMinutes: 1,
		},
	}

	return service.NewSchedulerService(cfg, f.repo, f.whatsapp, f.emailSvc, f.payment, zap.NewNop())
}

func expectQuietSweep(f *schedulerFixture) {
	f.account.EXPECT().ResetStaleCounters(gomock.Any()).Return(nil).AnyTimes()
	f.email.EXPECT().ResetStaleCounters(gomock.Any()).Return(nil).AnyTimes()
	f.payment.EXPECT().SweepOverdue().Return(int64(0), nil).AnyTimes()
	f.whatsapp.EXPECT().RunHealthSweep().Return(nil).AnyTimes()
	f.emailSvc.EXPECT().RunHealthSweep().Return(nil).AnyTimes()
}

func TestSchedulerService_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSchedulerService(t, ctrl, expectQuietSweep)

	assert.False(t, svc.IsRunning())

	err := svc.Start()
	require.NoError(t, err)
	assert.True(t, svc.IsRunning())

	err = svc.Start()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	err = svc.Stop()
	require.NoError(t, err)
	assert.False(t, svc.IsRunning())

	err = svc.Stop()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not running")
}

func TestSchedulerService_MaintenanceSweepRunsOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSchedulerService(t, ctrl, func(f *schedulerFixture) {
		f.account.EXPECT().ResetStaleCounters(gomock.Any()).Return(nil).MinTimes(1)
		f.email.EXPECT().ResetStaleCounters(gomock.Any()).Return(nil).MinTimes(1)
		f.payment.EXPECT().SweepOverdue().Return(int64(3), nil).MinTimes(1)
		f.whatsapp.EXPECT().RunHealthSweep().Return(nil).MinTimes(1)
		f.emailSvc.EXPECT().RunHealthSweep().Return(nil).MinTimes(1)
	})

	err := svc.Start()
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	err = svc.Stop()
	require.NoError(t, err)
}

func TestSchedulerService_SweepStepFailuresDoNotAbortTheSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Every later step still runs when the first one fails.
	svc := newSchedulerService(t, ctrl, func(f *schedulerFixture) {
		f.account.EXPECT().ResetStaleCounters(gomock.Any()).Return(errors.New("db timeout")).MinTimes(1)
		f.email.EXPECT().ResetStaleCounters(gomock.Any()).Return(nil).MinTimes(1)
		f.payment.EXPECT().SweepOverdue().Return(int64(0), errors.New("db timeout")).MinTimes(1)
		f.whatsapp.EXPECT().RunHealthSweep().Return(nil).MinTimes(1)
		f.emailSvc.EXPECT().RunHealthSweep().Return(nil).MinTimes(1)
	})

	err := svc.Start()
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	assert.True(t, svc.IsRunning(), "sweep errors must not stop the scheduler")

	err = svc.Stop()
	require.NoError(t, err)
}

func TestSchedulerService_MultipleStartStopCycles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSchedulerService(t, ctrl, expectQuietSweep)

	for i := 0; i < 3; i++ {
		err := svc.Start()
		require.NoError(t, err)
		assert.True(t, svc.IsRunning())

		err = svc.Stop()
		require.NoError(t, err)
		assert.False(t, svc.IsRunning())
	}
}
