package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/mock"
	"github.com/MKhiriev/rhsm-sync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	err   error
	ran   bool
	ctxOK bool
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.ran = true
	f.ctxOK = ctx.Err() == nil
	return f.err
}

func TestNewApp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewApp(&service.Services{}, &fakeUI{}, logger.Nop())
	assert.ErrorIs(t, err, errNoSyncClient)

	_, err = NewApp(&service.Services{SyncClient: mock.NewMockSyncClient(ctrl)}, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoUI)
}

func TestApp_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSyncClient(ctrl)
	ui := &fakeUI{}

	gomock.InOrder(
		client.EXPECT().Init(gomock.Any()).Return(nil),
		client.EXPECT().Close(),
	)

	a, err := NewApp(&service.Services{SyncClient: client}, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, ui.ran)
	assert.True(t, ui.ctxOK)
}

func TestApp_Run_InitFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSyncClient(ctrl)
	ui := &fakeUI{}
	initErr := errors.New("no system bus")

	client.EXPECT().Init(gomock.Any()).Return(initErr)
	client.EXPECT().Close()

	a, err := NewApp(&service.Services{SyncClient: client}, ui, logger.Nop())
	require.NoError(t, err)

	err = a.Run(context.Background())
	assert.ErrorIs(t, err, initErr)
	assert.False(t, ui.ran)
}

func TestApp_Run_UIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSyncClient(ctrl)
	uiErr := errors.New("no tty")

	client.EXPECT().Init(gomock.Any()).Return(nil)
	client.EXPECT().Close()

	a, err := NewApp(&service.Services{SyncClient: client}, &fakeUI{err: uiErr}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, a.Run(context.Background()), uiErr)
}
