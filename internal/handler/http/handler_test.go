package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/rhsm-sync/internal/config"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/internal/mock"
	"github.com/MKhiriev/rhsm-sync/internal/service"
	"github.com/MKhiriev/rhsm-sync/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "rhsm-sync-test"
)

type testDeps struct {
	sync    *mock.MockSyncClient
	history *mock.MockHistoryReader
	appInfo *mock.MockAppInfoService
}

// newTestHandler wires a Handler to fresh mocks. withHistory=false leaves
// the history reader unset, as when the agent runs without a database.
func newTestHandler(t *testing.T, withHistory bool) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		sync:    mock.NewMockSyncClient(ctrl),
		history: mock.NewMockHistoryReader(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := &Handler{
		syncClient:   deps.sync,
		appInfo:      deps.appInfo,
		tokenSignKey: testSignKey,
		tokenIssuer:  testIssuer,
		logger:       logger.Nop(),
	}
	if withHistory {
		h.history = deps.history
	}
	return h, deps
}

func validToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, "ops", time.Hour, testSignKey)
	require.NoError(t, err)
	return token
}

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

// newTestLogger creates a logger that writes to the provided buffer.
func newTestLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestNewHandler_WithoutHistoryOrMetrics(t *testing.T) {
	h := NewHandler(&service.Services{}, config.ServerApp{TokenSignKey: "k", TokenIssuer: "i"}, nil, logger.Nop())

	assert.Nil(t, h.history)
	assert.Nil(t, h.metrics)
	assert.Equal(t, "k", h.tokenSignKey)
	assert.Equal(t, "i", h.tokenIssuer)
}

func TestNewHandler_WithHistory(t *testing.T) {
	h := NewHandler(&service.Services{History: &service.SnapshotHistory{}}, config.ServerApp{}, nil, logger.Nop())

	assert.NotNil(t, h.history)
}
