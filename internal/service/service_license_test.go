package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/cursion-setup/internal/adapter"
	"github.com/MKhiriev/cursion-setup/internal/logger"
	"github.com/MKhiriev/cursion-setup/internal/mock"
	"github.com/MKhiriev/cursion-setup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLicenseSvc(t *testing.T) (LicenseService, *mock.MockLicenseAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockLicenseAdapter(ctrl)
	return NewLicenseService(mockAdapter, logger.Nop()), mockAdapter
}

// ── Verify ───────────────────────────────────────────────────────────────────

func TestLicenseService_Verify_Success(t *testing.T) {
	svc, mockAdapter := newTestLicenseSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().VerifyLicense(ctx, "lic-123").Return(models.License{
		Key: "lic-123",
		Data: map[string]string{
			"TWILIO_SID":    "AC1",
			"SLACK_APP_ID":  "A1",
			"UNRELATED_KEY": "x",
		},
	}, nil)

	got, err := svc.Verify(ctx, "  lic-123 \n")

	require.NoError(t, err)
	assert.Equal(t, "lic-123", got.Key)
	assert.Equal(t, map[string]string{"TWILIO_SID": "AC1", "SLACK_APP_ID": "A1"}, got.Data)
}

func TestLicenseService_Verify_EmptyKey(t *testing.T) {
	svc, _ := newTestLicenseSvc(t)

	_, err := svc.Verify(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyLicenseKey)
}

func TestLicenseService_Verify_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		adapterErr error
		wantErr    error
	}{
		{"rejected", fmt.Errorf("%w: unknown key", adapter.ErrLicenseRejected), ErrInvalidLicense},
		{"unauthorized", fmt.Errorf("%w: ", adapter.ErrUnauthorized), ErrInvalidLicense},
		{"forbidden", adapter.ErrForbidden, ErrInvalidLicense},
		{"not found", adapter.ErrNotFound, ErrInvalidLicense},
		{"bad request", adapter.ErrBadRequest, ErrInvalidLicense},
		{"internal", adapter.ErrInternalServerError, ErrLicenseServerUnavailable},
		{"bad gateway", adapter.ErrBadGateway, ErrLicenseServerUnavailable},
		{"malformed", adapter.ErrMalformedResponse, ErrLicenseServerUnavailable},
		{"network", errors.New("dial tcp: connection refused"), ErrLicenseServerUnavailable},
		{"deadline", fmt.Errorf("verify license request: %w", context.DeadlineExceeded), ErrLicenseServerUnavailable},
		{"canceled", fmt.Errorf("verify license request: %w", context.Canceled), context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter := newTestLicenseSvc(t)
			mockAdapter.EXPECT().VerifyLicense(gomock.Any(), "lic").Return(models.License{}, tt.adapterErr)

			got, err := svc.Verify(context.Background(), "lic")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.adapterErr)
			assert.Equal(t, models.License{}, got)
		})
	}
}

// ── mapAdapterError ──────────────────────────────────────────────────────────

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
}

func TestMapAdapterError_CanceledNotWrapped(t *testing.T) {
	err := mapAdapterError(context.Canceled)
	assert.NotErrorIs(t, err, ErrLicenseServerUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidLicense)
}

// ── filterLicenseData ────────────────────────────────────────────────────────

func TestFilterLicenseData(t *testing.T) {
	kept, ignored := filterLicenseData(map[string]string{
		"GOOGLE_CRUX_KEY": "g",
		"ZED":             "z",
		"ALPHA":           "a",
	})

	assert.Equal(t, map[string]string{"GOOGLE_CRUX_KEY": "g"}, kept)
	assert.Equal(t, []string{"ALPHA", "ZED"}, ignored)
}

func TestFilterLicenseData_Nil(t *testing.T) {
	kept, ignored := filterLicenseData(nil)
	assert.Empty(t, kept)
	assert.Empty(t, ignored)
}
