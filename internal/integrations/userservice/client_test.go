package userservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/users/user-1/profile", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "user-1",
			"phone": "+15550100",
			"phone_verified": true,
			"driver_license_number": "DL-123456",
			"driver_license_expiry": "2030-01-01"
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})

	profile, err := client.GetProfile(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.ID)
	assert.True(t, profile.HasVerifiedPhone())
	assert.True(t, profile.HasValidLicense(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)))
}

func TestGetProfile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})

	profile, err := client.GetProfile(context.Background(), "missing")

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetProfile_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})

	profile, err := client.GetProfile(context.Background(), "user-1")

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestProfile_LicenseChecks(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	number := "DL-123456"

	testCases := []struct {
		name    string
		expiry  *string
		isValid bool
	}{
		{"истекает сегодня - ещё действует", strPtr("2025-05-01"), true},
		{"истекло вчера", strPtr("2025-04-30"), false},
		{"действует", strPtr("2030-01-01"), true},
		{"дата не указана", nil, false},
		{"мусор вместо даты", strPtr("not-a-date"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Profile{
				DriverLicenseNumber: &number,
				DriverLicenseExpiry: tc.expiry,
			}
			assert.Equal(t, tc.isValid, p.HasValidLicense(now))
		})
	}
}

func strPtr(s string) *string { return &s }
