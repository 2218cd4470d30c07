package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawalAdmission_Admit_WindowBoundaries(t *testing.T) {
	admission := services.NewWithdrawalAdmission(time.UTC)
	courierID := kernel.NewUUID()

	tests := []struct {
		name     string
		at       time.Time
		admitted bool
	}{
		{"one second before opening", time.Date(2025, 3, 10, 7, 59, 59, 0, time.UTC), false},
		{"exactly at opening", time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), true},
		{"midday", time.Date(2025, 3, 10, 13, 30, 0, 0, time.UTC), true},
		{"last admitted second", time.Date(2025, 3, 10, 19, 59, 59, 0, time.UTC), true},
		{"exactly at closing", time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC), false},
		{"late evening", time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC), false},
		{"early morning", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := admission.Admit(courierID, tt.at, 0)
			if tt.admitted {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, services.ErrOutsideWithdrawalWindow)
			}
		})
	}
}

func TestWithdrawalAdmission_Admit_Quota(t *testing.T) {
	admission := services.NewWithdrawalAdmission(time.UTC)
	courierID := kernel.NewUUID()
	at := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	for count := range services.MaxWithdrawalsPerDay {
		require.NoError(t, admission.Admit(courierID, at, count))
	}

	err := admission.Admit(courierID, at, services.MaxWithdrawalsPerDay)
	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrQuotaExceeded)

	var quotaErr *services.QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, services.MaxWithdrawalsPerDay, quotaErr.Count)
	assert.True(t, courierID.IsEqual(quotaErr.CourierID))
}

// Outside the window the request is rejected on the window rule even when
// the quota is also exhausted.
func TestWithdrawalAdmission_Admit_WindowCheckedBeforeQuota(t *testing.T) {
	admission := services.NewWithdrawalAdmission(time.UTC)

	err := admission.Admit(kernel.NewUUID(),
		time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC), services.MaxWithdrawalsPerDay)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrOutsideWithdrawalWindow)
	require.NotErrorIs(t, err, services.ErrQuotaExceeded)
}

func TestWithdrawalAdmission_Admit_EmptyCourierID(t *testing.T) {
	admission := services.NewWithdrawalAdmission(time.UTC)

	err := admission.Admit(kernel.UUID{}, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC), 0)

	require.Error(t, err)
}

// The window is evaluated in the configured timezone, not the timestamp's.
// 22:00 UTC is 19:00 in Sao Paulo (UTC-3), which is still inside the window.
func TestWithdrawalAdmission_Admit_ConfiguredTimezone(t *testing.T) {
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	admission := services.NewWithdrawalAdmission(saoPaulo)
	courierID := kernel.NewUUID()

	at := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	require.NoError(t, admission.Admit(courierID, at, 0))

	utcAdmission := services.NewWithdrawalAdmission(time.UTC)
	err := utcAdmission.Admit(courierID, at, 0)
	require.ErrorIs(t, err, services.ErrOutsideWithdrawalWindow)
}

func TestWithdrawalAdmission_NilLocationDefaultsToUTC(t *testing.T) {
	admission := services.NewWithdrawalAdmission(nil)

	require.NoError(t, admission.Admit(kernel.NewUUID(),
		time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC), 0))
}

func TestWithdrawalAdmission_DayRange(t *testing.T) {
	admission := services.NewWithdrawalAdmission(time.UTC)

	from, to := admission.DayRange(time.Date(2025, 3, 10, 13, 45, 12, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 999999999, time.UTC), to)
	assert.True(t, to.Before(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)),
		"end of day stays inside the calendar day")
}

// Day boundaries follow the configured timezone: 01:00 UTC on March 11 is
// still March 10 in Sao Paulo.
func TestWithdrawalAdmission_DayRange_Timezone(t *testing.T) {
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	admission := services.NewWithdrawalAdmission(saoPaulo)

	from, _ := admission.DayRange(time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, saoPaulo), from)
}

func TestWithdrawalAdmission_DayKey(t *testing.T) {
	admission := services.NewWithdrawalAdmission(time.UTC)
	courierID := kernel.NewUUID()

	morning := admission.DayKey(courierID, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	evening := admission.DayKey(courierID, time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC))
	nextDay := admission.DayKey(courierID, time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, morning, evening, "same courier and day map to the same key")
	assert.NotEqual(t, morning, nextDay)
	assert.NotEqual(t, morning, admission.DayKey(kernel.NewUUID(), time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)))
	assert.Contains(t, morning, "2025-03-10")
}
