package services

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

const (
	// MaxWithdrawalsPerDay is the number of packages a courier may withdraw
	// within one calendar day.
	MaxWithdrawalsPerDay = 5

	// WithdrawalOpensAt is the first local hour (inclusive) at which
	// withdrawals are admitted.
	WithdrawalOpensAt = 8

	// WithdrawalClosesAt is the local hour (exclusive) at which withdrawals
	// stop being admitted.
	WithdrawalClosesAt = 20
)

// Sentinel errors for admission rejections.
var (
	ErrOutsideWithdrawalWindow = errors.New("outside withdrawal window")
	ErrQuotaExceeded           = errors.New("withdrawal quota exceeded")
)

// OutsideWithdrawalWindowError indicates a pickup requested outside the
// admitted [WithdrawalOpensAt, WithdrawalClosesAt) local-hour window.
type OutsideWithdrawalWindowError struct {
	Hour int
}

// NewOutsideWithdrawalWindowError creates an OutsideWithdrawalWindowError
// for the rejected local hour.
func NewOutsideWithdrawalWindowError(hour int) *OutsideWithdrawalWindowError {
	return &OutsideWithdrawalWindowError{Hour: hour}
}

func (e *OutsideWithdrawalWindowError) Error() string {
	return fmt.Sprintf("%s: hour %d is not within [%d, %d)",
		ErrOutsideWithdrawalWindow, e.Hour, WithdrawalOpensAt, WithdrawalClosesAt)
}

func (e *OutsideWithdrawalWindowError) Unwrap() error {
	return ErrOutsideWithdrawalWindow
}

// QuotaExceededError indicates a courier that already reached
// MaxWithdrawalsPerDay qualifying pickups for the requested day.
type QuotaExceededError struct {
	CourierID kernel.UUID
	Count     int
}

// NewQuotaExceededError creates a QuotaExceededError for the courier and
// the qualifying pickup count observed at evaluation time.
func NewQuotaExceededError(courierID kernel.UUID, count int) *QuotaExceededError {
	return &QuotaExceededError{CourierID: courierID, Count: count}
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s: courier %s already has %d withdrawals for the day (limit %d)",
		ErrQuotaExceeded, e.CourierID, e.Count, MaxWithdrawalsPerDay)
}

func (e *QuotaExceededError) Unwrap() error {
	return ErrQuotaExceeded
}

// WithdrawalAdmission is the domain service gating Pending -> PickedUp
// transitions. Two orthogonal rules apply:
//
//   - Time window: the pickup's local hour must lie in [8, 20). A request
//     at exactly 8:00:00 is admitted, one at exactly 20:00:00 is not.
//   - Daily quota: a courier may hold at most MaxWithdrawalsPerDay pickups
//     whose timestamp falls within the same local calendar day and that are
//     neither delivered nor cancelled yet.
//
// The service is pure: the caller counts the courier's qualifying pickups
// under its own concurrency discipline and passes the count in, so the
// count-then-admit sequence stays inside one critical section.
//
// All hour and day computations use a single configured time.Location. The
// source system left the timezone unspecified; pinning one per deployment
// keeps the window and day boundaries stable regardless of server locale.
type WithdrawalAdmission struct {
	location *time.Location
}

// NewWithdrawalAdmission creates the admission service for the given
// timezone. A nil location defaults to UTC.
func NewWithdrawalAdmission(location *time.Location) WithdrawalAdmission {
	if location == nil {
		location = time.UTC
	}
	return WithdrawalAdmission{location: location}
}

// Admit decides whether a withdrawal by courierID at the given instant may
// proceed, with pickupsToday being the courier's qualifying pickup count
// for that calendar day at evaluation time.
//
// Returns:
//   - nil when the request is admitted
//   - OutsideWithdrawalWindowError when the local hour is outside [8, 20)
//   - QuotaExceededError when pickupsToday is already at the limit
//
// The window rule is checked first: outside the window the request is
// rejected regardless of quota.
func (a WithdrawalAdmission) Admit(courierID kernel.UUID, at time.Time, pickupsToday int) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	hour := at.In(a.location).Hour()
	if hour < WithdrawalOpensAt || hour >= WithdrawalClosesAt {
		return NewOutsideWithdrawalWindowError(hour)
	}

	if pickupsToday >= MaxWithdrawalsPerDay {
		return NewQuotaExceededError(courierID, pickupsToday)
	}

	return nil
}

// DayRange returns the inclusive [startOfDay, endOfDay] bounds of the local
// calendar day containing at. The day is the timestamp's calendar day in
// the configured location, not a rolling 24h window.
func (a WithdrawalAdmission) DayRange(at time.Time) (time.Time, time.Time) {
	local := at.In(a.location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, a.location)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// DayKey returns the serialization key for the (courier, calendar day)
// critical section guarding the count-and-reserve step.
func (a WithdrawalAdmission) DayKey(courierID kernel.UUID, at time.Time) string {
	return fmt.Sprintf("withdrawal:%s:%s", courierID, at.In(a.location).Format(time.DateOnly))
}
