package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusCancelled, true},
		{StatusCompleted, StatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_Flags(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusCompleted.IsActive())

	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())

	assert.False(t, BookingStatus("no_show").IsValid())
	assert.True(t, PaymentWaived.IsValid())
}

func TestRole_Can(t *testing.T) {
	assert.True(t, RoleUser.Can(OpCreateBooking))
	assert.True(t, RoleManager.Can(OpCreateBooking))
	assert.False(t, RoleAdmin.Can(OpCreateBooking))

	assert.False(t, RoleUser.Can(OpBlockTimeslot))
	assert.True(t, RoleManager.Can(OpBlockTimeslot))
	assert.True(t, RoleAdmin.Can(OpBlockTimeslot))

	assert.False(t, RoleUser.Can(OpChangeBookingStatus))
	assert.True(t, RoleAdmin.Can(OpChangeBookingStatus))

	assert.True(t, RoleUser.Can(OpInitiatePayment))
	assert.False(t, RoleManager.Can(OpInitiatePayment))

	assert.False(t, Role("guest").Can(OpCreateBooking))
}

func TestActor_CanAccess(t *testing.T) {
	owner := Actor{UserID: 1, Role: RoleUser}
	stranger := Actor{UserID: 2, Role: RoleUser}
	manager := Actor{UserID: 3, Role: RoleManager}

	assert.True(t, owner.CanAccess(1, OpReadAnyBooking))
	assert.False(t, stranger.CanAccess(1, OpReadAnyBooking))
	assert.True(t, manager.CanAccess(1, OpReadAnyBooking))
}

func TestCalculatePrice(t *testing.T) {
	start := at(10, 0)

	assert.Equal(t, 30.0, CalculatePrice(20, start, start.Add(90*time.Minute)))
	assert.Equal(t, 0.0, CalculatePrice(0, start, start.Add(time.Hour)))
	assert.Equal(t, 8.33, CalculatePrice(16.66, start, start.Add(30*time.Minute)))
	assert.Equal(t, int64(3000), ToMinorUnits(30.0))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
}

func TestBuildDayAvailability(t *testing.T) {
	day := at(0, 0)
	bookings := []*Booking{
		{StartTime: at(10, 0), EndTime: at(11, 30), Status: StatusConfirmed},
		{StartTime: at(14, 0), EndTime: at(15, 0), Status: StatusCancelled},
		{StartTime: at(23, 30), EndTime: day.AddDate(0, 0, 1), Status: StatusPending},
	}

	result := BuildDayAvailability(7, day, bookings)

	assert.Equal(t, int64(7), result.CourtID)
	assert.Equal(t, []string{"10:00-11:00", "11:00-12:00", "23:00-00:00"}, result.Occupied)
	assert.Len(t, result.Free, HoursPerDay-3)
	assert.Equal(t, "00:00-01:00", result.Free[0])
	assert.Contains(t, result.Free, "14:00-15:00")
}
