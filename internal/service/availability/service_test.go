package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

type bookingRepoMock struct {
	mock.Mock
}

func (m *bookingRepoMock) FindOverlapping(ctx context.Context, courtID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error) {
	args := m.Called(ctx, courtID, start, end, excludeID)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func at(hour, minute int) time.Time {
	return time.Date(2030, 5, 10, hour, minute, 0, 0, time.UTC)
}

func TestChecker_IsAvailable(t *testing.T) {
	existing := &domain.Booking{ID: 1, CourtID: 3, StartTime: at(10, 0), EndTime: at(11, 0), Status: domain.StatusConfirmed}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"overlaps end", at(10, 30), at(11, 30), false},
		{"overlaps start", at(9, 30), at(10, 30), false},
		{"encloses", at(9, 0), at(12, 0), false},
		{"adjacent after", at(11, 0), at(12, 0), true},
		{"adjacent before", at(9, 0), at(10, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &bookingRepoMock{}
			repo.On("FindOverlapping", mock.Anything, int64(3), tt.start, tt.end, (*int64)(nil)).
				Return([]*domain.Booking{existing}, nil)

			ok, err := NewChecker(repo).IsAvailable(context.Background(), 3, tt.start, tt.end, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestChecker_IgnoresInactiveAndExcluded(t *testing.T) {
	repo := &bookingRepoMock{}
	repo.On("FindOverlapping", mock.Anything, int64(3), at(10, 0), at(11, 0), mock.Anything).
		Return([]*domain.Booking{
			{ID: 1, StartTime: at(10, 0), EndTime: at(11, 0), Status: domain.StatusCancelled},
			{ID: 2, StartTime: at(10, 0), EndTime: at(11, 0), Status: domain.StatusCompleted},
			{ID: 5, StartTime: at(10, 0), EndTime: at(11, 0), Status: domain.StatusPending},
		}, nil)

	ok, err := NewChecker(repo).IsAvailable(context.Background(), 3, at(10, 0), at(11, 0), ptr.Ptr(int64(5)))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChecker_RepositoryError(t *testing.T) {
	repo := &bookingRepoMock{}
	repo.On("FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := NewChecker(repo).IsAvailable(context.Background(), 3, at(10, 0), at(11, 0), nil)
	assert.ErrorIs(t, err, ErrInternal)
}
