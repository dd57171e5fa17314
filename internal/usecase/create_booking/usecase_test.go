package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type bookingRepoMock struct {
	mock.Mock
}

func (m *bookingRepoMock) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if v := args.Get(0); v != nil {
		return v.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type courtRepoMock struct {
	mock.Mock
}

func (m *courtRepoMock) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Court), args.Error(1)
	}
	return nil, args.Error(1)
}

type availabilityMock struct {
	mock.Mock
}

func (m *availabilityMock) IsAvailable(ctx context.Context, courtID int64, start, end time.Time, excludeID *int64) (bool, error) {
	args := m.Called(ctx, courtID, start, end, excludeID)
	return args.Bool(0), args.Error(1)
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error {
	return m.Called(ctx, event).Error(0)
}

type serialTx struct{}

func (serialTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type metricsStub struct {
	events    []string
	conflicts []string
}

func (m *metricsStub) IncBookingEvent(event string)        { m.events = append(m.events, event) }
func (m *metricsStub) IncBookingConflict(operation string) { m.conflicts = append(m.conflicts, operation) }

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

var (
	now      = time.Date(2030, 5, 10, 8, 0, 0, 0, time.UTC)
	slotFrom = time.Date(2030, 5, 10, 10, 0, 0, 0, time.UTC)
	slotTo   = slotFrom.Add(90 * time.Minute)
	player   = domain.Actor{UserID: 5, Role: domain.RoleUser}
)

type fixture struct {
	bookings     *bookingRepoMock
	courts       *courtRepoMock
	availability *availabilityMock
	publisher    *publisherMock
	metrics      *metricsStub
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings:     &bookingRepoMock{},
		courts:       &courtRepoMock{},
		availability: &availabilityMock{},
		publisher:    &publisherMock{},
		metrics:      &metricsStub{},
	}
	f.uc = NewUseCase(f.bookings, f.courts, f.availability, serialTx{}, f.publisher, f.metrics, time.UTC, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func validRequest() *Request {
	return &Request{Actor: player, CourtID: 1, StartTime: slotFrom, EndTime: slotTo}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture()
	f.courts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1, IsActive: true, HourlyRate: 20}, nil)
	f.availability.On("IsAvailable", mock.Anything, int64(1), slotFrom, slotTo, (*int64)(nil)).Return(true, nil)
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == player.UserID &&
			b.Status == domain.StatusPending &&
			b.PaymentStatus == domain.PaymentPending &&
			!b.IsBlocked &&
			b.TotalPrice == 30
	})).Return(&domain.Booking{ID: 42, UserID: player.UserID, TotalPrice: 30}, nil)
	f.publisher.On("PublishBookingEvent", mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.EventBookingCreated && e.BookingID == 42
	})).Return(nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 30.0, resp.TotalPrice)
	assert.Equal(t, []string{domain.EventBookingCreated}, f.metrics.events)
	f.bookings.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestUseCase_Execute_AdminForbidden(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Actor = domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	f.courts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ManagerAllowed(t *testing.T) {
	f := newFixture()
	f.courts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1, IsActive: true, HourlyRate: 10}, nil)
	f.availability.On("IsAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 1}, nil)
	f.publisher.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.Actor = domain.Actor{UserID: 2, Role: domain.RoleManager}
	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_InvalidWindow(t *testing.T) {
	cases := map[string]*Request{
		"end before start": {Actor: player, CourtID: 1, StartTime: slotTo, EndTime: slotFrom},
		"cross day":        {Actor: player, CourtID: 1, StartTime: slotFrom.Add(13 * time.Hour), EndTime: slotFrom.Add(15 * time.Hour)},
		"not aligned":      {Actor: player, CourtID: 1, StartTime: slotFrom.Add(10 * time.Minute), EndTime: slotTo},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newFixture().uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidWindow)
			assert.ErrorIs(t, err, domain.ErrInvalidWindow)
		})
	}
}

func TestUseCase_Execute_UntilMidnight(t *testing.T) {
	f := newFixture()
	start := time.Date(2030, 5, 10, 23, 0, 0, 0, time.UTC)
	end := time.Date(2030, 5, 11, 0, 0, 0, 0, time.UTC)
	f.courts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1, IsActive: true, HourlyRate: 10}, nil)
	f.availability.On("IsAvailable", mock.Anything, int64(1), start, end, (*int64)(nil)).Return(true, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 3}, nil)
	f.publisher.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.Execute(context.Background(), &Request{Actor: player, CourtID: 1, StartTime: start, EndTime: end})
	assert.NoError(t, err)
}

func TestUseCase_Execute_CourtNotFound(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		f := newFixture()
		f.courts.On("GetByID", mock.Anything, int64(1)).Return(nil, courtRepo.ErrCourtNotFound)

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		f := newFixture()
		f.courts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1, IsActive: false}, nil)

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})
}

func TestUseCase_Execute_PastBooking(t *testing.T) {
	f := newFixture()
	f.uc.timeProvider = fixedTime{now: slotFrom}
	f.courts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1, IsActive: true}, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPastBooking)
	f.availability.AssertNotCalled(t, "IsAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	t.Run("checker reports overlap", func(t *testing.T) {
		f := newFixture()
		f.courts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1, IsActive: true}, nil)
		f.availability.On("IsAvailable", mock.Anything, int64(1), slotFrom, slotTo, (*int64)(nil)).Return(false, nil)

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Equal(t, []string{"create"}, f.metrics.conflicts)
		f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("exclusion constraint", func(t *testing.T) {
		f := newFixture()
		f.courts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1, IsActive: true}, nil)
		f.availability.On("IsAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrSlotNotAvailable)

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})
}

func TestUseCase_Execute_PublishFailureIsIgnored(t *testing.T) {
	f := newFixture()
	f.courts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1, IsActive: true}, nil)
	f.availability.On("IsAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 9}, nil)
	f.publisher.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.ID)
}

func TestUseCase_Execute_InternalError(t *testing.T) {
	f := newFixture()
	f.courts.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("connection reset"))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
