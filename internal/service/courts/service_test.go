package courts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

type courtRepoMock struct {
	mock.Mock
}

func (m *courtRepoMock) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	args := m.Called(ctx, court)
	if v := args.Get(0); v != nil {
		return v.(*domain.Court), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *courtRepoMock) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Court), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *courtRepoMock) List(ctx context.Context, filter domain.CourtsFilter) ([]*domain.Court, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Court), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *courtRepoMock) Update(ctx context.Context, id int64, update domain.CourtUpdate) (*domain.Court, error) {
	args := m.Called(ctx, id, update)
	if v := args.Get(0); v != nil {
		return v.(*domain.Court), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *courtRepoMock) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var (
	user    = domain.Actor{UserID: 1, Role: domain.RoleUser}
	manager = domain.Actor{UserID: 2, Role: domain.RoleManager}
	admin   = domain.Actor{UserID: 3, Role: domain.RoleAdmin}
)

func TestService_Create(t *testing.T) {
	t.Run("manager creates court", func(t *testing.T) {
		repo := &courtRepoMock{}
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Court) bool {
			return c.Name == "Court 1" && c.IsActive && c.HourlyRate == 25.5
		})).Return(&domain.Court{ID: 7, Name: "Court 1", IsActive: true, HourlyRate: 25.5}, nil)

		resp, err := NewService(repo, logger.NewNop()).Create(context.Background(), &models.CreateCourtRequest{
			Actor:      manager,
			Name:       "  Court 1 ",
			HourlyRate: 25.5,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		repo.AssertExpectations(t)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		repo := &courtRepoMock{}
		_, err := NewService(repo, logger.NewNop()).Create(context.Background(), &models.CreateCourtRequest{
			Actor: user, Name: "Court", HourlyRate: 10,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []models.CreateCourtRequest{
			{Actor: admin, Name: "   ", HourlyRate: 10},
			{Actor: admin, Name: strings.Repeat("a", domain.MaxCourtNameLength+1), HourlyRate: 10},
			{Actor: admin, Name: "ok", Description: ptr.Ptr(strings.Repeat("d", domain.MaxCourtDescLength+1)), HourlyRate: 10},
			{Actor: admin, Name: "ok", HourlyRate: -1},
		}
		for _, req := range cases {
			req := req
			_, err := NewService(&courtRepoMock{}, logger.NewNop()).Create(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})
}

func TestService_GetByID(t *testing.T) {
	repo := &courtRepoMock{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1, Name: "A"}, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, courtRepo.ErrCourtNotFound)
	repo.On("GetByID", mock.Anything, int64(3)).Return(nil, errors.New("db down"))
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "A", resp.Name)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrCourtNotFound)

	_, err = svc.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_List(t *testing.T) {
	t.Run("default page size", func(t *testing.T) {
		repo := &courtRepoMock{}
		repo.On("List", mock.Anything, domain.CourtsFilter{ActiveOnly: true, Limit: domain.DefaultPageSize}).
			Return([]*domain.Court{{ID: 1}, {ID: 2}}, nil)

		resp, err := NewService(repo, logger.NewNop()).List(context.Background(), &models.ListCourtsRequest{ActiveOnly: true})
		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("limit above max", func(t *testing.T) {
		_, err := NewService(&courtRepoMock{}, logger.NewNop()).List(context.Background(), &models.ListCourtsRequest{Limit: 101})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		repo := &courtRepoMock{}
		repo.On("Update", mock.Anything, int64(4), domain.CourtUpdate{HourlyRate: ptr.Ptr(30.0)}).
			Return(&domain.Court{ID: 4, HourlyRate: 30}, nil)

		resp, err := NewService(repo, logger.NewNop()).Update(context.Background(), 4, &models.UpdateCourtRequest{
			Actor: manager, HourlyRate: ptr.Ptr(30.0),
		})
		require.NoError(t, err)
		assert.Equal(t, 30.0, resp.HourlyRate)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &courtRepoMock{}
		repo.On("Update", mock.Anything, int64(4), mock.Anything).Return(nil, courtRepo.ErrCourtNotFound)

		_, err := NewService(repo, logger.NewNop()).Update(context.Background(), 4, &models.UpdateCourtRequest{
			Actor: admin, Name: ptr.Ptr("B"),
		})
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		_, err := NewService(&courtRepoMock{}, logger.NewNop()).Update(context.Background(), 4, &models.UpdateCourtRequest{Actor: user})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_Deactivate(t *testing.T) {
	repo := &courtRepoMock{}
	repo.On("Deactivate", mock.Anything, int64(5)).Return(nil)
	repo.On("Deactivate", mock.Anything, int64(6)).Return(courtRepo.ErrCourtNotFound)
	svc := NewService(repo, logger.NewNop())

	assert.NoError(t, svc.Deactivate(context.Background(), 5, manager))
	assert.ErrorIs(t, svc.Deactivate(context.Background(), 6, admin), ErrCourtNotFound)
	assert.ErrorIs(t, svc.Deactivate(context.Background(), 5, user), ErrAccessDenied)
}
