package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/internal/service"
	mocks "github.com/SergeyBogomolovv/ferremas-store/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStaffService_CreateProfile(t *testing.T) {
	type MockBehavior func(repo *mocks.MockStaffRepo)

	testCases := []struct {
		name         string
		userID       entities.UserID
		role         entities.StaffRole
		mockBehavior MockBehavior
		wantErr      error
		wantHooks    int
	}{
		{
			name:   "warehouse handler",
			userID: 30,
			role:   entities.RoleWarehouseHandler,
			mockBehavior: func(repo *mocks.MockStaffRepo) {
				repo.EXPECT().CreateProfile(mock.Anything, mock.MatchedBy(func(p entities.StaffProfile) bool {
					return p.UserID == 30 && p.Role == entities.RoleWarehouseHandler && !p.OnShift
				})).RunAndReturn(func(_ context.Context, p entities.StaffProfile) (entities.StaffProfile, error) {
					p.ID = 3
					return p, nil
				})
			},
			wantHooks: 1,
		},
		{
			name:   "duplicate profile",
			userID: 30,
			role:   entities.RoleAdmin,
			mockBehavior: func(repo *mocks.MockStaffRepo) {
				repo.EXPECT().CreateProfile(mock.Anything, mock.Anything).
					Return(entities.StaffProfile{}, entities.NewValidationError("user_id", "profile already exists"))
			},
			wantErr: entities.ErrValidation,
		},
		{
			name:         "unknown role",
			userID:       30,
			role:         "JANITOR",
			mockBehavior: func(repo *mocks.MockStaffRepo) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "bad user",
			userID:       0,
			role:         entities.RoleAdmin,
			mockBehavior: func(repo *mocks.MockStaffRepo) {},
			wantErr:      entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockStaffRepo(t)
			tc.mockBehavior(repo)

			var events []fulfillment.Event
			svc := service.NewStaffService(discardLogger(), passthroughTx(t), repo)
			profile, err := svc.CreateProfile(context.Background(), tc.userID, tc.role, recordHook(&events))

			assert.Len(t, events, tc.wantHooks)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.HandlerID(3), profile.ID)
			assert.Equal(t, fulfillment.EventProfileCreated, events[0].Kind)
			assert.Equal(t, profile, events[0].Profile)
		})
	}
}

func TestStaffService_Shift(t *testing.T) {
	offShift := entities.StaffProfile{ID: 3, UserID: 30, Role: entities.RoleWarehouseHandler}
	onShift := offShift
	onShift.OnShift = true

	t.Run("clock in", func(t *testing.T) {
		repo := mocks.NewMockStaffRepo(t)
		repo.EXPECT().ProfileByUser(mock.Anything, entities.UserID(30)).Return(offShift, nil)
		repo.EXPECT().UpdateShift(mock.Anything, mock.MatchedBy(func(p entities.StaffProfile) bool {
			return p.OnShift && p.ShiftStartedAt != nil && p.ShiftEndedAt == nil
		})).Return(nil)
		repo.EXPECT().RecordShift(mock.Anything, mock.MatchedBy(func(p entities.StaffProfile) bool {
			return p.OnShift && p.ShiftStartedAt != nil
		})).Return(nil)

		svc := service.NewStaffService(discardLogger(), passthroughTx(t), repo)
		profile, err := svc.ClockIn(context.Background(), 30)
		require.NoError(t, err)
		assert.True(t, profile.OnShift)
	})

	t.Run("shift log failure fails clock in", func(t *testing.T) {
		repo := mocks.NewMockStaffRepo(t)
		repo.EXPECT().ProfileByUser(mock.Anything, entities.UserID(30)).Return(offShift, nil)
		repo.EXPECT().UpdateShift(mock.Anything, mock.Anything).Return(nil)
		repo.EXPECT().RecordShift(mock.Anything, mock.Anything).Return(errors.New("db down"))

		svc := service.NewStaffService(discardLogger(), passthroughTx(t), repo)
		_, err := svc.ClockIn(context.Background(), 30)
		assert.Error(t, err)
	})

	t.Run("clock in twice", func(t *testing.T) {
		repo := mocks.NewMockStaffRepo(t)
		repo.EXPECT().ProfileByUser(mock.Anything, entities.UserID(30)).Return(onShift, nil)

		svc := service.NewStaffService(discardLogger(), passthroughTx(t), repo)
		_, err := svc.ClockIn(context.Background(), 30)
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("clock out", func(t *testing.T) {
		repo := mocks.NewMockStaffRepo(t)
		repo.EXPECT().ProfileByUser(mock.Anything, entities.UserID(30)).Return(onShift, nil)
		repo.EXPECT().UpdateShift(mock.Anything, mock.MatchedBy(func(p entities.StaffProfile) bool {
			return !p.OnShift && p.ShiftEndedAt != nil
		})).Return(nil)
		repo.EXPECT().RecordShift(mock.Anything, mock.MatchedBy(func(p entities.StaffProfile) bool {
			return !p.OnShift && p.ShiftEndedAt != nil
		})).Return(nil)

		svc := service.NewStaffService(discardLogger(), passthroughTx(t), repo)
		profile, err := svc.ClockOut(context.Background(), 30)
		require.NoError(t, err)
		assert.False(t, profile.OnShift)
	})

	t.Run("clock out without shift", func(t *testing.T) {
		repo := mocks.NewMockStaffRepo(t)
		repo.EXPECT().ProfileByUser(mock.Anything, entities.UserID(30)).Return(offShift, nil)

		svc := service.NewStaffService(discardLogger(), passthroughTx(t), repo)
		_, err := svc.ClockOut(context.Background(), 30)
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("customers have no shifts", func(t *testing.T) {
		repo := mocks.NewMockStaffRepo(t)
		repo.EXPECT().ProfileByUser(mock.Anything, entities.UserID(7)).
			Return(entities.StaffProfile{ID: 9, UserID: 7, Role: entities.RoleCustomer}, nil)

		svc := service.NewStaffService(discardLogger(), passthroughTx(t), repo)
		_, err := svc.ClockIn(context.Background(), 7)
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("no profile", func(t *testing.T) {
		repo := mocks.NewMockStaffRepo(t)
		repo.EXPECT().ProfileByUser(mock.Anything, entities.UserID(31)).
			Return(entities.StaffProfile{}, entities.ErrProfileNotFound)

		svc := service.NewStaffService(discardLogger(), passthroughTx(t), repo)
		_, err := svc.ClockIn(context.Background(), 31)
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})
}
