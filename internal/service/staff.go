package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/trm"
)

type StaffRepo interface {
	CreateProfile(ctx context.Context, p entities.StaffProfile) (entities.StaffProfile, error)
	// ProfileByUser внутри транзакции блокирует строку профиля.
	ProfileByUser(ctx context.Context, userID entities.UserID) (entities.StaffProfile, error)
	UpdateShift(ctx context.Context, p entities.StaffProfile) error
	// RecordShift открывает или закрывает запись в журнале смен.
	RecordShift(ctx context.Context, p entities.StaffProfile) error
}

type staffService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      StaffRepo
	now       func() time.Time
}

func NewStaffService(logger *slog.Logger, txManager trm.Manager, repo StaffRepo) *staffService {
	return &staffService{
		logger:    logger.With(slog.String("service", "staff")),
		txManager: txManager,
		repo:      repo,
		now:       time.Now,
	}
}

// CreateProfile создаёт профиль сотрудника и вызывает хуки (например, приветственное письмо).
func (s *staffService) CreateProfile(
	ctx context.Context,
	userID entities.UserID,
	role entities.StaffRole,
	hooks ...fulfillment.Hook,
) (entities.StaffProfile, error) {
	if userID <= 0 {
		return entities.StaffProfile{}, entities.NewValidationError("user_id", "must be positive")
	}
	if !role.Valid() {
		return entities.StaffProfile{}, entities.NewValidationError("role", "unknown role")
	}

	profile, err := s.repo.CreateProfile(ctx, entities.StaffProfile{
		UserID:    userID,
		Role:      role,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return entities.StaffProfile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.InfoContext(ctx, "staff profile created",
		slog.Int64("user_id", int64(userID)),
		slog.String("role", string(role)),
	)

	fulfillment.RunHooks(ctx, s.logger, fulfillment.Event{
		Kind:    fulfillment.EventProfileCreated,
		Profile: profile,
	}, hooks...)

	return profile, nil
}

func (s *staffService) HandlerByUser(ctx context.Context, userID entities.UserID) (entities.StaffProfile, error) {
	return s.repo.ProfileByUser(ctx, userID)
}

// ClockIn отмечает начало смены. Только сотрудники на смене получают новые заказы.
func (s *staffService) ClockIn(ctx context.Context, userID entities.UserID) (entities.StaffProfile, error) {
	return s.shift(ctx, userID, func(p *entities.StaffProfile, now time.Time) error {
		if p.OnShift {
			return entities.NewValidationError("on_shift", "shift already started")
		}
		p.OnShift = true
		p.ShiftStartedAt = &now
		p.ShiftEndedAt = nil
		return nil
	})
}

func (s *staffService) ClockOut(ctx context.Context, userID entities.UserID) (entities.StaffProfile, error) {
	return s.shift(ctx, userID, func(p *entities.StaffProfile, now time.Time) error {
		if !p.OnShift {
			return entities.NewValidationError("on_shift", "shift not started")
		}
		p.OnShift = false
		p.ShiftEndedAt = &now
		return nil
	})
}

func (s *staffService) shift(
	ctx context.Context,
	userID entities.UserID,
	fn func(p *entities.StaffProfile, now time.Time) error,
) (entities.StaffProfile, error) {
	var profile entities.StaffProfile
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		profile, err = s.repo.ProfileByUser(ctx, userID)
		if err != nil {
			return err
		}
		if profile.Role == entities.RoleCustomer {
			return entities.NewValidationError("role", "customers do not work shifts")
		}

		if err := fn(&profile, s.now().UTC()); err != nil {
			return err
		}
		if err := s.repo.UpdateShift(ctx, profile); err != nil {
			return err
		}
		return s.repo.RecordShift(ctx, profile)
	})
	if err != nil {
		return entities.StaffProfile{}, fmt.Errorf("failed to update shift: %w", err)
	}

	s.logger.InfoContext(ctx, "shift updated",
		slog.Int64("user_id", int64(userID)),
		slog.Bool("on_shift", profile.OnShift),
	)
	return profile, nil
}
