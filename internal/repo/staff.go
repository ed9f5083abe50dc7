package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var staffColumns = []string{"id", "user_id", "role", "on_shift", "shift_started_at", "shift_ended_at", "created_at"}

func (r *postgresRepo) CreateProfile(ctx context.Context, p entities.StaffProfile) (entities.StaffProfile, error) {
	query, args := r.qb.Insert("staff_profiles").
		Columns("user_id", "role", "on_shift", "created_at").
		Values(p.UserID, p.Role, p.OnShift, p.CreatedAt).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &p.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return entities.StaffProfile{}, entities.NewValidationError("user_id", "profile already exists")
		}
		return entities.StaffProfile{}, fmt.Errorf("failed to save staff profile: %w", err)
	}
	return p, nil
}

// ProfileByUser возвращает профиль сотрудника. Внутри транзакции строка блокируется.
func (r *postgresRepo) ProfileByUser(ctx context.Context, userID entities.UserID) (entities.StaffProfile, error) {
	b := r.qb.Select(staffColumns...).
		From("staff_profiles").
		Where(sq.Eq{"user_id": userID})
	query, args := forUpdate(ctx, b).MustSql()

	var profile StaffProfile
	if err := r.getContext(ctx, &profile, query, args...); err != nil {
		err = notFound(err, entities.ErrProfileNotFound)
		return entities.StaffProfile{}, fmt.Errorf("failed to get staff profile: %w", err)
	}
	return StaffProfileToEntity(profile), nil
}

func (r *postgresRepo) UpdateShift(ctx context.Context, p entities.StaffProfile) error {
	query, args := r.qb.Update("staff_profiles").
		SetMap(map[string]any{
			"on_shift":         p.OnShift,
			"shift_started_at": nullTime(p.ShiftStartedAt),
			"shift_ended_at":   nullTime(p.ShiftEndedAt),
		}).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrProfileNotFound
	}
	return nil
}

// RecordShift пишет смену в журнал: открывает её при выходе на смену и закрывает при уходе.
func (r *postgresRepo) RecordShift(ctx context.Context, p entities.StaffProfile) error {
	if p.OnShift {
		if p.ShiftStartedAt == nil {
			return entities.NewValidationError("shift_started_at", "required to open a shift")
		}
		query, args := r.qb.Insert("staff_shifts").
			Columns("staff_id", "started_at").
			Values(p.ID, *p.ShiftStartedAt).
			MustSql()

		if _, err := r.execContext(ctx, query, args...); err != nil {
			if isUniqueViolation(err) {
				return entities.NewValidationError("on_shift", "shift already open")
			}
			return fmt.Errorf("failed to open shift: %w", err)
		}
		return nil
	}

	if p.ShiftEndedAt == nil {
		return entities.NewValidationError("shift_ended_at", "required to close a shift")
	}
	query, args := r.qb.Update("staff_shifts").
		Set("ended_at", *p.ShiftEndedAt).
		Where(sq.Eq{"staff_id": p.ID, "ended_at": nil}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to close shift: %w", err)
	}
	return nil
}
