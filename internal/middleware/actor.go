package middleware

import (
	"context"
	"net/http"
	"slices"
	"strconv"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/utils"
)

// Заголовки выставляет шлюз аутентификации перед сервисом.
const (
	UserIDHeader = "X-User-ID"
	RoleHeader   = "X-User-Role"
)

// Actor пользователь, от имени которого выполняется запрос.
type Actor struct {
	UserID entities.UserID
	Role   entities.StaffRole
}

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

func ActorFrom(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}

// Identify читает пользователя из заголовков. Без роли пользователь считается покупателем.
func Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
		if err != nil || id <= 0 {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		role := entities.RoleCustomer
		if v := r.Header.Get(RoleHeader); v != "" {
			role = entities.StaffRole(v)
		}
		if !role.Valid() {
			utils.WriteError(w, "unknown role", http.StatusUnauthorized)
			return
		}

		ctx := WithActor(r.Context(), Actor{UserID: entities.UserID(id), Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole пропускает только пользователей с одной из ролей.
func RequireRole(roles ...entities.StaffRole) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFrom(r.Context())
			if !ok || !slices.Contains(roles, actor.Role) {
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
