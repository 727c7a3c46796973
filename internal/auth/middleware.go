package auth

import (
	"context"
	"doctorportal/internal/db"
	"fmt"
	"net/http"
	"strings"

	httperrors "doctorportal/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const emailKey contextKey = "email"

// UserRoleStore looks up the stored profile for a token subject. A nil user
// with a nil error means the email has no profile.
type UserRoleStore interface {
	GetByEmail(email string) (*db.User, error)
}

type Middleware struct {
	Secret []byte
	Users  UserRoleStore
}

func NewMiddleware(secret []byte, users UserRoleStore) *Middleware {
	return &Middleware{Secret: secret, Users: users}
}

// RequireToken rejects requests without a Bearer token (401) or with a token
// that fails signature or expiry verification (403). On success the token
// subject email is attached to the request context.
func (m *Middleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			httperrors.WriteJSON(w, httperrors.ErrUnauthorized("unauthorized access"))
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.Secret, nil
		})
		if err != nil || !token.Valid {
			httperrors.WriteJSON(w, httperrors.ErrForbidden("forbidden access"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperrors.WriteJSON(w, httperrors.ErrForbidden("forbidden access"))
			return
		}
		email, _ := claims["email"].(string)
		if email == "" {
			httperrors.WriteJSON(w, httperrors.ErrForbidden("forbidden access"))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithEmail(r.Context(), email)))
	})
}

// RequireAdmin checks the stored role of the token subject. An unknown user
// is forbidden, same as a non-admin one.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := EmailFromContext(r.Context())
		if !ok {
			httperrors.WriteJSON(w, httperrors.ErrUnauthorized("unauthorized access"))
			return
		}
		user, err := m.Users.GetByEmail(email)
		if err != nil {
			httperrors.WriteJSON(w, httperrors.NewHTTPError(http.StatusInternalServerError, "error checking role"))
			return
		}
		if user == nil || user.Role != "admin" {
			httperrors.WriteJSON(w, httperrors.ErrForbidden("forbidden"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}
