package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/user"
)

const (
	msgMissingToken       = "отсутствует токен авторизации"
	msgInvalidCredentials = "не удалось проверить учетные данные"

	bearerPrefix = "Bearer "
)

var errInvalidToken = errors.New("invalid token")

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет bearer-токен (HS256, user id в claim sub) и кладет пользователя в контекст
type Auth struct {
	secret []byte
	users  UserRepository
	logger Logger
}

// NewAuth создает middleware авторизации
func NewAuth(secret string, users UserRepository, logger Logger) *Auth {
	return &Auth{
		secret: []byte(secret),
		users:  users,
		logger: logger,
	}
}

// Middleware отклоняет запрос с 401, если токен невалиден,
// а пользователь не найден или неактивен
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		userID, err := a.parseSubject(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			a.logger.Warn("Auth: %s %s - invalid token: %v", r.Method, r.URL.Path, err)
			w.Header().Set("WWW-Authenticate", "Bearer")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}

		user, err := a.users.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				a.logger.Warn("Auth: user id=%d not found", userID)
				handlers.RespondUnauthorized(w, msgInvalidCredentials)
				return
			}
			a.logger.Error("Auth: failed to get user id=%d: %v", userID, err)
			handlers.RespondInternalError(w)
			return
		}

		if !user.IsActive || !user.Role.IsValid() {
			a.logger.Warn("Auth: user id=%d is inactive or has unknown role=%s", userID, user.Role)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}

		ctx := WithActor(r.Context(), domain.Actor{UserID: user.ID, Role: user.Role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) parseSubject(raw string) (int64, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", errInvalidToken, sub)
	}

	return userID, nil
}
