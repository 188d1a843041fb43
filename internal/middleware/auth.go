package middleware

import (
	"context"
	"time"

	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// AuthRealm is announced in the WWW-Authenticate challenge.
const AuthRealm = "Acme Dashboard"

// Authenticator checks dashboard credentials. It returns nil, nil when the
// email/password pair does not match a user.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

// AuthMiddleware holds the app Server so middleware can access shared deps
// like Logger and Config.
type AuthMiddleware struct {
	server *server.Server
	users  Authenticator
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server, users Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		users:  users,
	}
}

// RequireAuth enforces HTTP Basic authentication: the username is the
// account email and the password is compared against its bcrypt hash.
//
// On success the user id and email are stored in the echo context and the
// request logger gains a user_id field. Missing or wrong credentials end in
// a 401 carrying the WWW-Authenticate challenge.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: AuthRealm,
		Validator: func(email, password string, c echo.Context) (bool, error) {
			start := time.Now()

			user, err := auth.users.Authenticate(c.Request().Context(), email, password)
			if err != nil {
				return false, err
			}

			if user == nil {
				GetLogger(c).Warn().
					Str("function", "RequireAuth").
					Str("email", email).
					Dur("duration", time.Since(start)).
					Msg("invalid dashboard credentials")
				return false, nil
			}

			c.Set(UserIDKey, user.ID.String())
			c.Set(UserEmailKey, user.Email)

			logger := GetLogger(c).With().Str("user_id", user.ID.String()).Logger()
			setLogger(c, &logger)

			logger.Info().
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("user authenticated successfully")

			return true, nil
		},
	})(next)
}
