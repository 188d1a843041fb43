package service

import (
	"context"

	"github.com/deppfellow/invoice-dashboard/internal/errs"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/rs/zerolog"
)

type UserService struct {
	users  UserStore
	mailer WelcomeMailer
	logger *zerolog.Logger
}

func NewUserService(users UserStore, mailer WelcomeMailer, logger *zerolog.Logger) *UserService {
	return &UserService{users: users, mailer: mailer, logger: logger}
}

// Signup creates the account and queues the welcome email. A failure to
// queue the email does not fail the signup.
func (s *UserService) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	user, err := s.users.Create(ctx, model.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewConflictError("An account with this email already exists", "USER_ALREADY_EXISTS")
	}

	if s.mailer != nil {
		if err := s.mailer.EnqueueWelcomeEmail(ctx, user.Email, user.Name); err != nil {
			s.logger.Error().
				Err(err).
				Str("user_id", user.ID.String()).
				Msg("failed to enqueue welcome email")
		}
	}

	return user, nil
}

// Authenticate returns the user for valid credentials and nil otherwise.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	return s.users.VerifyPassword(ctx, email, password)
}
