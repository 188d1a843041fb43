package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/invoice-dashboard/internal/lib/utils"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	repository
}

// Create hashes the password and inserts the user. It returns nil, nil when
// a user with the same email already exists.
func (r *UserRepository) Create(ctx context.Context, input model.CreateUserInput) (*model.User, error) {
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, r.fail(ctx, err, "failed to hash password")
	}

	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	stmt := `
		INSERT INTO
			users (id, name, email, password)
		VALUES
			($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
		RETURNING
			id, name, email, password
	`

	var user model.User
	err = r.db.QueryRow(ctx, stmt, id, input.Name, input.Email, hash).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		r.log(ctx).Debug().Str("email", input.Email).Msg("user already exists, insert skipped")
		return nil, nil
	}
	if err != nil {
		return nil, r.fail(ctx, err, "failed to create user")
	}

	return &user, nil
}

// FetchByEmail returns nil, nil when no user has that email.
func (r *UserRepository) FetchByEmail(ctx context.Context, email string) (*model.User, error) {
	stmt := `
		SELECT
			id, name, email, password
		FROM
			users
		WHERE
			email = $1
	`

	var user model.User
	err := r.db.QueryRow(ctx, stmt, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fail(ctx, err, "failed to fetch user")
	}

	return &user, nil
}

// VerifyPassword returns the user when email and password match, nil
// otherwise.
func (r *UserRepository) VerifyPassword(ctx context.Context, email, password string) (*model.User, error) {
	user, err := r.FetchByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, err
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, nil
	}

	return user, nil
}
