package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// User is a dashboard account. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
}

// CreateUserInput carries a plaintext password; the repository hashes it
// before the insert.
type CreateUserInput struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
}

// SignupRequest is the body of POST /api/v1/users.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

func (r *SignupRequest) Validate() error {
	return validator.New().Struct(r)
}
