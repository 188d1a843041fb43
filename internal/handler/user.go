package handler

import (
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/deppfellow/invoice-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// Signup creates a dashboard account. The password hash never leaves the
// server.
func (h *UserHandler) Signup(c echo.Context, req *model.SignupRequest) (*model.User, error) {
	return h.users.Signup(c.Request().Context(), req)
}
