package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/invoice-dashboard/internal/config"
	"github.com/deppfellow/invoice-dashboard/internal/middleware"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/labstack/echo/v4"
)

// Overall statuses reported by /status. Redis only backs the welcome email
// queue, so losing it degrades the service instead of taking it down.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthHandler reports whether the API and its dependencies are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

func (h *HealthHandler) dependencyChecks(obs *config.ObservabilityConfig) []dependencyCheck {
	var checks []dependencyCheck

	if h.server.DB != nil && obs.ChecksEnabled("database") {
		checks = append(checks, dependencyCheck{
			name:     "database",
			required: true,
			ping:     h.server.DB.Pool.Ping,
		})
	}

	if h.server.Redis != nil && obs.ChecksEnabled("redis") {
		checks = append(checks, dependencyCheck{
			name: "redis",
			ping: func(ctx context.Context) error {
				return h.server.Redis.Ping(ctx).Err()
			},
		})
	}

	return checks
}

// CheckHealth answers 200 when every required dependency responds and 503
// otherwise. Each check reports its own status and response time.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	obs := h.server.Config.Observability
	if obs == nil {
		obs = config.DefaultObservabilityConfig()
	}

	timeout := obs.HealthChecks.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	checks := make(map[string]interface{})
	status := StatusHealthy

	for _, check := range h.dependencyChecks(obs) {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		cancel()

		if err != nil {
			checks[check.name] = map[string]interface{}{
				"status":        StatusUnhealthy,
				"response_time": time.Since(checkStart).String(),
				"error":         err.Error(),
			}

			if check.required {
				status = StatusUnhealthy
			} else if status == StatusHealthy {
				status = StatusDegraded
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", time.Since(checkStart)).
				Msg("health check failed")

			h.recordCheckError(check.name, time.Since(checkStart), err)
			continue
		}

		checks[check.name] = map[string]interface{}{
			"status":        StatusHealthy,
			"response_time": time.Since(checkStart).String(),
		}
	}

	response := map[string]interface{}{
		"status":      status,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	code := http.StatusOK
	if status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	logger.Debug().
		Str("status", status).
		Dur("total_duration", time.Since(start)).
		Msg("health check completed")

	if err := c.JSON(code, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) recordCheckError(name string, elapsed time.Duration, err error) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]interface{}{
		"check_type":       name,
		"operation":        "health_check",
		"error_type":       name + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
