package middleware

import (
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups every middleware component used by the HTTP server so
// the router receives them as one value.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and the
	// global error handler.
	Global *GlobalMiddlewares

	// Auth guards the dashboard routes with Basic credentials checked
	// against the users table.
	Auth *AuthMiddleware

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing wires New Relic transactions and custom attributes.
	Tracing *TracingMiddleware

	// RateLimit throttles clients per IP and reports hits to New Relic.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components. users verifies the
// credentials presented to the dashboard routes.
//
// When New Relic is not configured nrApp is nil and the tracing middleware
// degrades into a pass-through.
func NewMiddlewares(s *server.Server, users Authenticator) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s, users),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
