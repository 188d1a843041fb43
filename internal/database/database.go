// Package database establishes the connection pool to the
// PostgreSQL database holding users, customers, invoices and
// revenue.
//
// It handles:
//   - choosing between the direct pool and the serverless pool
//   - creating a pgx connection pool (pgxpool) with fixed sizing
//   - wiring query tracing/logging (pgx tracelog)
//   - optional New Relic instrumentation (nrpgx5)
//   - running embedded schema migrations (tern)
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/invoice-dashboard/internal/config"
	loggerConfig "github.com/deppfellow/invoice-dashboard/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// Pool sizing for the two connection strategies. These are not tunable per
// call site; switch strategies with DASHBOARD_DATABASE.SERVERLESS instead.
const (
	PooledMaxConns       = 20
	PooledMaxIdleTime    = 30 * time.Second
	PooledConnectTimeout = 2 * time.Second

	ServerlessMaxConns       = 4
	ServerlessMaxIdleTime    = 5 * time.Second
	ServerlessConnectTimeout = 5 * time.Second
)

// DatabasePingTimeout is the number of seconds to wait for the startup ping.
const DatabasePingTimeout = 10

// Database wraps the pgx connection pool and a logger.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// multiTracer fans pgx tracer callbacks out to several tracers, since
// ConnConfig only has a single Tracer slot.
type multiTracer struct {
	tracers []any
}

// TraceQueryStart implements pgx.QueryTracer.
func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

// TraceQueryEnd implements pgx.QueryTracer.
func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// NewPoolConfig parses the connection string and applies the sizing of the
// selected strategy.
//
// The serverless strategy keeps a handful of short-lived connections and
// describes every statement instead of caching prepared statements, which
// transaction-mode poolers cannot route.
func NewPoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database url must be set")
	}

	pgxPoolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	if cfg.Serverless {
		pgxPoolConfig.MaxConns = ServerlessMaxConns
		pgxPoolConfig.MinConns = 0
		pgxPoolConfig.MaxConnIdleTime = ServerlessMaxIdleTime
		pgxPoolConfig.ConnConfig.ConnectTimeout = ServerlessConnectTimeout
		pgxPoolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeDescribeExec
		pgxPoolConfig.ConnConfig.StatementCacheCapacity = 0
		pgxPoolConfig.ConnConfig.DescriptionCacheCapacity = 0
	} else {
		pgxPoolConfig.MaxConns = PooledMaxConns
		pgxPoolConfig.MaxConnIdleTime = PooledMaxIdleTime
		pgxPoolConfig.ConnConfig.ConnectTimeout = PooledConnectTimeout
	}

	return pgxPoolConfig, nil
}

// New creates the PostgreSQL connection pool with instrumentation and pings it.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := NewPoolConfig(cfg.Database)
	if err != nil {
		return nil, err
	}

	if loggerService.GetApplication() != nil {
		pgxPoolConfig.ConnConfig.Tracer = nrpgx5.NewTracer()
	}

	// SQL logging is noisy, so only the local environment gets it.
	if cfg.IsLocal() {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		localTracer := &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		}

		if pgxPoolConfig.ConnConfig.Tracer != nil {
			pgxPoolConfig.ConnConfig.Tracer = &multiTracer{
				tracers: []any{pgxPoolConfig.ConnConfig.Tracer, localTracer},
			}
		} else {
			pgxPoolConfig.ConnConfig.Tracer = localTracer
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	database := &Database{
		Pool: pool,
		log:  logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Bool("serverless", cfg.Database.Serverless).
		Int32("max_conns", pgxPoolConfig.MaxConns).
		Msg("connected to the database")

	return database, nil
}

// Close closes the database connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
