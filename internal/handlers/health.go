package handlers

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Pinger checks one dependency's reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RedisHealthChecker adapts redis.Client to Pinger.
type RedisHealthChecker struct {
	client *redis.Client
}

// NewRedisHealthChecker creates a new Redis health checker.
func NewRedisHealthChecker(client *redis.Client) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// Ping checks Redis connectivity.
func (r *RedisHealthChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// PostgresHealthChecker adapts pgxpool.Pool to Pinger.
type PostgresHealthChecker struct {
	pool *pgxpool.Pool
}

// NewPostgresHealthChecker creates a new Postgres health checker.
func NewPostgresHealthChecker(pool *pgxpool.Pool) *PostgresHealthChecker {
	return &PostgresHealthChecker{pool: pool}
}

// Ping checks Postgres connectivity.
func (p *PostgresHealthChecker) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// GateStats exposes the admission store's size for health reporting.
type GateStats interface {
	Len() int
}

// HealthHandler handles health check operations.
type HealthHandler struct {
	redis    Pinger
	postgres Pinger
	stats    GateStats
}

// NewHealthHandler creates a new health handler. Either pinger may be
// nil when the dependency is not configured.
func NewHealthHandler(redis, postgres Pinger, stats GateStats) *HealthHandler {
	return &HealthHandler{redis: redis, postgres: postgres, stats: stats}
}

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Body struct {
		Status        string `json:"status"`
		Redis         string `json:"redis,omitempty"`
		Postgres      string `json:"postgres,omitempty"`
		AdmissionKeys *int   `json:"admissionKeys,omitempty"`
	}
}

// Check reports the service's health and its dependencies' reachability.
func (h *HealthHandler) Check(ctx context.Context, _ *struct{}) (*HealthResponse, error) {
	resp := &HealthResponse{}
	resp.Body.Status = "ok"

	if h.stats != nil {
		keys := h.stats.Len()
		resp.Body.AdmissionKeys = &keys
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			resp.Body.Redis = "unhealthy"
			resp.Body.Status = "degraded"
		} else {
			resp.Body.Redis = "healthy"
		}
	}

	if h.postgres != nil {
		if err := h.postgres.Ping(ctx); err != nil {
			resp.Body.Postgres = "unhealthy"
			resp.Body.Status = "degraded"
		} else {
			resp.Body.Postgres = "healthy"
		}
	}

	return resp, nil
}
