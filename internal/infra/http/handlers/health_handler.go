package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/usecase"
)

type HealthHandler struct {
	UseCase  *usecase.HealthUseCase
	DB       *sql.DB
	RabbitMQ *amqp091.Connection
	Redis    *redis.Client
}

type HealthResponse struct {
	usecase.HealthView
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(uc *usecase.HealthUseCase, db *sql.DB, rabbitMQ *amqp091.Connection, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		UseCase:  uc,
		DB:       db,
		RabbitMQ: rabbitMQ,
		Redis:    rdb,
	}
}

// Handle (GET /api/health) responde 503 só quando uma dependência
// configurada está fora; backend de analytics fora deixa "degraded" com 200.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]string)

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			deps["database"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["database"] = "healthy"
		}
	} else {
		deps["database"] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	if h.Redis != nil {
		if err := h.Redis.Ping(ctx).Err(); err != nil {
			deps["redis"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["redis"] = "healthy"
		}
	} else {
		deps["redis"] = "not configured"
	}

	view := h.UseCase.Execute(ctx)
	if view.Backend {
		deps["analytics"] = "healthy"
	} else {
		deps["analytics"] = "unhealthy"
	}

	code := http.StatusOK
	for name, v := range deps {
		if name == "analytics" {
			continue
		}
		if v != "healthy" && v != "not configured" {
			view.Status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}

	writeJSON(w, code, HealthResponse{
		HealthView:   view,
		Version:      "1.0.0",
		Dependencies: deps,
	})
}
