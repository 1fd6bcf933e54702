package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/authenticator/internal/pkg/goerror"
	"github.com/shandysiswandi/authenticator/internal/pkg/router"
)

type healthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
}

func (healthResponse) Message() string { return "service is healthy" }

// healthCheck reports 503 when the credential store does not answer a PING.
func healthCheck(rdb redis.UniversalClient) router.Handler {
	return func(r *router.Request) (any, error) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.WarnContext(ctx, "health check redis ping failed", "error", err)
			return nil, goerror.NewUnavailable(err)
		}

		return healthResponse{Status: "ok", Redis: "up"}, nil
	}
}
