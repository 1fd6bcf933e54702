package inbound

import (
	"context"

	"github.com/shandysiswandi/authenticator/internal/authenticator/usecase"
	"github.com/shandysiswandi/authenticator/internal/pkg/router"
)

type uc interface {
	Enroll(ctx context.Context, in usecase.EnrollInput) (*usecase.EnrollOutput, error)
	Verify(ctx context.Context, in usecase.VerifyInput) (bool, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/authenticator/enroll", end.Enroll)
	r.POST("/api/v1/authenticator/verify", end.Verify)
}
