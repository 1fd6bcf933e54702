package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/authenticator/internal/authenticator/entity"
	"github.com/shandysiswandi/authenticator/internal/pkg/goerror"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type VerifyInput struct {
	UserID string `validate:"required,max=256"`
	Code   string
}

// Verify checks code against the user's stored secret at the current time.
// A wrong or malformed code is not an error; it yields false.
func (s *Usecase) Verify(ctx context.Context, in VerifyInput) (bool, error) {
	ctx, span := s.startSpan(ctx, "Verify")
	defer span.End()

	in.UserID = strings.TrimSpace(in.UserID)
	if err := s.validator.Validate(in); err != nil {
		return false, goerror.NewInvalidInput(err)
	}

	cred, err := s.repoCache.GetCredential(ctx, in.UserID)
	if errors.Is(err, entity.ErrNotEnrolled) {
		slog.WarnContext(ctx, "user has no authenticator credential", "user_id", in.UserID)
		return false, goerror.NewBusiness("user is not enrolled", goerror.CodeNotFound, err)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get credential", "user_id", in.UserID, "error", err)
		return false, s.storageFailure("HGETALL", err)
	}

	if cred.Secret == "" {
		slog.WarnContext(ctx, "authenticator credential has no secret", "user_id", in.UserID)
		return false, goerror.NewBusiness("user is not enrolled", goerror.CodeNotFound, entity.ErrNotEnrolled)
	}

	now := s.clock.Now()
	valid := s.totp.Validate(in.Code, cred.Secret, now)

	if s.verifyCounter != nil {
		result := "invalid"
		if valid {
			result = "valid"
		}
		s.verifyCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	}

	s.dispatch(ctx, "verified", func(ctx context.Context) error {
		return s.repoMessaging.PublishVerified(ctx, VerifiedEvent{UserID: in.UserID, Valid: valid, VerifiedAt: now})
	})

	return valid, nil
}
