package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/authenticator/internal/authenticator/entity"
	"github.com/shandysiswandi/authenticator/internal/pkg/goerror"
)

type EnrollInput struct {
	UserID string `validate:"required,max=256"`
}

type EnrollOutput struct {
	Ack         entity.WriteAck
	Secret      string
	QRCodeURL   string
	QRCodeImage string
}

// Enroll issues a fresh TOTP secret for the user and stores it together with
// the provisioning URI and its QR image. Re-enrolling replaces the record.
func (s *Usecase) Enroll(ctx context.Context, in EnrollInput) (*EnrollOutput, error) {
	ctx, span := s.startSpan(ctx, "Enroll")
	defer span.End()

	in.UserID = strings.TrimSpace(in.UserID)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	secret, uri, err := s.totp.Generate(in.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate totp secret", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(&entity.DependencyError{Component: "totp", Err: err})
	}

	image, err := s.qr.RenderDataURI(uri)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render qr code", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(&entity.DependencyError{Component: "qrcode", Err: err})
	}

	cred := entity.Credential{
		Secret:      secret,
		QRCodeURL:   uri,
		QRCodeImage: image,
	}

	ack, err := s.repoCache.SaveCredential(ctx, in.UserID, cred)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo save credential", "user_id", in.UserID, "error", err)
		return nil, s.storageFailure("HSET", err)
	}

	if s.enrollCounter != nil {
		s.enrollCounter.Add(ctx, 1)
	}

	enrolledAt := s.clock.Now()
	s.dispatch(ctx, "enrolled", func(ctx context.Context) error {
		return s.repoMessaging.PublishEnrolled(ctx, EnrolledEvent{UserID: in.UserID, EnrolledAt: enrolledAt})
	})

	return &EnrollOutput{
		Ack:         ack,
		Secret:      cred.Secret,
		QRCodeURL:   cred.QRCodeURL,
		QRCodeImage: cred.QRCodeImage,
	}, nil
}
