package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/authenticator/internal/authenticator/entity"
	"github.com/shandysiswandi/authenticator/internal/pkg/clock"
	"github.com/shandysiswandi/authenticator/internal/pkg/goerror"
	"github.com/shandysiswandi/authenticator/internal/pkg/goroutine"
	"github.com/shandysiswandi/authenticator/internal/pkg/instrument"
	"github.com/shandysiswandi/authenticator/internal/pkg/otp"
	"github.com/shandysiswandi/authenticator/internal/pkg/validator"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type EnrolledEvent struct {
	UserID     string
	EnrolledAt time.Time
}

type VerifiedEvent struct {
	UserID     string
	Valid      bool
	VerifiedAt time.Time
}

type repoCache interface {
	SaveCredential(ctx context.Context, userID string, cred entity.Credential) (entity.WriteAck, error)
	GetCredential(ctx context.Context, userID string) (*entity.Credential, error)
}

type repoMessaging interface {
	PublishEnrolled(ctx context.Context, msg EnrolledEvent) error
	PublishVerified(ctx context.Context, msg VerifiedEvent) error
}

type Usecase struct {
	repoCache     repoCache
	repoMessaging repoMessaging
	validator     validator.Validator
	totp          otp.OTP
	qr            otp.QRRenderer
	clock         clock.Clocker
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager

	enrollCounter metric.Int64Counter
	verifyCounter metric.Int64Counter
}

type Dependency struct {
	RepoCache     repoCache
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Totp          otp.OTP
	QRCode        otp.QRRenderer
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	meter := dep.Instrument.Meter("authenticator.usecase")

	enrollCounter, err := meter.Int64Counter("authenticator.enroll.total", metric.WithDescription("Number of successful enrollments"))
	if err != nil {
		slog.Error("failed to create enroll counter", "error", err)
	}

	verifyCounter, err := meter.Int64Counter("authenticator.verify.total", metric.WithDescription("Number of verifications by result"))
	if err != nil {
		slog.Error("failed to create verify counter", "error", err)
	}

	return &Usecase{
		repoCache:     dep.RepoCache,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		totp:          dep.Totp,
		qr:            dep.QRCode,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
		enrollCounter: enrollCounter,
		verifyCounter: verifyCounter,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("authenticator.usecase").Start(ctx, name)
}

// storageFailure maps a store error onto the 503 taxonomy, keeping the
// StorageError reachable for errors.As.
func (s *Usecase) storageFailure(op string, err error) error {
	var serr *entity.StorageError
	if !errors.As(err, &serr) {
		err = &entity.StorageError{Op: op, Err: err}
	}
	return goerror.NewUnavailable(err)
}

// dispatch runs fn in the background. Events are best effort, a failure is
// only logged and never reaches the caller.
func (s *Usecase) dispatch(ctx context.Context, name string, fn func(ctx context.Context) error) {
	if s.repoMessaging == nil {
		return
	}

	ok := s.goroutine.Go(ctx, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to publish event", "event", name, "error", err)
		}
		return nil
	})
	if !ok {
		slog.WarnContext(ctx, "event dropped", "event", name)
	}
}
