package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/authenticator/internal/authenticator/outbound/cache"
	"github.com/shandysiswandi/authenticator/internal/pkg/clock"
	"github.com/shandysiswandi/authenticator/internal/pkg/goroutine"
	"github.com/shandysiswandi/authenticator/internal/pkg/instrument"
	"github.com/shandysiswandi/authenticator/internal/pkg/otp"
	"github.com/shandysiswandi/authenticator/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 16, 9, 30, 10, 0, time.UTC)

type recordingMessaging struct {
	mu       sync.Mutex
	enrolled []EnrolledEvent
	verified []VerifiedEvent
	err      error
}

func (m *recordingMessaging) PublishEnrolled(_ context.Context, msg EnrolledEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enrolled = append(m.enrolled, msg)
	return m.err
}

func (m *recordingMessaging) PublishVerified(_ context.Context, msg VerifiedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verified = append(m.verified, msg)
	return m.err
}

type failingOTP struct {
	otp.OTP
	err error
}

func (f failingOTP) Generate(string) (string, string, error) { return "", "", f.err }

type failingQR struct{ err error }

func (f failingQR) RenderDataURI(string) (string, error) { return "", f.err }

type fixture struct {
	uc    *Usecase
	mr    *miniredis.Miniredis
	totp  *otp.TOTP
	msg   *recordingMessaging
	gm    *goroutine.Manager
	store *cache.Redis
}

type option func(*Dependency)

func newFixture(t *testing.T, opts ...option) *fixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	totp := otp.NewTOTP("Authenticator", 30, 1, 6)
	store := cache.NewRedis(client, instrument.NewNoop(), "")
	msg := &recordingMessaging{}
	gm := goroutine.NewManager(16)

	dep := Dependency{
		RepoCache:     store,
		RepoMessaging: msg,
		Validator:     v,
		Totp:          totp,
		QRCode:        otp.NewPNGQRCode(128),
		Clock:         clock.Fixed{At: testNow},
		Instrument:    instrument.NewNoop(),
		Goroutine:     gm,
	}
	for _, opt := range opts {
		opt(&dep)
	}

	return &fixture{uc: New(dep), mr: mr, totp: totp, msg: msg, gm: gm, store: store}
}

func withTotp(o otp.OTP) option { return func(d *Dependency) { d.Totp = o } }

func withQR(r otp.QRRenderer) option { return func(d *Dependency) { d.QRCode = r } }

var errBoom = errors.New("boom")
