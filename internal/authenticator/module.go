package authenticator

import (
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/authenticator/internal/authenticator/inbound"
	"github.com/shandysiswandi/authenticator/internal/authenticator/outbound/cache"
	"github.com/shandysiswandi/authenticator/internal/authenticator/outbound/mq"
	"github.com/shandysiswandi/authenticator/internal/authenticator/usecase"
	"github.com/shandysiswandi/authenticator/internal/pkg/clock"
	"github.com/shandysiswandi/authenticator/internal/pkg/config"
	"github.com/shandysiswandi/authenticator/internal/pkg/goroutine"
	"github.com/shandysiswandi/authenticator/internal/pkg/instrument"
	"github.com/shandysiswandi/authenticator/internal/pkg/messaging"
	"github.com/shandysiswandi/authenticator/internal/pkg/otp"
	"github.com/shandysiswandi/authenticator/internal/pkg/router"
	"github.com/shandysiswandi/authenticator/internal/pkg/validator"
)

type Dependency struct {
	CacheConn  *redis.Client              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Totp       otp.OTP                    `validate:"required"`
	QRCode     otp.QRRenderer             `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	cacheCred := cache.NewRedis(dep.CacheConn, dep.Instrument, dep.Config.GetString("authenticator.key_prefix"))
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoCache:     cacheCred,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Totp:          dep.Totp,
		QRCode:        dep.QRCode,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
