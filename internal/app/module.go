package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/authenticator/internal/authenticator"
)

func (a *App) initModules() {
	if err := authenticator.New(authenticator.Dependency{
		CacheConn:  a.cacheConn,
		Goroutine:  a.goroutine,
		Router:     a.router,
		Messaging:  a.messaging,
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Totp:       a.totp,
		QRCode:     a.qrcode,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module authenticator", "error", err)
		os.Exit(1)
	}
}
