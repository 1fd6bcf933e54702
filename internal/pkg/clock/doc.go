// Package clock provides a tiny time abstraction.
//
// TOTP verification depends on the current time step, so usecases read time
// through Clocker and tests pin it with Fixed.
package clock
