package config

import (
	"io"
	"time"
)

// Config defines the configuration lookups used by the service.
//
// Keys are dotted paths (for example "authenticator.totp.period"). Missing
// keys yield the zero value of the requested type.
type Config interface {
	io.Closer

	// GetBool retrieves the value associated with key as a bool.
	GetBool(key string) bool

	// GetString retrieves the value associated with key as a string.
	GetString(key string) string

	// GetInt retrieves the value associated with key as an int.
	GetInt(key string) int

	// GetUint retrieves the value associated with key as a uint.
	GetUint(key string) uint

	// GetFloat64 retrieves the value associated with key as a float64.
	GetFloat64(key string) float64

	// GetSecond interprets the integer value associated with key as seconds.
	GetSecond(key string) time.Duration

	// GetMillisecond interprets the integer value associated with key as milliseconds.
	GetMillisecond(key string) time.Duration

	// GetArray splits the value associated with key on commas, trimming
	// blanks and dropping empty elements.
	GetArray(key string) []string
}
