package otp

import (
	"encoding/base32"
	"net/url"
	"strings"
	"testing"
	"time"

	libotp "github.com/pquerna/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOTPGenerate(t *testing.T) {
	o := NewTOTP("Authenticator", 0, 0, 0)

	secret, uri, err := o.Generate("alice")
	require.NoError(t, err)

	assert.Len(t, secret, 32)
	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
	require.NoError(t, err)
	assert.Len(t, raw, SecretSize)

	u, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "otpauth", u.Scheme)
	assert.Equal(t, "totp", u.Host)
	assert.Equal(t, secret, u.Query().Get("secret"))
	assert.Equal(t, "Authenticator", u.Query().Get("issuer"))
	assert.True(t, strings.HasSuffix(u.Path, "alice"))

	other, _, err := o.Generate("alice")
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestTOTPValidateWindow(t *testing.T) {
	o := NewTOTP("Authenticator", 30, 1, libotp.DigitsSix)
	secret, _, err := o.Generate("bob")
	require.NoError(t, err)

	now := time.Date(2026, 10, 16, 12, 0, 15, 0, time.UTC)

	tests := []struct {
		name   string
		codeAt time.Time
		want   bool
	}{
		{name: "current step", codeAt: now, want: true},
		{name: "previous step", codeAt: now.Add(-o.Period()), want: true},
		{name: "next step", codeAt: now.Add(o.Period()), want: true},
		{name: "two steps ahead", codeAt: now.Add(2 * o.Period()), want: false},
		{name: "two steps behind", codeAt: now.Add(-2 * o.Period()), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := o.GenerateCode(secret, tt.codeAt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, o.Validate(code, secret, now))
		})
	}
}

func TestTOTPValidateMalformed(t *testing.T) {
	o := NewTOTP("Authenticator", 30, 1, libotp.DigitsSix)
	secret, _, err := o.Generate("carol")
	require.NoError(t, err)

	now := time.Now()
	for _, code := range []string{"", "12345", "1234567", "abcdef", " 12345"} {
		assert.False(t, o.Validate(code, secret, now), code)
	}

	assert.False(t, o.Validate("123456", "not base32 !!", now))
}

func TestNewTOTPDefaults(t *testing.T) {
	o := NewTOTP("x", 0, 0, libotp.Digits(7))
	assert.Equal(t, 30*time.Second, o.Period())
	assert.Equal(t, uint(1), o.skew)
	assert.Equal(t, libotp.DigitsSix, o.digits)
}
