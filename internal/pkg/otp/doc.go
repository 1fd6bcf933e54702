// Package otp wraps the TOTP (RFC 6238) primitives used for second-factor
// enrollment: secret generation, provisioning URIs, QR rendering and code
// validation.
//
// The arithmetic lives in github.com/pquerna/otp and QR encoding in
// github.com/boombuler/barcode; this package only fixes the policy
// (secret size, digits, period, skew) in one place.
package otp
