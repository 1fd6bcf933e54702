package otp

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// DefaultQRSize is the edge length, in pixels, of rendered QR images.
const DefaultQRSize = 256

// ErrEmptyPayload is returned when asked to render nothing.
var ErrEmptyPayload = errors.New("otp: qr payload is empty")

// QRRenderer turns a provisioning URI into something an authenticator app can scan.
type QRRenderer interface {
	// RenderDataURI returns the payload as a data: URI image.
	RenderDataURI(payload string) (string, error)
}

// PNGQRCode renders QR codes as base64 PNG data URIs.
type PNGQRCode struct {
	size int
}

// NewPNGQRCode returns a renderer producing size x size images.
func NewPNGQRCode(size int) *PNGQRCode {
	if size <= 0 {
		size = DefaultQRSize
	}
	return &PNGQRCode{size: size}
}

// RenderDataURI encodes payload with medium error correction and returns
// "data:image/png;base64,...".
func (r *PNGQRCode) RenderDataURI(payload string) (string, error) {
	if payload == "" {
		return "", ErrEmptyPayload
	}

	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("otp: qr encode: %w", err)
	}

	code, err = barcode.Scale(code, r.size, r.size)
	if err != nil {
		return "", fmt.Errorf("otp: qr scale: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return "", fmt.Errorf("otp: png encode: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
