package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLowerSnake(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"UserID":        "user_id",
		"SubmittedCode": "submitted_code",
		"HTTPServer":    "http_server",
		"code":          "code",
		"QRCodeURL":     "qr_code_url",
		"Base32Secret":  "base32_secret",
	}

	for in, want := range tests {
		assert.Equal(t, want, ToLowerSnake(in), in)
	}
}
