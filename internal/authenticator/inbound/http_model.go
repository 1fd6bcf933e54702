package inbound

import "net/http"

type EnrollRequest struct {
	UserID string `json:"user_id"`
}

type EnrollResponse struct {
	Key         string `json:"key"`
	FieldsAdded int64  `json:"fields_added"`
	Secret      string `json:"secret"`
	QRCodeURL   string `json:"qr_code_url"`
	QRCodeImage string `json:"qr_code_image"`
}

func (EnrollResponse) StatusCode() int { return http.StatusCreated }

func (EnrollResponse) Message() string { return "authenticator enrolled" }

type VerifyRequest struct {
	UserID string `json:"user_id"`
	Code   string `json:"code"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}
