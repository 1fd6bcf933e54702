package inbound

import (
	"github.com/shandysiswandi/authenticator/internal/authenticator/usecase"
	"github.com/shandysiswandi/authenticator/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// Enroll issues a TOTP secret for a user.
// @Summary Enroll authenticator
// @Description Generates a new shared secret, stores it with its otpauth URI and QR image, and returns them.
// @Tags Authenticator
// @Accept json
// @Produce json
// @Param request body EnrollRequest true "Enroll payload"
// @Success 201 {object} router.successResponse{data=EnrollResponse} "Enrollment result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Failure 503 {object} router.errorResponse "Store unavailable"
// @Router /api/v1/authenticator/enroll [post]
func (h *HTTPEndpoint) Enroll(r *router.Request) (any, error) {
	var req EnrollRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Enroll(r.Context(), usecase.EnrollInput{UserID: req.UserID})
	if err != nil {
		return nil, err
	}

	return EnrollResponse{
		Key:         resp.Ack.Key,
		FieldsAdded: resp.Ack.FieldsAdded,
		Secret:      resp.Secret,
		QRCodeURL:   resp.QRCodeURL,
		QRCodeImage: resp.QRCodeImage,
	}, nil
}

// Verify checks a submitted TOTP code.
// @Summary Verify code
// @Description Validates a code against the user's stored secret. Wrong or malformed codes return valid=false.
// @Tags Authenticator
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Verify payload"
// @Success 200 {object} router.successResponse{data=VerifyResponse} "Verification result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "User not enrolled"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 503 {object} router.errorResponse "Store unavailable"
// @Router /api/v1/authenticator/verify [post]
func (h *HTTPEndpoint) Verify(r *router.Request) (any, error) {
	var req VerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	valid, err := h.uc.Verify(r.Context(), usecase.VerifyInput{UserID: req.UserID, Code: req.Code})
	if err != nil {
		return nil, err
	}

	return VerifyResponse{Valid: valid}, nil
}
