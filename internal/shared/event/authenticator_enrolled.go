package event

const AuthenticatorEnrolledDestination string = "authenticator.enrolled"

type AuthenticatorEnrolledMessage struct {
	UserID     string `json:"user_id"`
	EnrolledAt int64  `json:"enrolled_at"`
}
