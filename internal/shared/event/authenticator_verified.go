package event

const AuthenticatorVerifiedDestination string = "authenticator.verified"

type AuthenticatorVerifiedMessage struct {
	UserID     string `json:"user_id"`
	Valid      bool   `json:"valid"`
	VerifiedAt int64  `json:"verified_at"`
}
