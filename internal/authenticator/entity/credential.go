package entity

// Field names of a credential record in the key-value store.
const (
	FieldSecret      = "secret"
	FieldQRCodeURL   = "qrCodeUrl"
	FieldQRCodeImage = "qrCodeImage"
)

// Credential is the enrollment record persisted for one user.
type Credential struct {
	// Secret is the base32 TOTP shared secret.
	Secret string
	// QRCodeURL is the otpauth:// provisioning URI, which embeds Secret.
	QRCodeURL string
	// QRCodeImage is QRCodeURL rendered as a PNG data URI.
	QRCodeImage string
}

// Pairs flattens the record into alternating field/value pairs for a single
// multi-field write.
func (c Credential) Pairs() []any {
	return []any{
		FieldSecret, c.Secret,
		FieldQRCodeURL, c.QRCodeURL,
		FieldQRCodeImage, c.QRCodeImage,
	}
}

// CredentialFromFields builds a Credential from a field map read back from the
// store. Unknown fields are ignored.
func CredentialFromFields(fields map[string]string) Credential {
	return Credential{
		Secret:      fields[FieldSecret],
		QRCodeURL:   fields[FieldQRCodeURL],
		QRCodeImage: fields[FieldQRCodeImage],
	}
}

// WriteAck is the store's acknowledgement of a credential write.
type WriteAck struct {
	// Key is the store key the record was written under.
	Key string
	// FieldsAdded is the number of fields that did not exist before the write.
	// Re-enrolling an existing user overwrites and reports 0.
	FieldsAdded int64
}
