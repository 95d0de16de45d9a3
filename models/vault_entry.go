package models

// VaultEntry is a single credential record from a SecureVault export.
// The companion application serialises its vault as a JSON array of these
// objects before packing it.
type VaultEntry struct {
	// Email is the account e-mail. Often empty when Username is used instead.
	Email string `json:"email"`

	// Username is the account login.
	Username string `json:"username"`

	// Password is the stored secret in clear text.
	Password string `json:"password"`

	// AuthCode is an optional second-factor or recovery code.
	AuthCode string `json:"auth_code"`
}

// Login returns Username, falling back to Email when Username is empty.
func (e VaultEntry) Login() string {
	if e.Username != "" {
		return e.Username
	}
	return e.Email
}
