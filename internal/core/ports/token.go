package ports

// TokenIssuer issues and verifies the opaque session credential bound to a
// user identifier. Tokens are stateless; expiry is embedded at issue time and
// checked on verification.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	// Verify returns the user identifier the token was issued for, or an
	// error when the token is malformed, forged, or expired.
	Verify(token string) (string, error)
}
