package auth

// TokenCodec abstracts signed-token issuance and verification (e.g. JWT).
// It allows use cases to stay framework-agnostic.
type TokenCodec interface {
	// Issue signs the given claims and injects an expiry.
	Issue(claims map[string]any) (string, error)
	// Verify checks the signature and expiry and returns the full claim set.
	Verify(token string) (map[string]any, error)
}
