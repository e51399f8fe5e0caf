package ports

// TokenService issues and verifies signed, time-limited session tokens.
// Tokens are stateless; there is no server-side revocation.
type TokenService interface {
	// Issue signs a token carrying only the principal identifier and an expiry.
	Issue(principalID string) (string, error)
	// Verify validates signature and expiry and returns the embedded principal
	// identifier plus whether it is the designated test principal. All
	// failures return domain.ErrAuthentication without distinguishing cause.
	Verify(token string) (principalID string, isTestUser bool, err error)
}
