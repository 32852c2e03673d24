package i

import (
	"time"
)

// Tokenizer issues and verifies the bearer tokens that gate the protected maze routes.
type Tokenizer interface {
	// Generate signs claims into a token that expires after ttl.
	Generate(claims map[string]interface{}, ttl time.Duration) (string, error)

	// Decode verifies a token's signature, expiry and issuer and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
