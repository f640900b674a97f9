package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Typed verification failures. The transport layer collapses both into 401;
// the distinction exists for logs and tests.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

// DefaultTTL matches the original deployment's nine-hour sessions.
const DefaultTTL = 9 * time.Hour

// Codec issues and verifies HS256-signed tokens. The secret is immutable for
// the process lifetime, so a single Codec is safe for concurrent use.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewCodec builds a Codec. An empty secret is a startup misconfiguration and
// is rejected here rather than at issue/verify time.
func NewCodec(secret, issuer string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("jwt: signing secret is not configured")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

// Issue signs the caller's claims with the codec's default TTL.
func (c *Codec) Issue(claims map[string]any) (string, error) {
	return c.IssueFor(claims, c.ttl)
}

// IssueFor signs the caller's claims with an explicit TTL, injecting exp, iat
// and (when configured) iss. Caller-supplied claims are copied, not mutated.
func (c *Codec) IssueFor(claims map[string]any, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["exp"] = jwt.NewNumericDate(now.Add(ttl))
	mc["iat"] = jwt.NewNumericDate(now)
	if c.issuer != "" {
		mc["iss"] = c.issuer
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return token.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the full claim set,
// including exp. Expiry is exclusive with zero clock-skew leeway.
func (c *Codec) Verify(tokenStr string) (map[string]any, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
