// internal/app/system/auth/idtoken.go
package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issuerPrefix is the issuer the identity provider stamps on ID tokens,
// followed by the project ID.
const issuerPrefix = "https://securetoken.google.com/"

// KeySource resolves the RSA public key for a token's "kid" header.
type KeySource interface {
	Key(kid string) (*rsa.PublicKey, error)
}

// IDTokenVerifier validates provider-issued RS256 ID tokens: signature
// against a KeySource, audience equal to the project ID, the provider's
// issuer for that project, an unexpired lifetime, and a non-empty subject.
type IDTokenVerifier struct {
	projectID string
	keys      KeySource
}

// NewIDTokenVerifier builds a verifier for the given identity-provider
// project. keys supplies the provider's current signing keys.
func NewIDTokenVerifier(projectID string, keys KeySource) *IDTokenVerifier {
	return &IDTokenVerifier{projectID: projectID, keys: keys}
}

// Verify implements Verifier.
func (v *IDTokenVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		return v.keys.Key(kid)
	},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer(issuerPrefix+v.projectID),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{Email: email, Claims: claims}, nil
}

// StaticKeys is a fixed in-memory KeySource, used when the provider key is
// pinned via configuration and in tests.
type StaticKeys map[string]*rsa.PublicKey

// ParseStaticKeys builds a StaticKeys set from PEM-encoded public keys or
// certificates, keyed by kid.
func ParseStaticKeys(pems map[string]string) (StaticKeys, error) {
	keys := make(StaticKeys, len(pems))
	for kid, pemData := range pems {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemData))
		if err != nil {
			return nil, fmt.Errorf("parse key %q: %w", kid, err)
		}
		keys[kid] = key
	}
	return keys, nil
}

// Key implements KeySource.
func (s StaticKeys) Key(kid string) (*rsa.PublicKey, error) {
	key, ok := s[kid]
	if !ok {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}
	return key, nil
}

// certKeyTTL bounds how long fetched provider certificates are reused
// before re-fetching. The provider rotates keys on the order of hours.
const certKeyTTL = time.Hour

// CertURLKeys fetches the provider's current x509 certificates (a JSON
// object of kid -> PEM certificate) from its published URL and caches the
// parsed public keys.
type CertURLKeys struct {
	url    string
	client *http.Client

	mu      sync.Mutex
	keys    map[string]*rsa.PublicKey
	expires time.Time
}

// NewCertURLKeys builds a KeySource backed by the given certificate URL.
// A nil client falls back to a default with a conservative timeout.
func NewCertURLKeys(url string, client *http.Client) *CertURLKeys {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &CertURLKeys{url: url, client: client}
}

// Key implements KeySource, refreshing the certificate set when the cache
// is cold or expired.
func (c *CertURLKeys) Key(kid string) (*rsa.PublicKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.keys == nil || time.Now().After(c.expires) {
		if err := c.refreshLocked(); err != nil {
			return nil, err
		}
	}

	key, ok := c.keys[kid]
	if !ok {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}
	return key, nil
}

func (c *CertURLKeys) refreshLocked() error {
	resp, err := c.client.Get(c.url)
	if err != nil {
		return fmt.Errorf("fetch provider certs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch provider certs: unexpected status %d", resp.StatusCode)
	}

	var certs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return fmt.Errorf("decode provider certs: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, pemData := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemData))
		if err != nil {
			return fmt.Errorf("parse provider cert %q: %w", kid, err)
		}
		keys[kid] = key
	}

	c.keys = keys
	c.expires = time.Now().Add(certKeyTTL)
	return nil
}
