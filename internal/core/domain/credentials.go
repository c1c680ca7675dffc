package domain

import (
	"strings"
	"time"
)

// Credential keys in the secrets file.
const (
	KeyClientID     = "GOOGLE_CLIENT_ID"
	KeyClientSecret = "GOOGLE_CLIENT_SECRET"
	KeyRefreshToken = "GOOGLE_REFRESH_TOKEN"
)

// Credentials holds the OAuth app credentials and the long-lived
// refresh token. All three must be present before any gateway call; a
// missing refresh token routes to the authorization flow instead.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Complete returns true if all three secrets are set.
func (c Credentials) Complete() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// HasRefreshToken returns true if a refresh token is available.
func (c Credentials) HasRefreshToken() bool {
	return c.RefreshToken != ""
}

// MissingKeys lists the secrets file keys that are unset, in file
// order.
func (c Credentials) MissingKeys() []string {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, KeyClientID)
	}
	if c.ClientSecret == "" {
		missing = append(missing, KeyClientSecret)
	}
	if c.RefreshToken == "" {
		missing = append(missing, KeyRefreshToken)
	}
	return missing
}

// AccessToken is a short-lived bearer credential. Held only in process
// memory, never persisted.
type AccessToken struct {
	Value  string
	Expiry time.Time
}

// ExpiresWithin returns true if the token expires within the given
// margin of now (or has no known expiry).
func (t AccessToken) ExpiresWithin(margin time.Duration) bool {
	if t.Expiry.IsZero() {
		return true
	}
	return time.Until(t.Expiry) < margin
}

// ValidResourceID reports whether id is usable as an opaque resource
// identifier. Correctness beyond non-blank is delegated to the remote
// service.
func ValidResourceID(id string) bool {
	return strings.TrimSpace(id) != ""
}
