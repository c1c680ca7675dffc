// Package auth implements the OAuth token broker: it exchanges the
// stored refresh token for short-lived access tokens, and performs the
// one-shot authorization-code exchange used by the setup flow.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
	"github.com/custodia-labs/gtools-cli/internal/logger"
)

// Ensure Broker implements the interface.
var _ driven.TokenProvider = (*Broker)(nil)

// Google OAuth endpoints.
const (
	GoogleAuthURL  = "https://accounts.google.com/o/oauth2/auth"
	GoogleTokenURL = "https://oauth2.googleapis.com/token"
)

// Scopes requested during authorization. Forms body and responses,
// read-only Sheets, and the Drive file scope that backs form listing
// and deletion.
var Scopes = []string{
	"https://www.googleapis.com/auth/forms.body",
	"https://www.googleapis.com/auth/forms.responses.readonly",
	"https://www.googleapis.com/auth/spreadsheets.readonly",
	"https://www.googleapis.com/auth/drive.file",
}

// RefreshMargin is the safety window before expiry within which a
// token is considered stale and refreshed proactively.
const RefreshMargin = 60 * time.Second

// Broker exchanges the refresh token for access tokens. The access
// token is cached in memory only, for the lifetime of one invocation.
type Broker struct {
	store    driven.CredentialsStore
	tokenURL string
	client   *http.Client
	margin   time.Duration

	mu     sync.Mutex
	cached domain.AccessToken
}

// NewBroker creates a token broker over the given credentials store.
func NewBroker(store driven.CredentialsStore) *Broker {
	return &Broker{
		store:    store,
		tokenURL: GoogleTokenURL,
		client:   &http.Client{Timeout: 30 * time.Second},
		margin:   RefreshMargin,
	}
}

// EnsureAccessToken returns a valid access token, performing at most
// one refresh grant. A token expiring within the safety margin is
// treated as stale.
func (b *Broker) EnsureAccessToken(ctx context.Context) (domain.AccessToken, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cached.Value != "" && !b.cached.ExpiresWithin(b.margin) {
		return b.cached, nil
	}

	creds, err := b.store.Load()
	if err != nil {
		return domain.AccessToken{}, fmt.Errorf("load credentials: %w", err)
	}
	if !creds.Complete() {
		return domain.AccessToken{}, domain.NewAuthError(domain.AuthMissingCredentials,
			"missing %s", strings.Join(creds.MissingKeys(), ", "))
	}

	logger.Debug("refreshing access token")
	tok, err := b.refresh(ctx, creds)
	if err != nil {
		return domain.AccessToken{}, err
	}

	b.cached = tok
	return tok, nil
}

// tokenResponse is the authorization server's token payload.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// tokenErrorResponse is the authorization server's error payload.
type tokenErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

func (e tokenErrorResponse) detail() string {
	if e.Description != "" {
		return e.Error + ": " + e.Description
	}
	return e.Error
}

// refresh performs the refresh-token grant.
func (b *Broker) refresh(ctx context.Context, creds domain.Credentials) (domain.AccessToken, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", creds.RefreshToken)
	data.Set("client_id", creds.ClientID)
	data.Set("client_secret", creds.ClientSecret)

	resp, err := b.post(ctx, data)
	if err != nil {
		return domain.AccessToken{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp tokenErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return domain.AccessToken{}, &domain.GatewayError{
				Kind:   domain.GatewayTransient,
				Detail: fmt.Sprintf("token endpoint returned %d", resp.StatusCode),
			}
		}
		// 400 invalid_grant is the expired/revoked refresh token case.
		return domain.AccessToken{}, &domain.AuthError{
			Kind:   domain.AuthRefreshRejected,
			Detail: errResp.detail(),
		}
	}

	var tokenResp tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return domain.AccessToken{}, fmt.Errorf("decode token response: %w", err)
	}

	return domain.AccessToken{
		Value:  tokenResp.AccessToken,
		Expiry: time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
	}, nil
}

// ExchangeAuthorizationCode exchanges a one-time authorization code
// for a refresh token. Used only by the setup flow.
func (b *Broker) ExchangeAuthorizationCode(
	ctx context.Context,
	creds domain.Credentials,
	code, redirectURI string,
) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("client_id", creds.ClientID)
	data.Set("client_secret", creds.ClientSecret)
	data.Set("code", code)
	data.Set("redirect_uri", redirectURI)

	resp, err := b.post(ctx, data)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp tokenErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return "", &domain.AuthError{
			Kind:   domain.AuthExchangeRejected,
			Detail: errResp.detail(),
		}
	}

	var tokenResp tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tokenResp.RefreshToken == "" {
		return "", &domain.AuthError{
			Kind:   domain.AuthExchangeRejected,
			Detail: "authorization server returned no refresh token; revoke prior grants and retry",
		}
	}

	return tokenResp.RefreshToken, nil
}

// post issues a form-encoded POST to the token endpoint, mapping
// transport failures to the gateway taxonomy.
func (b *Broker) post(ctx context.Context, data url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &domain.GatewayError{
			Kind:   domain.GatewayUnreachable,
			Detail: "token endpoint unreachable",
			Err:    err,
		}
	}
	return resp, nil
}

// AuthCodeURL builds the browser authorization URL for the setup flow.
// Offline access with forced consent, so Google issues a refresh token
// even for previously authorized clients.
func AuthCodeURL(creds domain.Credentials, redirectURI, state string) string {
	cfg := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  GoogleAuthURL,
			TokenURL: GoogleTokenURL,
		},
	}
	return cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}
