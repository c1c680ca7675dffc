package services

import (
	"context"
	"time"

	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driving"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService verifies stored credentials.
type AuthService struct {
	store    driven.CredentialsStore
	provider driven.TokenProvider
}

// NewAuthService creates an auth service.
func NewAuthService(store driven.CredentialsStore, provider driven.TokenProvider) *AuthService {
	return &AuthService{store: store, provider: provider}
}

// Check loads the credentials and, when they are complete, performs
// one token refresh to prove them against the authorization server.
func (s *AuthService) Check(ctx context.Context) (*driving.AuthReport, error) {
	report := &driving.AuthReport{Path: s.store.Path()}

	creds, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	report.MissingKeys = creds.MissingKeys()
	if len(report.MissingKeys) > 0 {
		return report, nil
	}

	tok, err := s.provider.EnsureAccessToken(ctx)
	if err != nil {
		return report, err
	}

	report.TokenExpiry = tok.Expiry.Format(time.RFC3339)
	return report, nil
}
