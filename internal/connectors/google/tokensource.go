package google

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
)

// TokenSourceAdapter adapts the token broker to oauth2.TokenSource so
// Google API clients draw tokens from our credential lifecycle.
type TokenSourceAdapter struct {
	provider driven.TokenProvider
	ctx      context.Context
}

// NewTokenSource creates an oauth2.TokenSource from a TokenProvider.
// Use with option.WithTokenSource when constructing API services.
func NewTokenSource(ctx context.Context, provider driven.TokenProvider) oauth2.TokenSource {
	return &TokenSourceAdapter{
		provider: provider,
		ctx:      ctx,
	}
}

// Token implements oauth2.TokenSource.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	tok, err := t.provider.EnsureAccessToken(t.ctx)
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken: tok.Value,
		TokenType:   "Bearer",
		Expiry:      tok.Expiry,
	}, nil
}
