package driven

import (
	"context"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// TokenProvider supplies valid access tokens for authenticated calls.
// Implementations refresh transparently and cache in process memory
// only; nothing outlives the invocation.
type TokenProvider interface {
	// EnsureAccessToken returns an access token that will not expire
	// within the provider's safety margin, refreshing at most once.
	EnsureAccessToken(ctx context.Context) (domain.AccessToken, error)
}
