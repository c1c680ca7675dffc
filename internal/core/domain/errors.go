package domain

import (
	"errors"
	"fmt"
)

// AuthErrorKind classifies authentication failures.
type AuthErrorKind string

const (
	// AuthMissingCredentials indicates the secrets file lacks one or
	// more of client ID, client secret, or refresh token.
	AuthMissingCredentials AuthErrorKind = "missing_credentials"

	// AuthExchangeRejected indicates the authorization server rejected
	// the authorization code during setup.
	AuthExchangeRejected AuthErrorKind = "exchange_rejected"

	// AuthRefreshRejected indicates the refresh token was rejected
	// (expired or revoked). Terminal for the invocation; the user must
	// re-run setup.
	AuthRefreshRejected AuthErrorKind = "refresh_rejected"

	// AuthUnauthorized indicates the remote API returned 401/403 for an
	// authenticated call. A scope problem, not an expired token.
	AuthUnauthorized AuthErrorKind = "unauthorized"
)

// AuthError is an authentication failure.
type AuthError struct {
	Kind   AuthErrorKind
	Detail string
	Err    error
}

func (e *AuthError) Error() string {
	msg := "auth: " + string(e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *AuthError) Unwrap() error { return e.Err }

// Hint returns an actionable message for the user, or "".
func (e *AuthError) Hint() string {
	switch e.Kind {
	case AuthMissingCredentials, AuthRefreshRejected:
		return "Run 'gtools auth setup' to configure credentials."
	default:
		return ""
	}
}

// NewAuthError creates an AuthError with a formatted detail message.
func NewAuthError(kind AuthErrorKind, format string, args ...any) *AuthError {
	return &AuthError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// GatewayErrorKind classifies remote API failures.
type GatewayErrorKind string

const (
	// GatewayUnreachable indicates a transport failure (timeout,
	// connection refused, DNS).
	GatewayUnreachable GatewayErrorKind = "unreachable"

	// GatewayInvalidRequest indicates the remote service rejected the
	// request (4xx other than 401/403). Detail carries the server
	// message verbatim.
	GatewayInvalidRequest GatewayErrorKind = "invalid_request"

	// GatewayTransient indicates a retryable condition (429 or 5xx).
	// The client does not retry; batch callers must.
	GatewayTransient GatewayErrorKind = "transient"
)

// GatewayError is a remote API failure.
type GatewayError struct {
	Kind   GatewayErrorKind
	Detail string
	Err    error
}

func (e *GatewayError) Error() string {
	msg := "gateway: " + string(e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *GatewayError) Unwrap() error { return e.Err }

// TemplateError reports an invalid question specification in a
// template. No gateway call is issued for a template that fails
// validation.
type TemplateError struct {
	Index  int
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template: invalid question %d: %s", e.Index, e.Reason)
}

// IsAuthError returns the AuthError if err is one.
func IsAuthError(err error) (*AuthError, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsGatewayError returns the GatewayError if err is one.
func IsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// IsTemplateError returns the TemplateError if err is one.
func IsTemplateError(err error) (*TemplateError, bool) {
	var te *TemplateError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// IsTransient returns true if err is a transient gateway error.
func IsTransient(err error) bool {
	ge, ok := IsGatewayError(err)
	return ok && ge.Kind == GatewayTransient
}
