package google

import (
	"context"
	"errors"
	"net"
	"net/url"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// WrapError maps a Google API client error onto the domain error
// taxonomy. 401 and 403 are authorization failures; 429 and 5xx are
// transient; other 4xx carry the server's message verbatim; transport
// failures are unreachable.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := domain.IsAuthError(err); ok {
		return err
	}
	if _, ok := domain.IsGatewayError(err); ok {
		return err
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == 401 || gerr.Code == 403:
			return &domain.AuthError{
				Kind:   domain.AuthUnauthorized,
				Detail: gerr.Message,
				Err:    err,
			}
		case gerr.Code == 429 || gerr.Code >= 500:
			return &domain.GatewayError{
				Kind:   domain.GatewayTransient,
				Detail: gerr.Message,
				Err:    err,
			}
		default:
			detail := gerr.Message
			if detail == "" {
				detail = gerr.Error()
			}
			return &domain.GatewayError{
				Kind:   domain.GatewayInvalidRequest,
				Detail: detail,
				Err:    err,
			}
		}
	}

	var uerr *url.Error
	var nerr net.Error
	if errors.As(err, &uerr) || errors.As(err, &nerr) ||
		errors.Is(err, context.DeadlineExceeded) {
		return &domain.GatewayError{
			Kind:   domain.GatewayUnreachable,
			Detail: "service unreachable",
			Err:    err,
		}
	}

	return err
}
