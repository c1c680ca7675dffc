// Package google provides shared infrastructure for the Google API
// connectors.
//
// It contains the pieces the forms and sheets connectors have in
// common:
//   - TokenSource adapter bridging the token broker to oauth2.TokenSource
//   - Service factories for the Forms, Sheets, and Drive API clients
//   - Error mapping from googleapi errors onto the domain taxonomy
//
// # Usage
//
// Each connector creates authenticated API clients through this
// package:
//
//	ts := google.NewTokenSource(ctx, tokenProvider)
//	svc, err := google.NewFormsService(ctx, ts)
package google
