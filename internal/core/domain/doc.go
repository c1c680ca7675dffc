// Package domain contains the core types of gtools: credentials and
// access tokens, the question variant, form templates, sheet data, and
// the error taxonomy shared by every adapter.
//
// The domain layer has no knowledge of the Google APIs or the CLI; it
// defines what a valid question or credential set is, and the connectors
// and services translate to and from it.
package domain
