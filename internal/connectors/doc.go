// Package connectors holds the remote service clients. Each connector
// wraps one Google API surface behind a gateway port so the core
// services stay free of API client types.
package connectors
