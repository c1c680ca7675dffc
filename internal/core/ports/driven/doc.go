// Package driven defines the outbound ports: interfaces implemented by
// infrastructure adapters (credential storage, token brokering, the
// Google API gateways) and consumed by the core services.
package driven
