// Package driving defines the inbound ports: the service interfaces the
// CLI and MCP adapters call into.
package driving
