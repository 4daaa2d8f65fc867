// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port, the API key guarding every route
// and how long the stats report is cached between requests. It is embedded by
// core/config and read by the serve command.
package server
