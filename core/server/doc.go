// Package server holds the HTTP server configuration.
//
// The server itself is assembled in the start command; features register their
// own routes through the core/loader mechanism.
package server
