// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port and the API key that protects the
// read-only job board API started by the "start" command.
package server
