// Package server holds the HTTP gateway configuration.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structure for server settings: the
// listen port and the API key protecting the gateway endpoints.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the serve command to wire up the Fiber application.
package server
