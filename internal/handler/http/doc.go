// Package http implements the HTTP transport layer of the course API.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, bearer-token authentication, role checks and
// schema validation are handled in this package before requests are
// delegated to the service layer.
package http
