// Package http implements the HTTP transport of the poster server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Authentication, request tracing, access logging and response
// compression are handled in this package before requests are delegated to
// the service layer. Every error body is a JSON [models.ErrorResponse].
package http
