// Package http implements the REST transport of the notes API.
//
// It exposes route wiring, request handlers and middleware. Authentication,
// request tracing, access logging, metrics and response compression are
// handled here before requests are delegated to the service layer.
package http
