// Package server runs the REST API and the optional gRPC health endpoint.
//
// Both servers start from [NewServer] and stop together on SIGINT, SIGTERM or
// SIGQUIT, draining in-flight requests before the process exits.
package server
