// Package http implements the local HTTP API of lacnutry.
//
// It exposes route wiring, request handlers, and middleware used by the UI.
// Cross-cutting concerns such as request tracing, access logging with
// request metrics, response compression and the readiness gate are handled
// in this package before requests are delegated to the service layer.
package http
