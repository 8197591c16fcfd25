// Package http implements the HTTP transport layer of the upload server.
//
// It exposes the POST /upload route, which reads a multipart/form-data body
// as a stream, hands the single accepted file to the service layer and maps
// every failure to a JSON response with a matching status code. Request
// tracing, access logging and Prometheus metrics are handled here as well.
package http
