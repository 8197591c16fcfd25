// Package server runs the HTTP upload server.
//
// It binds the listener first, announces the server, starts the background
// workers and serves until a stop signal, then shuts down gracefully.
package server
