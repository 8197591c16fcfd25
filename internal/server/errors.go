// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The image-upload-server Authors

package server

import "errors"

var (
	// ErrListen is returned when the TCP listener cannot be bound, e.g. the
	// port is already in use.
	ErrListen = errors.New("error binding listener")

	// ErrServe is returned when the HTTP server stops for any reason other
	// than a requested shutdown.
	ErrServe = errors.New("http server stopped unexpectedly")
)
