// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// config enables neither the HTTP nor the gRPC poster API.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoServices is returned by NewHandlers when the poster, auth or app
	// info service is missing.
	errNoServices = errors.New("poster services are not initialized")
)
