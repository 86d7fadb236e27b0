// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line runtime of the sync client.
//
// It maps commands (register, login, place, remove, list, sync, run,
// logout) onto the client services and renders their results on the
// command output. Diagnostics go to the client log file.
package client
