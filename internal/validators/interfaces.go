// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks poster and account requests before they reach
// storage or the network: WGS84 coordinate ranges, positive user and party
// ids, a non-negative updates watermark and non-empty credentials.
//
// Services call Validate with an optional list of field names (see the
// Field* constants) to check only what a given operation uses.
package validators

import "context"

// Validator validates a request value, optionally restricted to the named
// fields. Unsupported value types yield [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
