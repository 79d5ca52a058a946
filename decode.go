// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// decode hands the folded map to the caarlos0/env engine, which matches map
// keys against the target's `env` tags and performs all type coercion (string
// to number, comma-separated value to slice, required-field validation). The
// engine reads exclusively from the supplied map, never from the process
// environment. Its failures are surfaced as decode-domain errors.
func decode(flat map[string]string, target any) error {
	opts := env.Options{Environment: flat}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return newDecodeError(fmt.Errorf("error decoding parameters into target: %w", err))
	}

	return nil
}
