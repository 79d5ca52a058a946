// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-param-store/internal/logger"
)

// Option configures a [Resolver].
type Option func(*Resolver)

// WithLogger attaches a zerolog logger to the resolver. The resolver logs at
// debug level only (pages fetched, parameters skipped, map sizes), scoping
// every resolution's entries with a "prefix" field; by default all output is
// discarded so the library stays silent inside host applications.
//
// log must be a configured logger (e.g. built with [zerolog.New]), not the
// zero value.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Resolver) {
		r.log = &logger.Logger{Logger: log}
	}
}

// WithStrictPrefix makes the resolver fail with a fetch-domain error wrapping
// [ErrPrefixMismatch] when the store returns a parameter whose name does not
// begin with the requested prefix plus separator. Without this option such
// parameters are skipped and logged at debug level.
func WithStrictPrefix() Option {
	return func(r *Resolver) {
		r.strict = true
	}
}
