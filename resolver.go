// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-param-store/internal/logger"
)

// separator delimits the segments of a parameter path. The prefix is treated
// as an opaque string plus this one known separator, not as a parsed path.
const separator = "/"

// Resolver resolves all parameters under a path prefix into a target struct.
// It owns no mutable state across calls: every Resolve call runs its own
// traversal with its own cursor and accumulator, so a single Resolver is safe
// for concurrent use.
type Resolver struct {
	fetcher PageFetcher
	log     *logger.Logger
	strict  bool
}

// NewResolver constructs a Resolver over the given fetcher. See [Option] for
// available settings; by default logging is discarded and mismatched
// parameter names are skipped rather than reported.
func NewResolver(fetcher PageFetcher, opts ...Option) *Resolver {
	r := &Resolver{
		fetcher: fetcher,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve fetches every parameter under pathPrefix and decodes the resulting
// key/value map into target, which must be a non-nil pointer to a struct with
// `env` tags (see [github.com/caarlos0/env/v11]).
//
// The traversal is strictly sequential — each continuation cursor depends on
// the previous response — and aborts on the first failure; no partially
// populated target is ever produced. ctx cancellation propagates into the
// in-flight fetch.
func (r *Resolver) Resolve(ctx context.Context, pathPrefix string, target any) error {
	flat, err := r.resolveMap(ctx, pathPrefix)
	if err != nil {
		return err
	}

	return decode(flat, target)
}

// Resolve is the package-level convenience entry point: it builds a default
// SSM-backed fetcher (AWS default credential chain, caller's default region)
// and resolves pathPrefix into a freshly constructed T.
func Resolve[T any](ctx context.Context, pathPrefix string, opts ...Option) (T, error) {
	var target T

	fetcher, err := NewSSMFetcher(ctx)
	if err != nil {
		return target, newFetchError(err)
	}

	if err := NewResolver(fetcher, opts...).Resolve(ctx, pathPrefix, &target); err != nil {
		return target, err
	}

	return target, nil
}

// resolveMap runs the fetch/flatten/fold pipeline for one prefix and returns
// the unprefixed key/value map. All errors are already wrapped in [*Error].
func (r *Resolver) resolveMap(ctx context.Context, pathPrefix string) (map[string]string, error) {
	prefix, err := normalizePrefix(pathPrefix)
	if err != nil {
		return nil, newFetchError(err)
	}

	// every entry of this resolution carries the prefix being resolved
	log := r.log.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("prefix", prefix)
	})

	params, err := r.fetchAll(ctx, prefix, log)
	if err != nil {
		return nil, err
	}

	flat, err := r.fold(params, prefix, log)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("parameters", len(params)).
		Int("keys", len(flat)).
		Msg("parameters folded")

	return flat, nil
}

// fetchAll drives the cursor state machine until exhaustion and concatenates
// every page's parameters in cursor order. The first fetch failure aborts the
// traversal; parameters already accumulated are discarded.
func (r *Resolver) fetchAll(ctx context.Context, prefix string, log *logger.Logger) ([]Parameter, error) {
	var all []Parameter

	for c := startCursor(); !c.done(); {
		page, err := r.fetcher.FetchPage(ctx, prefix, c.token())
		if err != nil {
			return nil, newFetchError(err)
		}

		all = append(all, page.Parameters...)
		c = c.advance(page.NextCursor)

		log.Debug().
			Int("parameters", len(page.Parameters)).
			Bool("more", !c.done()).
			Msg("page fetched")
	}

	return all, nil
}

// normalizePrefix trims a trailing separator so "/demo" and "/demo/" behave
// identically, and rejects prefixes that are empty after trimming.
func normalizePrefix(pathPrefix string) (string, error) {
	prefix := strings.TrimSuffix(pathPrefix, separator)
	if prefix == "" {
		return "", ErrEmptyPrefix
	}

	return prefix, nil
}
