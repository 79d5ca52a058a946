// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import (
	"context"
	"fmt"

	"dario.cat/mergo"
)

// ResolveOverlays resolves several prefixes into one target, merging their
// folded maps in argument order with later prefixes overriding earlier ones.
// The usual layering is a shared base plus an environment-specific overlay:
//
//	err := r.ResolveOverlays(ctx, &cfg, "/sweet-app/common", "/sweet-app/prod")
//
// Each prefix is traversed independently and completely before the merge; a
// failure on any prefix aborts the whole call. Decoding happens exactly once,
// over the merged map.
func (r *Resolver) ResolveOverlays(ctx context.Context, target any, pathPrefixes ...string) error {
	if len(pathPrefixes) == 0 {
		return newFetchError(ErrNoPrefixes)
	}

	merged := make(map[string]string)
	for _, prefix := range pathPrefixes {
		flat, err := r.resolveMap(ctx, prefix)
		if err != nil {
			return err
		}

		if err := mergo.Merge(&merged, flat, mergo.WithOverride); err != nil {
			return newDecodeError(fmt.Errorf("error merging overlay %q: %w", prefix, err))
		}
	}

	r.log.Debug().
		Strs("prefixes", pathPrefixes).
		Int("keys", len(merged)).
		Msg("overlays merged")

	return decode(merged, target)
}
