// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-param-store/internal/logger"
)

// fold reduces the flattened parameter sequence into a single unprefixed
// key/value map.
//
// For every parameter carrying both a name and a value, the key is the name
// with the leading prefix and its separator removed. Duplicate keys resolve
// last-write-wins: a later parameter (in fetch order) overwrites an earlier
// one. Parameters missing either field are skipped silently — the store models
// both as optional and an entry without a value contributes nothing.
//
// Names that do not start with prefix+separator should not occur (the fetch
// request itself filters by path), but the store is not trusted on this:
// mismatches are skipped, or surfaced as a fetch-domain error wrapping
// [ErrPrefixMismatch] when the resolver runs strict.
func (r *Resolver) fold(params []Parameter, prefix string, log *logger.Logger) (map[string]string, error) {
	strip := len(prefix) + len(separator)
	flat := make(map[string]string, len(params))

	for _, p := range params {
		if p.Name == nil || p.Value == nil {
			log.Debug().Msg("parameter missing name or value, skipped")
			continue
		}

		name := *p.Name
		if !strings.HasPrefix(name, prefix+separator) || len(name) == strip {
			if r.strict {
				return nil, newFetchError(fmt.Errorf("%w: %q under %q", ErrPrefixMismatch, name, prefix))
			}

			log.Debug().
				Str("name", name).
				Msg("parameter name outside prefix, skipped")
			continue
		}

		flat[name[strip:]] = *p.Value
	}

	return flat, nil
}
