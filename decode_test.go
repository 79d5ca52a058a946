// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore_test

import (
	"context"
	"testing"

	paramstore "github.com/MKhiriev/go-param-store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// demoConfig mirrors the canonical hierarchy:
//
//	aws ssm put-parameter --name /demo/foo --value bar            --type SecureString
//	aws ssm put-parameter --name /demo/bar --value baz,boom,zoom  --type StringList
//	aws ssm put-parameter --name /demo/zar --value 42             --type String
type demoConfig struct {
	Foo string   `env:"foo"`
	Bar []string `env:"bar"`
	Zar uint32   `env:"zar"`
}

// TestResolver_Resolve_EndToEnd walks the full pipeline: paginated fetch,
// prefix stripping, folding, and typed decoding with the engine's list
// splitting and integer coercion.
func TestResolver_Resolve_EndToEnd(t *testing.T) {
	fetcher := &scriptedFetcher{pages: []paramstore.Page{
		page(pstr("cursor-2"),
			pparam("/demo/foo", "bar"),
			pparam("/demo/bar", "baz,boom,zoom"),
		),
		page(nil,
			pparam("/demo/zar", "42"),
		),
	}}
	r := paramstore.NewResolver(fetcher)

	var cfg demoConfig
	err := r.Resolve(context.Background(), "/demo", &cfg)

	require.NoError(t, err)
	assert.Equal(t, demoConfig{
		Foo: "bar",
		Bar: []string{"baz", "boom", "zoom"},
		Zar: 42,
	}, cfg)
}

// TestResolver_Resolve_CoercionFailureIsDecodeError verifies that a value the
// engine cannot convert to the field's type surfaces as a decode-domain
// error, distinguishable from connectivity problems.
func TestResolver_Resolve_CoercionFailureIsDecodeError(t *testing.T) {
	fetcher := &scriptedFetcher{pages: []paramstore.Page{
		page(nil, pparam("/demo/zar", "not-a-number")),
	}}
	r := paramstore.NewResolver(fetcher)

	var cfg demoConfig
	err := r.Resolve(context.Background(), "/demo", &cfg)

	require.Error(t, err)
	assert.True(t, paramstore.IsDecodeError(err))
	assert.False(t, paramstore.IsFetchError(err))
}

// TestResolver_Resolve_RequiredFieldMissingIsDecodeError verifies that the
// engine's required-field validation is propagated as a decode-domain error.
func TestResolver_Resolve_RequiredFieldMissingIsDecodeError(t *testing.T) {
	type strictConfig struct {
		Token string `env:"token,required"`
	}

	fetcher := &scriptedFetcher{pages: []paramstore.Page{
		page(nil, pparam("/demo/unrelated", "x")),
	}}
	r := paramstore.NewResolver(fetcher)

	var cfg strictConfig
	err := r.Resolve(context.Background(), "/demo", &cfg)

	require.Error(t, err)
	assert.True(t, paramstore.IsDecodeError(err))
}

// TestResolver_Resolve_IgnoresProcessEnvironment verifies that decoding reads
// only the folded map, never the real environment.
func TestResolver_Resolve_IgnoresProcessEnvironment(t *testing.T) {
	t.Setenv("foo", "from-process-env")

	fetcher := &scriptedFetcher{pages: []paramstore.Page{
		page(nil, pparam("/demo/bar", "kept")),
	}}
	r := paramstore.NewResolver(fetcher)

	var cfg mapConfig
	err := r.Resolve(context.Background(), "/demo", &cfg)

	require.NoError(t, err)
	assert.Empty(t, cfg.Foo, "value must come from the store, not the environment")
	assert.Equal(t, "kept", cfg.Bar)
}
