// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-param-store/internal/logger"
)

// param is a shorthand constructor for a fully populated Parameter used only
// in tests.
func param(name, value string) Parameter {
	return Parameter{Name: &name, Value: &value}
}

// ─────────────────────────────────────────────────────────────────────────────
// fold — prefix stripping and last-write-wins semantics
// ─────────────────────────────────────────────────────────────────────────────

func TestFold_StripsPrefixAndSeparator(t *testing.T) {
	r := NewResolver(nil)

	flat, err := r.fold([]Parameter{param("/demo/foo", "bar")}, "/demo", logger.Nop())

	require.NoError(t, err)
	// prefix "/demo" plus separator: exactly 6 characters removed
	assert.Equal(t, map[string]string{"foo": "bar"}, flat)
}

func TestFold_NestedSegmentsKeepInnerSeparators(t *testing.T) {
	r := NewResolver(nil)

	flat, err := r.fold([]Parameter{param("/app/prod/db/password", "hunter2")}, "/app/prod", logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"db/password": "hunter2"}, flat)
}

func TestFold_LastWriteWins(t *testing.T) {
	r := NewResolver(nil)

	flat, err := r.fold([]Parameter{
		param("/demo/key", "first"),
		param("/demo/other", "kept"),
		param("/demo/key", "second"),
	}, "/demo", logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"key": "second", "other": "kept"}, flat)
}

func TestFold_SkipsParametersMissingNameOrValue(t *testing.T) {
	r := NewResolver(nil)
	value := "orphan"
	name := "/demo/no-value"

	flat, err := r.fold([]Parameter{
		{Name: nil, Value: &value},
		{Name: &name, Value: nil},
		{Name: nil, Value: nil},
		param("/demo/kept", "yes"),
	}, "/demo", logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"kept": "yes"}, flat)
}

func TestFold_EmptyInputYieldsEmptyMap(t *testing.T) {
	r := NewResolver(nil)

	flat, err := r.fold(nil, "/demo", logger.Nop())

	require.NoError(t, err)
	assert.Empty(t, flat)
}

// ─────────────────────────────────────────────────────────────────────────────
// fold — names outside the prefix
// ─────────────────────────────────────────────────────────────────────────────

func TestFold_SkipsMismatchedNamesByDefault(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		name      string
		paramName string
	}{
		{"DifferentPrefix", "/other/foo"},
		{"PrefixWithoutSeparator", "/demonstration/foo"},
		{"NameEqualsPrefix", "/demo"},
		{"NameIsPrefixPlusSeparator", "/demo/"},
		{"NameShorterThanPrefix", "/d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat, err := r.fold([]Parameter{
				param(tt.paramName, "ignored"),
				param("/demo/kept", "yes"),
			}, "/demo", logger.Nop())

			require.NoError(t, err)
			assert.Equal(t, map[string]string{"kept": "yes"}, flat)
		})
	}
}

func TestFold_StrictModeReportsMismatch(t *testing.T) {
	r := NewResolver(nil, WithStrictPrefix())

	_, err := r.fold([]Parameter{param("/other/foo", "x")}, "/demo", logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPrefixMismatch)
	assert.True(t, IsFetchError(err))
}

// ─────────────────────────────────────────────────────────────────────────────
// normalizePrefix
// ─────────────────────────────────────────────────────────────────────────────

func TestNormalizePrefix(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "Plain", in: "/demo", want: "/demo"},
		{name: "TrailingSeparatorTrimmed", in: "/demo/", want: "/demo"},
		{name: "Nested", in: "/sweet-app/prod", want: "/sweet-app/prod"},
		{name: "Empty", in: "", wantErr: ErrEmptyPrefix},
		{name: "SeparatorOnly", in: "/", wantErr: ErrEmptyPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePrefix(tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
