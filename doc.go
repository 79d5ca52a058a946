// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package paramstore resolves a hierarchy of AWS Systems Manager Parameter
// Store values under a path prefix into a caller-defined struct.
//
// Applications that follow the 12-factor practice of keeping configuration
// outside the binary often outgrow plain environment variables and move their
// settings into Parameter Store under a prefixed hierarchy such as
// /sweet-app/prod. This package preserves the "declare a struct, get it
// populated" ergonomics of env-based config loading on top of that hierarchy:
// parameter names like /sweet-app/prod/db-pass become map keys like db-pass,
// and the resulting map is decoded into the target struct via its `env` tags
// using github.com/caarlos0/env.
//
// A minimal caller looks like this:
//
//	// aws ssm put-parameter --name /demo/foo --value bar            --type SecureString
//	// aws ssm put-parameter --name /demo/bar --value baz,boom,zoom  --type StringList
//	// aws ssm put-parameter --name /demo/zar --value 42             --type String
//	type Config struct {
//		Foo string   `env:"foo"`
//		Bar []string `env:"bar"`
//		Zar uint32   `env:"zar"`
//	}
//
//	cfg, err := paramstore.Resolve[Config](ctx, "/demo")
//
// [Resolve] uses the AWS default credential chain; the caller's credentials
// need the ssm:GetParametersByPath permission. For custom clients, retry
// policies, or tests, construct a [Resolver] over any [PageFetcher]
// implementation (see [NewSSMFetcherFromClient]).
//
// Every failure is reported as a [*Error] carrying a [Kind] that tells the
// caller whether the problem is remote (connectivity, permissions, throttling)
// or structural (the fetched values do not fit the target struct). No partial
// result is ever produced.
package paramstore
