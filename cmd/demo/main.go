// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command demo resolves a Parameter Store hierarchy into a typed config and
// logs the result. Seed the hierarchy first:
//
//	aws ssm put-parameter --name /demo/foo --value bar            --type SecureString
//	aws ssm put-parameter --name /demo/bar --value baz,boom,zoom  --type StringList
//	aws ssm put-parameter --name /demo/zar --value 42             --type String
//
// then run it with the usual AWS environment (AWS_PROFILE, AWS_REGION):
//
//	go run ./cmd/demo -prefix /demo
package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	paramstore "github.com/MKhiriev/go-param-store"
	"github.com/MKhiriev/go-param-store/internal/logger"
)

type demoConfig struct {
	Foo string   `env:"foo"`
	Bar []string `env:"bar"`
	Zar uint32   `env:"zar"`
}

func main() {
	prefix := flag.String("prefix", "/demo", "path prefix to resolve")
	flag.Parse()

	log := logger.NewLogger("demo")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := paramstore.Resolve[demoConfig](ctx, *prefix, paramstore.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Str("prefix", *prefix).Msg("error resolving parameters")
	}

	log.Info().Str("prefix", *prefix).Any("config", cfg).Msg("resolved config")
}
