// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/smithy-go"
	"github.com/sethvargo/go-retry"
)

// SSMFetcher implements [PageFetcher] over the AWS Systems Manager
// GetParametersByPath API. Every request asks for recursive traversal of the
// hierarchy and decryption of SecureString values; these are fixed properties
// of the capability, not options.
type SSMFetcher struct {
	client     ssm.GetParametersByPathAPIClient
	maxResults *int32
	maxRetries uint64
	retryBase  time.Duration
}

// SSMOption configures an [SSMFetcher].
type SSMOption func(*SSMFetcher)

// WithMaxResults caps the number of parameters per page. SSM accepts values
// between 1 and 10; by default the service chooses. Smaller pages bound the
// fetcher's per-call memory, at the cost of more round trips.
func WithMaxResults(n int32) SSMOption {
	return func(f *SSMFetcher) {
		f.maxResults = aws.Int32(n)
	}
}

// WithRetries enables up to maxRetries retries with fibonacci backoff
// starting at base for failures the SSM API reports as transient (throttling,
// internal service errors). Non-transient failures are never retried. The
// default is zero retries: by contract the resolver never retries either, so
// without this option every failure surfaces immediately.
func WithRetries(maxRetries uint64, base time.Duration) SSMOption {
	return func(f *SSMFetcher) {
		f.maxRetries = maxRetries
		f.retryBase = base
	}
}

// NewSSMFetcher constructs an SSMFetcher over a client built from the AWS
// default credential chain. The credentials need ssm:GetParametersByPath on
// the prefixes being resolved.
func NewSSMFetcher(ctx context.Context, opts ...SSMOption) (*SSMFetcher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS configuration: %w", err)
	}

	return NewSSMFetcherFromClient(ssm.NewFromConfig(cfg), opts...), nil
}

// NewSSMFetcherFromClient constructs an SSMFetcher over a caller-supplied
// client. Useful for custom endpoints, pre-built aws.Config values, and
// tests.
func NewSSMFetcherFromClient(client ssm.GetParametersByPathAPIClient, opts ...SSMOption) *SSMFetcher {
	f := &SSMFetcher{
		client:    client,
		retryBase: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// FetchPage implements [PageFetcher].
func (f *SSMFetcher) FetchPage(ctx context.Context, pathPrefix string, cursor *string) (Page, error) {
	input := &ssm.GetParametersByPathInput{
		Path:           aws.String(pathPrefix),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
		NextToken:      cursor,
		MaxResults:     f.maxResults,
	}

	out, err := f.getPage(ctx, input)
	if err != nil {
		return Page{}, fmt.Errorf("error fetching parameters by path %q: %w", pathPrefix, err)
	}

	page := Page{
		Parameters: make([]Parameter, 0, len(out.Parameters)),
		NextCursor: out.NextToken,
	}
	for _, p := range out.Parameters {
		page.Parameters = append(page.Parameters, Parameter{Name: p.Name, Value: p.Value})
	}

	return page, nil
}

func (f *SSMFetcher) getPage(ctx context.Context, input *ssm.GetParametersByPathInput) (*ssm.GetParametersByPathOutput, error) {
	if f.maxRetries == 0 {
		return f.client.GetParametersByPath(ctx, input)
	}

	backoff := retry.WithMaxRetries(f.maxRetries, retry.NewFibonacci(f.retryBase))

	var out *ssm.GetParametersByPathOutput
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var callErr error
		out, callErr = f.client.GetParametersByPath(ctx, input)
		if callErr != nil && classifySSMError(callErr) == retryable {
			return retry.RetryableError(callErr)
		}

		return callErr
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// errorClassification is the result of [classifySSMError]: whether a failed
// SSM call may succeed if attempted again.
type errorClassification int

const (
	// nonRetryable is the default for unrecognised errors, validation
	// failures, and permission problems.
	nonRetryable errorClassification = iota

	// retryable marks transient service-side conditions.
	retryable
)

// classifySSMError maps an SSM API error to an [errorClassification] by its
// smithy error code. Anything that is not recognisably transient is treated
// as non-retryable.
func classifySSMError(err error) errorClassification {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nonRetryable
	}

	switch apiErr.ErrorCode() {
	case "ThrottlingException", "InternalServerError", "ServiceUnavailable":
		return retryable
	default:
		return nonRetryable
	}
}
