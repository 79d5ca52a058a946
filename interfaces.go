// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import "context"

//go:generate mockgen -source=interfaces.go -destination=internal/mock/page_fetcher_mock.go -package=mock

// Parameter is a single remote key/value entry as returned by the parameter
// store. Both fields are optional on the wire; entries missing either one are
// dropped during folding and never reach the target struct.
type Parameter struct {
	// Name is the full remote path of the parameter (e.g. "/demo/foo").
	Name *string

	// Value is the parameter's string value, decrypted by the store for
	// SecureString parameters.
	Value *string
}

// Page is one page of a paginated parameter listing.
type Page struct {
	// Parameters holds the entries of this page in the order the store
	// returned them.
	Parameters []Parameter

	// NextCursor is the continuation token for the next page. A nil or
	// empty-string cursor means the listing is exhausted; both spellings
	// terminate the traversal identically.
	NextCursor *string
}

// PageFetcher is the capability the resolver needs from a remote parameter
// store: fetch one page of parameters under a path prefix.
//
// Implementations must request recursive traversal of the hierarchy and
// decryption of secure values on every call; neither is caller-adjustable.
// Retry policy, timeouts, and page sizing also belong to the implementation —
// the resolver itself never retries and imposes no deadline of its own.
type PageFetcher interface {
	// FetchPage returns the page identified by cursor under pathPrefix.
	// A nil cursor requests the first page. The returned page's NextCursor
	// (when present and non-empty) identifies the following page.
	//
	// ctx cancellation must abort an in-flight request.
	FetchPage(ctx context.Context, pathPrefix string, cursor *string) (Page, error)
}
