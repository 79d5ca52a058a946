// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

type traversalState int

const (
	stateStart traversalState = iota
	stateContinue
	stateDone
)

// pageCursor is the three-state machine that drives a paginated traversal:
// Start (no token yet), Continue (token in hand), Done (no further fetches).
// Exactly one fetch is issued per non-terminal state; the terminal state
// issues none. Keeping the transitions in one value type makes termination
// and the empty-token edge case testable without any I/O.
type pageCursor struct {
	state traversalState
	tok   string
}

func startCursor() pageCursor {
	return pageCursor{state: stateStart}
}

// done reports whether the traversal has terminated.
func (c pageCursor) done() bool {
	return c.state == stateDone
}

// token returns the continuation token to send with the next fetch: nil in
// the Start state, the server-issued token in the Continue state. Must not be
// called in the Done state (the traversal loop never does).
func (c pageCursor) token() *string {
	if c.state == stateContinue {
		return &c.tok
	}
	return nil
}

// advance folds a response's next token into the following state. A nil or
// empty-string token terminates the traversal; the two are deliberately
// equivalent — some stores signal exhaustion with "" instead of omitting the
// token, and treating "" as a real token would fetch the first page forever.
func (c pageCursor) advance(next *string) pageCursor {
	if next == nil || *next == "" {
		return pageCursor{state: stateDone}
	}
	return pageCursor{state: stateContinue, tok: *next}
}
