// Package sink abstracts the surface a composed nota document is presented
// on: a Chromium-based print pipeline in production, a plain file emitter for
// headless use.
package sink

import "context"

// Outcome is the terminal result of one presentation attempt.
type Outcome string

const (
	// OutcomeStarted means the document reached the surface and the print
	// pipeline took over.
	OutcomeStarted Outcome = "started"
	// OutcomeBlocked means the surface refused to open. The caller must show
	// a user-facing warning; a blocked attempt is never retried.
	OutcomeBlocked Outcome = "blocked"
)

// DocumentSink receives the concatenated page markup and the shared
// stylesheet of one print invocation. Present performs no retry: the flow
// either starts or is blocked, and the user re-triggers printing manually.
type DocumentSink interface {
	Present(ctx context.Context, markup, stylesheet string) (Outcome, error)
}
