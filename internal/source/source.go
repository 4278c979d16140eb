// Package source defines the Source interface and line inputs for the CLI.
package source

import (
	"context"

	"github.com/Geun-Oh/qlog/internal/entry"
)

// Source reads raw lines from an input and emits LogEntry values on a
// channel. Entries are emitted at LevelMessage; severity detection is the
// consumer's concern. Implementations must close the returned channel when
// the source is exhausted or the context is cancelled.
type Source interface {
	// Start begins reading from the source. The returned channel receives
	// entries until the source is exhausted or ctx is cancelled.
	// The implementation must close the channel when done.
	Start(ctx context.Context) (<-chan entry.LogEntry, error)

	// Name returns a human-readable identifier for this source.
	Name() string
}
