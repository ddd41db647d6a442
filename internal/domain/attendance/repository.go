package attendance

import (
	"context"
	"time"
)

// EntrySource is the attendance store contract. The engine consumes it as an
// external collaborator: a failed fetch propagates as an error, an empty
// result is a valid outcome.
type EntrySource interface {
	// Create persists a single entry.
	Create(ctx context.Context, entry Entry) (Entry, error)

	// CreateBatch persists a daily report's worth of entries atomically.
	CreateBatch(ctx context.Context, entries []Entry) ([]Entry, error)

	// GetByID retrieves a single entry.
	GetByID(ctx context.Context, id string) (Entry, error)

	// FetchRange retrieves entries with work_date in [start, end], optionally
	// restricted to one site and/or one worker.
	FetchRange(ctx context.Context, start, end time.Time, siteID, workerID *string) ([]Entry, error)

	// Delete removes an entry (mis-filed report correction).
	Delete(ctx context.Context, id string) error
}
