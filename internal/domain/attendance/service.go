package attendance

import "context"

// AttendanceService defines ingestion and range queries over daily reports.
type AttendanceService interface {
	// Ingest validates and persists a batch of entries. Malformed man-day or
	// unit-price values are rejected here, never discovered downstream.
	Ingest(ctx context.Context, req BulkCreateRequest) ([]EntryResponse, error)

	// ListRange retrieves entries for an explicit date-range query.
	ListRange(ctx context.Context, query RangeQuery) (ListEntriesResponse, error)

	// DeleteEntry removes a mis-filed entry.
	DeleteEntry(ctx context.Context, id string) error
}
