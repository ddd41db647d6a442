package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/attendance"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/registry"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	entrySource attendance.EntrySource
	siteRepo    registry.SiteRepository
}

func NewAttendanceService(
	entrySource attendance.EntrySource,
	siteRepo registry.SiteRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		entrySource: entrySource,
		siteRepo:    siteRepo,
	}
}

// Ingest implements attendance.AttendanceService. All numeric validation
// happens here; entries that reach the store are well formed.
func (s *AttendanceServiceImpl) Ingest(ctx context.Context, req attendance.BulkCreateRequest) ([]attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Resolve denormalized site names once per distinct site.
	siteNames := make(map[string]string)
	for _, e := range req.Entries {
		if _, ok := siteNames[e.SiteID]; ok {
			continue
		}
		site, err := s.siteRepo.GetByID(ctx, e.SiteID)
		if err != nil {
			return nil, err
		}
		siteNames[e.SiteID] = site.Name
	}

	entries := make([]attendance.Entry, 0, len(req.Entries))
	missingID := 0
	for _, e := range req.Entries {
		workDate, _ := time.Parse("2006-01-02", e.WorkDate)
		manDay, _ := decimal.NewFromString(e.ManDay)

		if e.WorkerID == nil || *e.WorkerID == "" {
			missingID++
		}

		entries = append(entries, attendance.Entry{
			ID:         uuid.NewString(),
			WorkDate:   workDate,
			SiteID:     e.SiteID,
			SiteName:   siteNames[e.SiteID],
			WorkerID:   e.WorkerID,
			WorkerName: e.WorkerName,
			TeamName:   e.TeamName,
			Role:       e.Role,
			ManDay:     manDay,
			UnitPrice:  e.UnitPrice,
		})
	}

	if missingID > 0 {
		// Data-quality condition, not an error: legacy reports still arrive
		// without stable worker ids.
		slog.Warn("ingesting attendance entries without worker id", slog.Int("count", missingID))
	}

	created, err := s.entrySource.CreateBatch(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest attendance entries: %w", err)
	}

	result := make([]attendance.EntryResponse, 0, len(created))
	for _, e := range created {
		result = append(result, mapEntryResponse(e))
	}
	return result, nil
}

// ListRange implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRange(ctx context.Context, query attendance.RangeQuery) (attendance.ListEntriesResponse, error) {
	if err := query.Validate(); err != nil {
		return attendance.ListEntriesResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", query.StartDate)
	end, _ := time.Parse("2006-01-02", query.EndDate)

	entries, err := s.entrySource.FetchRange(ctx, start, end, query.SiteID, query.WorkerID)
	if err != nil {
		return attendance.ListEntriesResponse{}, fmt.Errorf("failed to fetch attendance entries: %w", err)
	}

	response := attendance.ListEntriesResponse{
		Data:    []attendance.EntryResponse{},
		HasData: len(entries) > 0,
	}
	for _, e := range entries {
		response.Data = append(response.Data, mapEntryResponse(e))
	}

	return response, nil
}

// DeleteEntry implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.entrySource.Delete(ctx, id)
}

func mapEntryResponse(e attendance.Entry) attendance.EntryResponse {
	return attendance.EntryResponse{
		ID:         e.ID,
		WorkDate:   e.WorkDate.Format("2006-01-02"),
		SiteID:     e.SiteID,
		SiteName:   e.SiteName,
		WorkerID:   e.WorkerID,
		WorkerName: e.WorkerName,
		TeamName:   e.TeamName,
		Role:       e.Role,
		ManDay:     e.ManDay.String(),
		UnitPrice:  e.UnitPrice,
		Amount:     e.Amount().String(),
	}
}
