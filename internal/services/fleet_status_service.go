package services

import (
	"context"
	"encoding/json"
	"time"

	"forklift-backend/internal/cache"
	"forklift-backend/internal/models"
	"forklift-backend/internal/timeutil"
)

// defectWindowDays is the trailing window for the pending defect count.
const defectWindowDays = 30

type FleetStatusService struct {
	ForkliftRepo   ForkliftStore
	InspectionRepo InspectionStore

	// now is injectable for tests; defaults to timeutil.Now
	now func() time.Time
}

func NewFleetStatusService(forkliftRepo ForkliftStore, inspectionRepo InspectionStore) *FleetStatusService {
	return &FleetStatusService{
		ForkliftRepo:   forkliftRepo,
		InspectionRepo: inspectionRepo,
		now:            timeutil.Now,
	}
}

// Summary builds the per-forklift rollup, ascending by unit number: latest
// inspection snapshot, whole days since it, and the defect count over the
// trailing 30-day window. Three aggregate queries for the whole fleet, no
// per-forklift round-trips. The result is served from cache when fresh.
func (s *FleetStatusService) Summary(ctx context.Context) ([]*models.ForkliftStatusSummary, error) {
	if data, ok := cache.GetFleetStatus(ctx); ok {
		var cached []*models.ForkliftStatusSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	summaries, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summaries); err == nil {
		cache.SetFleetStatus(ctx, data)
	}
	return summaries, nil
}

func (s *FleetStatusService) compute(ctx context.Context) ([]*models.ForkliftStatusSummary, error) {
	forklifts, err := s.ForkliftRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	latest, err := s.InspectionRepo.LatestByForklift(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	cutoff := now.AddDate(0, 0, -defectWindowDays)
	defects, err := s.InspectionRepo.DefectCountsSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.ForkliftStatusSummary, 0, len(forklifts))
	for _, forklift := range forklifts {
		summary := &models.ForkliftStatusSummary{
			Forklift:       forklift,
			PendingDefects: defects[forklift.ID],
		}
		if snap, ok := latest[forklift.ID]; ok {
			date := snap.InspectionDate
			status := snap.OverallStatus
			days := timeutil.WholeDaysSince(date, now)
			summary.LastInspectionDate = &date
			summary.LastInspectionStatus = &status
			summary.DaysSinceInspection = &days
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
