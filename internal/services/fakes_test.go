package services

import (
	"context"
	"sort"
	"time"

	"forklift-backend/internal/apperrors"
	"forklift-backend/internal/models"
	"forklift-backend/internal/repositories"
)

// In-memory fakes for the store interfaces. They mimic the semantics the
// real repositories get from Postgres: sequential ids, not-found lookups,
// unit-number ordering.

type fakeUserStore struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int]*models.User), nextID: 1}
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) error {
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) Get(ctx context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("user with id %d", id)
	}
	return u, nil
}

func (f *fakeUserStore) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeForkliftStore struct {
	forklifts map[int]*models.Forklift
	nextID    int
}

func newFakeForkliftStore() *fakeForkliftStore {
	return &fakeForkliftStore{forklifts: make(map[int]*models.Forklift), nextID: 1}
}

func (f *fakeForkliftStore) Create(ctx context.Context, fl *models.Forklift) error {
	fl.ID = f.nextID
	fl.CreatedAt = time.Now()
	f.nextID++
	f.forklifts[fl.ID] = fl
	return nil
}

func (f *fakeForkliftStore) Get(ctx context.Context, id int) (*models.Forklift, error) {
	fl, ok := f.forklifts[id]
	if !ok {
		return nil, apperrors.NotFound("forklift with id %d", id)
	}
	return fl, nil
}

func (f *fakeForkliftStore) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.forklifts[id]
	return ok, nil
}

func (f *fakeForkliftStore) List(ctx context.Context, status *models.ForkliftStatus) ([]*models.Forklift, error) {
	out := make([]*models.Forklift, 0, len(f.forklifts))
	for _, fl := range f.forklifts {
		if status != nil && fl.Status != *status {
			continue
		}
		out = append(out, fl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnitNumber < out[j].UnitNumber })
	return out, nil
}

func (f *fakeForkliftStore) UpdateStatus(ctx context.Context, id int, status models.ForkliftStatus) error {
	fl, ok := f.forklifts[id]
	if !ok {
		return apperrors.NotFound("forklift with id %d", id)
	}
	fl.Status = status
	return nil
}

type fakeChecklistStore struct {
	items  map[int]*models.ChecklistItem
	nextID int
}

func newFakeChecklistStore() *fakeChecklistStore {
	return &fakeChecklistStore{items: make(map[int]*models.ChecklistItem), nextID: 1}
}

func (f *fakeChecklistStore) Create(ctx context.Context, item *models.ChecklistItem) error {
	item.ID = f.nextID
	item.CreatedAt = time.Now()
	f.nextID++
	f.items[item.ID] = item
	return nil
}

func (f *fakeChecklistStore) Get(ctx context.Context, id int) (*models.ChecklistItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFound("checklist item with id %d", id)
	}
	return item, nil
}

func (f *fakeChecklistStore) List(ctx context.Context, activeOnly bool) ([]*models.ChecklistItem, error) {
	out := make([]*models.ChecklistItem, 0, len(f.items))
	for _, item := range f.items {
		if activeOnly && !item.IsActive {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeChecklistStore) ExistingIDs(ctx context.Context, ids []int) (map[int]bool, error) {
	found := make(map[int]bool)
	for _, id := range ids {
		if _, ok := f.items[id]; ok {
			found[id] = true
		}
	}
	return found, nil
}

func (f *fakeChecklistStore) Deactivate(ctx context.Context, id int) error {
	item, ok := f.items[id]
	if !ok {
		return apperrors.NotFound("checklist item with id %d", id)
	}
	item.IsActive = false
	return nil
}

type storedInspection struct {
	inspection models.DailyInspection
	results    []models.ChecklistResultInput
}

type defectEntry struct {
	forkliftID int
	date       time.Time
}

type fakeInspectionStore struct {
	inspections []storedInspection
	nextID      int

	latest  map[int]repositories.LatestSnapshot
	defects []defectEntry
}

func newFakeInspectionStore() *fakeInspectionStore {
	return &fakeInspectionStore{
		nextID: 1,
		latest: make(map[int]repositories.LatestSnapshot),
	}
}

func (f *fakeInspectionStore) CreateWithResults(ctx context.Context, inspection *models.DailyInspection, results []models.ChecklistResultInput) error {
	inspection.ID = f.nextID
	inspection.CreatedAt = time.Now()
	f.nextID++
	f.inspections = append(f.inspections, storedInspection{inspection: *inspection, results: results})
	return nil
}

func (f *fakeInspectionStore) History(ctx context.Context, filter models.HistoryFilter) ([]*models.DailyInspection, error) {
	var out []*models.DailyInspection
	for i := range f.inspections {
		ins := f.inspections[i].inspection
		if filter.ForkliftID != nil && ins.ForkliftID != *filter.ForkliftID {
			continue
		}
		if filter.StartDate != nil && ins.InspectionDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && ins.InspectionDate.After(*filter.EndDate) {
			continue
		}
		if filter.Status != nil && ins.OverallStatus != *filter.Status {
			continue
		}
		out = append(out, &ins)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InspectionDate.After(out[j].InspectionDate) })
	return out, nil
}

func (f *fakeInspectionStore) GetDetail(ctx context.Context, id int) (*models.InspectionDetail, error) {
	for _, stored := range f.inspections {
		if stored.inspection.ID == id {
			return &models.InspectionDetail{DailyInspection: stored.inspection}, nil
		}
	}
	return nil, nil
}

func (f *fakeInspectionStore) LatestByForklift(ctx context.Context) (map[int]repositories.LatestSnapshot, error) {
	return f.latest, nil
}

func (f *fakeInspectionStore) DefectCountsSince(ctx context.Context, cutoff time.Time) (map[int]int, error) {
	counts := make(map[int]int)
	for _, d := range f.defects {
		if !d.date.Before(cutoff) {
			counts[d.forkliftID]++
		}
	}
	return counts, nil
}
