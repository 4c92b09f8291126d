package training

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	records map[uuid.UUID]Record
	history []CertificationEntry
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[uuid.UUID]Record)}
}

func (f *fakeRepo) Create(_ context.Context, rec Record) (Record, error) {
	rec.ID = uuid.New()
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeRepo) Update(_ context.Context, rec Record) (Record, error) {
	existing, ok := f.records[rec.ID]
	if !ok {
		return Record{}, ErrNotFound
	}
	rec.StaffID = existing.StaffID
	rec.SkillName = existing.SkillName
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (f *fakeRepo) ListByStaff(_ context.Context, staffID uuid.UUID) ([]Record, error) {
	var out []Record
	for _, rec := range f.records {
		if rec.StaffID == staffID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRepo) CertificationHistory(context.Context, uuid.UUID) ([]CertificationEntry, error) {
	return f.history, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.records[id]; !ok {
		return ErrNotFound
	}
	delete(f.records, id)
	return nil
}

type fixedStore struct{ id uuid.UUID }

func (s fixedStore) Resolve(context.Context) uuid.UUID { return s.id }

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo, fixedStore{id: uuid.New()}, nil)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestAddAutoCertifiesAtFullProgress(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	rec, err := svc.Add(context.Background(), AddRequest{
		StaffID:   uuid.New().String(),
		SkillName: "衛生管理",
		Progress:  100,
	})
	require.NoError(t, err)

	assert.True(t, rec.Certified, "full progress certifies without touching the toggle")
	require.NotNil(t, rec.CertificationDate)
	assert.Equal(t, "2026-08-30", rec.CertificationDate.Format("2006-01-02"))
}

func TestAddCertifiedWithoutDateGetsToday(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	rec, err := svc.Add(context.Background(), AddRequest{
		StaffID:   uuid.New().String(),
		SkillName: "接客基礎",
		Progress:  80,
		Certified: true,
	})
	require.NoError(t, err)

	assert.True(t, rec.Certified)
	require.NotNil(t, rec.CertificationDate)
	assert.Equal(t, "2026-08-30", rec.CertificationDate.Format("2006-01-02"))
}

func TestAddKeepsSuppliedCertificationDate(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	date := "2026-06-15"
	rec, err := svc.Add(context.Background(), AddRequest{
		StaffID:           uuid.New().String(),
		SkillName:         "仕込み",
		Progress:          100,
		CertificationDate: &date,
	})
	require.NoError(t, err)
	require.NotNil(t, rec.CertificationDate)
	assert.Equal(t, date, rec.CertificationDate.Format("2006-01-02"))
}

func TestUpdateBelowFullProgressStaysUncertified(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	rec, err := svc.Add(context.Background(), AddRequest{
		StaffID:   uuid.New().String(),
		SkillName: "レジ操作",
		Progress:  40,
	})
	require.NoError(t, err)
	assert.False(t, rec.Certified)
	assert.Nil(t, rec.CertificationDate)

	updated, err := svc.Update(context.Background(), rec.ID, UpdateRequest{Progress: 60})
	require.NoError(t, err)
	assert.False(t, updated.Certified)
	assert.Nil(t, updated.CertificationDate)
}

func TestOverallProgressMean(t *testing.T) {
	records := []Record{{Progress: 100}, {Progress: 50}, {Progress: 0}}
	assert.Equal(t, 50, OverallProgress(records))
	assert.Equal(t, 0, OverallProgress(nil))
	// rounding, not truncation
	assert.Equal(t, 67, OverallProgress([]Record{{Progress: 100}, {Progress: 100}, {Progress: 0}}))
}

func TestDeleteOnlyRecordResetsProgress(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	staffID := uuid.New()

	rec, err := svc.Add(context.Background(), AddRequest{
		StaffID:   staffID.String(),
		SkillName: "盛り付け",
		Progress:  70,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), rec.ID))

	view, err := svc.ListForStaff(context.Background(), staffID)
	require.NoError(t, err)
	assert.Empty(t, view.Skills)
	assert.Zero(t, view.OverallProgress)
}

func TestSkillStatus(t *testing.T) {
	assert.Equal(t, StatusCertified, Record{Certified: true}.Status())
	assert.Equal(t, StatusInProgress, Record{Progress: 10}.Status())
	assert.Equal(t, StatusNotStarted, Record{}.Status())
}
