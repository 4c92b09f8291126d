package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noren-ops/noren/internal/daily"
	"github.com/noren-ops/noren/internal/schema"
)

type fakeProbe struct {
	status schema.Status
	err    error
}

func (p fakeProbe) Check(context.Context) (schema.Status, error) { return p.status, p.err }

func serveDashboard(t *testing.T, svc *Service, probe SchemaChecker) Response {
	t.Helper()
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc, probe, nil)
	r := chi.NewRouter()
	handler.MountRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code, "dashboard read path never fails")

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestDashboardServesRealData(t *testing.T) {
	src := &fakeSources{
		dailies: map[string]daily.Record{
			"2026-08-30": {Date: testToday, Sales: 150000, FoodCost: 30000, BeverageCost: 12750, CustomerCount: 120},
		},
	}
	resp := serveDashboard(t, newTestService(src), fakeProbe{status: schema.Status{Ready: true}})

	assert.False(t, resp.IsUsingDefaultData)
	assert.Equal(t, int64(150000), resp.Data.DailyStats.Sales)
	assert.Empty(t, resp.Error)
}

func TestDashboardFallsBackOnEmptyStore(t *testing.T) {
	resp := serveDashboard(t, newTestService(&fakeSources{}), fakeProbe{status: schema.Status{Ready: true}})

	assert.True(t, resp.IsUsingDefaultData)
	assert.Equal(t, int64(150000), resp.Data.DailyStats.Sales, "sample dataset served")
	assert.Empty(t, resp.Error, "an empty store is not an error")
}

func TestDashboardFallsBackWhenSchemaMissing(t *testing.T) {
	resp := serveDashboard(t, newTestService(&fakeSources{}), fakeProbe{
		status: schema.Status{Missing: []string{"daily_data"}},
	})

	assert.True(t, resp.IsUsingDefaultData)
	assert.NotEmpty(t, resp.DatabaseStatus)
}

func TestDashboardFallsBackOnProbeError(t *testing.T) {
	resp := serveDashboard(t, newTestService(&fakeSources{}), fakeProbe{err: errors.New("dial tcp: refused")})

	assert.True(t, resp.IsUsingDefaultData)
	assert.NotEmpty(t, resp.Error)
}

func TestDashboardFallsBackOnLoadError(t *testing.T) {
	svc := NewService(fixedStore{}, failingDailies{}, &fakeSources{}, &fakeSources{}, &fakeSources{}, nil)
	svc.now = func() time.Time { return testToday }

	resp := serveDashboard(t, svc, fakeProbe{status: schema.Status{Ready: true}})
	assert.True(t, resp.IsUsingDefaultData)
	assert.NotEmpty(t, resp.Error)
}

type failingDailies struct{}

func (failingDailies) GetByDate(context.Context, uuid.UUID, time.Time) (*daily.Record, error) {
	return nil, errors.New("boom")
}

func (failingDailies) ListRange(context.Context, uuid.UUID, time.Time, time.Time) ([]daily.Record, error) {
	return nil, errors.New("boom")
}
