package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/enums"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/model"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/projection"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/dto"
)

func TestDashboardReports(t *testing.T) {
	proj := projection.New()
	resolvedAt := int64(1700000002000)
	proj.ReplaceReports([]model.Report{
		{ID: "a", Name: "Amina Uwase", MatterType: "Community", Status: enums.ReportStatusPending},
		{ID: "b", Name: "Eric Mugisha", MatterType: "Legal", Status: enums.ReportStatusResolved, ResolvedAt: &resolvedAt},
	})

	handler := NewDashboardHandler(proj)
	rec := httptest.NewRecorder()
	handler.Reports(rec, httptest.NewRequest(http.MethodGet, "/v1/reports", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var payload dto.ReportsResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Reports) != 2 {
		t.Fatalf("unexpected report count: %d", len(payload.Reports))
	}
	if payload.Reports[0].ID != "a" || payload.Reports[1].Status != "resolved" {
		t.Fatalf("unexpected payload: %+v", payload.Reports)
	}
	if payload.Reports[1].ResolvedAt == nil || *payload.Reports[1].ResolvedAt != resolvedAt {
		t.Fatalf("resolved_at missing from payload")
	}
}

func TestDashboardStatsAndChart(t *testing.T) {
	proj := projection.New()
	proj.ReplaceReports([]model.Report{
		{ID: "a", Name: "Amina Uwase", MatterType: "Community"},
		{ID: "b", Name: "Eric Mugisha", MatterType: "Legal"},
	})
	proj.SetTotalUsers(4)
	proj.SetResolvedReports(1)

	handler := NewDashboardHandler(proj)

	rec := httptest.NewRecorder()
	handler.Stats(rec, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
	var stats dto.StatsResponse
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalUsers != 4 || stats.TotalReports != 2 || stats.ResolvedReports != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	rec = httptest.NewRecorder()
	handler.CommunityChart(rec, httptest.NewRequest(http.MethodGet, "/v1/charts/community", nil))
	var chart dto.CommunityChartResponse
	if err := json.NewDecoder(rec.Body).Decode(&chart); err != nil {
		t.Fatalf("decode chart: %v", err)
	}
	if len(chart.Entries) != 1 || chart.Entries[0].Name != "Amina Uwase" || chart.Entries[0].Reports != 1 {
		t.Fatalf("unexpected chart: %+v", chart.Entries)
	}
}

func TestDashboardWithoutProjection(t *testing.T) {
	handler := NewDashboardHandler(nil)
	rec := httptest.NewRecorder()
	handler.Stats(rec, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
