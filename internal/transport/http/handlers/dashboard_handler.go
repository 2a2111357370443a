package handlers

import (
	"net/http"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/model"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/projection"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/dto"
	httperrors "github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/errors"
)

// DashboardHandler serves the read-only projection: the report list, the
// derived stats and the community chart. It never touches the remote
// store.
type DashboardHandler struct {
	proj *projection.Store
}

func NewDashboardHandler(proj *projection.Store) *DashboardHandler {
	return &DashboardHandler{proj: proj}
}

func (h *DashboardHandler) Reports(w http.ResponseWriter, r *http.Request) {
	if h.proj == nil {
		writeInternal(w, "PROJECTION_UNAVAILABLE", "projection store is unavailable")
		return
	}

	reports := h.proj.Reports()
	items := make([]dto.ReportItem, 0, len(reports))
	for _, rep := range reports {
		items = append(items, reportItem(rep))
	}
	httperrors.Write(w, http.StatusOK, dto.ReportsResponse{Reports: items})
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.proj == nil {
		writeInternal(w, "PROJECTION_UNAVAILABLE", "projection store is unavailable")
		return
	}

	stats := h.proj.Stats()
	httperrors.Write(w, http.StatusOK, dto.StatsResponse{
		TotalUsers:      stats.TotalUsers,
		TotalReports:    stats.TotalReports,
		ResolvedReports: stats.ResolvedReports,
	})
}

func (h *DashboardHandler) CommunityChart(w http.ResponseWriter, r *http.Request) {
	if h.proj == nil {
		writeInternal(w, "PROJECTION_UNAVAILABLE", "projection store is unavailable")
		return
	}

	entries := h.proj.CommunityChart()
	items := make([]dto.ChartEntryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ChartEntryItem{Name: e.Name, Reports: e.Reports})
	}
	httperrors.Write(w, http.StatusOK, dto.CommunityChartResponse{Entries: items})
}

func reportItem(rep model.Report) dto.ReportItem {
	return dto.ReportItem{
		ID:          rep.ID,
		CreatedAt:   rep.CreatedAt,
		Description: rep.Description,
		Email:       rep.Email,
		Phone:       rep.Phone,
		Name:        rep.Name,
		MatterType:  rep.MatterType,
		UserID:      rep.UserID,
		Status:      string(rep.Status),
		Response:    rep.Response,
		ResolvedAt:  rep.ResolvedAt,
	}
}
