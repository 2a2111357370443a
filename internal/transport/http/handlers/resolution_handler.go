package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/enums"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/services/resolution"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/store"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/dto"
	httperrors "github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/errors"
)

type ResolutionHandler struct {
	service *resolution.Service
}

func NewResolutionHandler(service *resolution.Service) *ResolutionHandler {
	return &ResolutionHandler{service: service}
}

// Respond runs the two-phase workflow. A notification failure after a
// persisted status change comes back as NOTIFICATION_FAILED so the caller
// can tell it apart from full success and from total failure.
func (h *ResolutionHandler) Respond(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "RESOLUTION_SERVICE_UNAVAILABLE", "resolution service is unavailable")
		return
	}

	reportID := chi.URLParam(r, "reportID")

	var req dto.RespondRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "malformed request body")
		return
	}

	result, err := h.service.Respond(r.Context(), reportID, enums.ReportStatus(req.CurrentStatus), req.Response, req.UserID)
	if err != nil {
		var notifErr *resolution.NotificationError
		switch {
		case errors.Is(err, resolution.ErrInvalidInput):
			writeBadRequest(w, "INVALID_REQUEST", "request validation failed")
		case errors.As(err, &notifErr):
			// Step A persisted; only the notification write was lost.
			writeBadGateway(w, "NOTIFICATION_FAILED", "status updated but user notification failed")
		case errors.Is(err, store.ErrPermission):
			writeForbidden(w, "PERMISSION_DENIED", "remote store rejected the status update")
		default:
			writeBadGateway(w, "STORE_UNAVAILABLE", "remote store is unreachable")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.RespondResponse{
		ReportID:      result.ReportID,
		Status:        string(result.Status),
		StatusApplied: result.StatusApplied,
		Notified:      result.Notified,
	})
}
