package handlers

import (
	"net/http"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/projection"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/services/syncer"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/dto"
	httperrors "github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/errors"
)

// SyncHandler exposes the engine's error slot and the explicit restart
// that recovers from a dead subscription.
type SyncHandler struct {
	engine *syncer.Engine
	proj   *projection.Store
}

func NewSyncHandler(engine *syncer.Engine, proj *projection.Store) *SyncHandler {
	return &SyncHandler{engine: engine, proj: proj}
}

func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil || h.proj == nil {
		writeInternal(w, "SYNC_ENGINE_UNAVAILABLE", "sync engine is unavailable")
		return
	}

	httperrors.Write(w, http.StatusOK, h.status())
}

func (h *SyncHandler) Restart(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil || h.proj == nil {
		writeInternal(w, "SYNC_ENGINE_UNAVAILABLE", "sync engine is unavailable")
		return
	}

	if err := h.engine.Restart(r.Context()); err != nil {
		writeBadGateway(w, "SYNC_RESTART_FAILED", "sync engine restart failed")
		return
	}
	httperrors.Write(w, http.StatusOK, h.status())
}

func (h *SyncHandler) status() dto.SyncStatusResponse {
	resp := dto.SyncStatusResponse{Running: h.engine.Running()}
	if err := h.proj.Err(); err != nil {
		resp.LastError = err.Error()
	}
	return resp
}
