package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	modsvc "github.com/Derrick-MUGISHA/Admin-Dashboard/internal/services/moderation"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/store"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/dto"
	httperrors "github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/errors"
)

type ModerationHandler struct {
	service *modsvc.Service
}

func NewModerationHandler(service *modsvc.Service) *ModerationHandler {
	return &ModerationHandler{service: service}
}

func (h *ModerationHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "MODERATION_SERVICE_UNAVAILABLE", "moderation service is unavailable")
		return
	}

	userID := chi.URLParam(r, "userID")
	if err := h.service.BlockUser(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, modsvc.ErrInvalidInput):
			writeBadRequest(w, "INVALID_REQUEST", "user id is required")
		case errors.Is(err, store.ErrPermission):
			writeForbidden(w, "PERMISSION_DENIED", "remote store rejected the block")
		default:
			writeBadGateway(w, "STORE_UNAVAILABLE", "remote store is unreachable")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.BlockUserResponse{OK: true})
}
