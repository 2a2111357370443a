package handlers

import (
	"net/http"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/dto"
	httperrors "github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/errors"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	httperrors.Write(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
