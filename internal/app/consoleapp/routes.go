package consoleapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/config"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/projection"
	modsvc "github.com/Derrick-MUGISHA/Admin-Dashboard/internal/services/moderation"
	resolutionsvc "github.com/Derrick-MUGISHA/Admin-Dashboard/internal/services/resolution"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/services/syncer"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/transport/http/handlers"
)

type Dependencies struct {
	Projection        *projection.Store
	SyncEngine        *syncer.Engine
	ResolutionService *resolutionsvc.Service
	ModerationService *modsvc.Service
	Logger            *zap.Logger
	Config            config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	dashboardHandler := handlers.NewDashboardHandler(deps.Projection)
	resolutionHandler := handlers.NewResolutionHandler(deps.ResolutionService)
	moderationHandler := handlers.NewModerationHandler(deps.ModerationService)
	syncHandler := handlers.NewSyncHandler(deps.SyncEngine, deps.Projection)

	r.Get("/health", healthHandler.Handle)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/reports", dashboardHandler.Reports)
		r.Get("/stats", dashboardHandler.Stats)
		r.Get("/charts/community", dashboardHandler.CommunityChart)

		r.Post("/reports/{reportID}/respond", resolutionHandler.Respond)
		r.Post("/users/{userID}/block", moderationHandler.BlockUser)

		r.Get("/sync", syncHandler.Status)
		r.Post("/sync/restart", syncHandler.Restart)
	})
}
