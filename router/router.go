package router

import (
	"widgetbrain/config"
	"widgetbrain/controllers"
	"widgetbrain/logger"
	"widgetbrain/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires the single append endpoint. Every path reaches it: cfg.RoutePath is
// registered explicitly and everything else falls through NoRoute, so method gating
// lives in the controller.
func Initialize(r *gin.Engine, cfg config.Configuration, ctl *controllers.ContextController, log *logger.Logger) {
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(middleware.AttachRequestIDs())
	r.Use(Logger(log))
	r.Use(gin.CustomRecovery(controllers.RecoverJSON))
	r.Use(middleware.CORSMiddleware())

	path := cfg.RoutePath
	if path == "" {
		path = "/"
	}
	r.Any(path, ctl.Handle)
	r.NoRoute(ctl.Handle)

	log.Info("Routes initialized", "path", path)
}
