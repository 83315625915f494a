package http

import (
	"database/sql"

	"github.com/ramidoush/Automatic-PO/internal/config"
	"github.com/ramidoush/Automatic-PO/internal/http/handlers"
	"github.com/ramidoush/Automatic-PO/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, db *sql.DB, cfg *config.Config) {
	r.SetHTMLTemplate(loadTemplates())
	r.Use(middleware.Metrics())

	h := handlers.NewHandler(db, cfg)
	healthHandler := handlers.NewHealthHandler(db)

	// Health checks
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// The page itself: one GET to render, one POST per mutation, PRG cycle
	r.GET("/", h.Index)
	r.POST("/orders", h.CreateOrder)
	r.POST("/orders/delete", h.DeleteOrder)
	r.GET("/orders.csv", h.ExportCSV)
}
