package handlers

import (
	"net/http"

	"github.com/ramidoush/Automatic-PO/internal/logger"
	"github.com/ramidoush/Automatic-PO/internal/report"

	"github.com/gin-gonic/gin"
)

// ExportCSV streams the whole record set as a downloadable CSV file.
func (h *Handler) ExportCSV(c *gin.Context) {
	orders, err := h.Orders.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("failed to list purchase orders for export", "error", err)
		redirectWithError(c, "Database Connection Error: "+err.Error())
		return
	}

	body, err := report.ToCSV(orders)
	if err != nil {
		logger.Error("failed to render csv export", "error", err)
		redirectWithError(c, "Error Exporting CSV: "+err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="purchase_orders.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}
