package handlers

import (
	"database/sql"

	"github.com/ramidoush/Automatic-PO/internal/config"
	"github.com/ramidoush/Automatic-PO/internal/repository"
)

type Handler struct {
	Cfg    *config.Config
	Orders *repository.PurchaseOrderRepository
}

func NewHandler(db *sql.DB, cfg *config.Config) *Handler {
	return &Handler{
		Cfg:    cfg,
		Orders: repository.NewPurchaseOrderRepository(db),
	}
}
