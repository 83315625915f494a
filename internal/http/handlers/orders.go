package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ramidoush/Automatic-PO/internal/domain"
	"github.com/ramidoush/Automatic-PO/internal/http/middleware"
	"github.com/ramidoush/Automatic-PO/internal/logger"
	"github.com/ramidoush/Automatic-PO/internal/report"

	"github.com/gin-gonic/gin"
)

const pageTitle = "Happy Sweep PO Generator"

// orderRow is one table row of the index page, with its pre-built mailto link.
type orderRow struct {
	*domain.PurchaseOrder
	AmountText    string
	CreatedAtText string
	Mailto        string
}

// Index renders the whole page: add form, record table, export and email
// actions, delete control. State lives entirely in the store, so every render
// re-fetches the full record list.
func (h *Handler) Index(c *gin.Context) {
	data := gin.H{
		"Title":          pageTitle,
		"Notice":         c.Query("notice"),
		"Error":          c.Query("error"),
		"Today":          time.Now().Format("2006-01-02"),
		"UserNames":      h.Cfg.UserNames,
		"PaymentMethods": domain.PaymentMethods,
	}

	orders, err := h.Orders.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("failed to list purchase orders", "error", err)
		data["Error"] = "Database Connection Error: " + err.Error()
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	rows := make([]orderRow, 0, len(orders))
	for _, po := range orders {
		rows = append(rows, orderRow{
			PurchaseOrder: po,
			AmountText:    report.FormatAmount(po.Amount),
			CreatedAtText: po.CreatedAt.Format("2006-01-02 15:04:05"),
			Mailto:        report.MailtoURI(h.Cfg.Recipients, report.NewNotification(po)),
		})
	}

	data["Orders"] = rows
	if len(rows) > 0 {
		// Headline email button targets the most recently listed record; the
		// per-row links above let the operator pick any other one.
		data["LastMailto"] = rows[len(rows)-1].Mailto
	}

	c.HTML(http.StatusOK, "index.html", data)
}

// CreateOrder handles the add-form submit. Validation happens here, not in
// the store: empty name or non-positive amount never reaches the database.
func (h *Handler) CreateOrder(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("transaction_name"))
	amount, amountErr := strconv.ParseFloat(c.PostForm("amount"), 64)
	if name == "" || amountErr != nil || amount <= 0 {
		redirectWithError(c, "Please enter a valid transaction name and amount.")
		return
	}

	date := c.PostForm("transaction_date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		redirectWithError(c, "Please enter the transaction date as YYYY-MM-DD.")
		return
	}

	userName := c.PostForm("user_name")
	if !h.knownUser(userName) {
		redirectWithError(c, "Please select a known user name.")
		return
	}

	po := &domain.PurchaseOrder{
		TransactionDate: date,
		TransactionName: name,
		Amount:          amount,
		UserName:        userName,
		Notes:           c.PostForm("notes"),
		PaymentMethod:   domain.NormalizePaymentMethod(c.PostForm("payment_method")),
	}

	if err := h.Orders.Create(c.Request.Context(), po); err != nil {
		logger.Error("failed to add purchase order", "error", err)
		redirectWithError(c, "Error Adding PO: "+err.Error())
		return
	}

	middleware.OrdersCreated.Inc()
	logger.Info("purchase order added", "po_id", po.ID, "amount", po.Amount)
	redirectWithNotice(c, "Purchase Order Added Successfully!")
}

// DeleteOrder removes the selected record. Unknown ids delete nothing and
// still report success, matching the store's no-op semantics.
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.PostForm("po_id"), 10, 64)
	if err != nil {
		redirectWithError(c, "Please select a PO ID to delete.")
		return
	}

	if err := h.Orders.Delete(c.Request.Context(), id); err != nil {
		logger.Error("failed to delete purchase order", "po_id", id, "error", err)
		redirectWithError(c, "Error Deleting PO: "+err.Error())
		return
	}

	middleware.OrdersDeleted.Inc()
	logger.Info("purchase order deleted", "po_id", id)
	redirectWithNotice(c, fmt.Sprintf("Deleted PO ID: %d", id))
}

func (h *Handler) knownUser(name string) bool {
	for _, u := range h.Cfg.UserNames {
		if u == name {
			return true
		}
	}
	return false
}

func redirectWithNotice(c *gin.Context, msg string) {
	c.Redirect(http.StatusSeeOther, "/?notice="+url.QueryEscape(msg))
}

func redirectWithError(c *gin.Context, msg string) {
	c.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape(msg))
}
