package http

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ramidoush/Automatic-PO/internal/config"
	"github.com/ramidoush/Automatic-PO/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestApp(t *testing.T) (*gin.Engine, *repository.PurchaseOrderRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "purchase_orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	repo := repository.NewPurchaseOrderRepository(database)
	require.NoError(t, repo.EnsureSchema(context.Background()))

	cfg := &config.Config{
		UserNames:  []string{"Rami", "Tariq", "Ricky", "New Admin"},
		Recipients: []string{"po@example.com"},
	}

	r := gin.New()
	RegisterRoutes(r, database, cfg)
	return r, repo
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addForm(name, amount string) url.Values {
	return url.Values{
		"transaction_date": {"2024-01-01"},
		"transaction_name": {name},
		"amount":           {amount},
		"user_name":        {"Rami"},
		"notes":            {""},
		"payment_method":   {"Cash"},
	}
}

func TestAddPurchaseOrderFlow(t *testing.T) {
	r, repo := newTestApp(t)

	w := postForm(r, "/orders", addForm("Cleaning Supplies", "150.00"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "notice=")

	orders, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, "Cleaning Supplies", orders[0].TransactionName)
	assert.Equal(t, 150.00, orders[0].Amount)
	assert.Equal(t, "Rami", orders[0].UserName)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	r, repo := newTestApp(t)

	cases := map[string]url.Values{
		"empty name":      addForm("", "150.00"),
		"zero amount":     addForm("Supplies", "0"),
		"negative amount": addForm("Supplies", "-5"),
		"bad amount":      addForm("Supplies", "abc"),
	}

	for label, form := range cases {
		w := postForm(r, "/orders", form)
		require.Equal(t, http.StatusSeeOther, w.Code, label)
		assert.Contains(t, w.Header().Get("Location"), "error=", label)
	}

	orders, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders, "invalid submissions must not reach the store")
}

func TestAddRejectsUnknownUser(t *testing.T) {
	r, repo := newTestApp(t)

	form := addForm("Supplies", "10")
	form.Set("user_name", "Mallory")

	w := postForm(r, "/orders", form)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "error=")

	orders, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUnknownPaymentMethodFallsBackToOther(t *testing.T) {
	r, repo := newTestApp(t)

	form := addForm("Supplies", "10")
	form.Set("payment_method", "Barter")

	w := postForm(r, "/orders", form)
	require.Equal(t, http.StatusSeeOther, w.Code)

	orders, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Other", string(orders[0].PaymentMethod))
}

func TestDeleteFlow(t *testing.T) {
	r, repo := newTestApp(t)
	ctx := context.Background()

	postForm(r, "/orders", addForm("First", "10"))
	postForm(r, "/orders", addForm("Second", "20"))

	w := postForm(r, "/orders/delete", url.Values{"po_id": {"1"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), url.QueryEscape("Deleted PO ID: 1"))

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, "Second", orders[0].TransactionName)
}

func TestDeleteUnknownIDKeepsTable(t *testing.T) {
	r, repo := newTestApp(t)

	postForm(r, "/orders", addForm("Only", "10"))

	w := postForm(r, "/orders/delete", url.Values{"po_id": {"42"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "notice=")

	orders, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestIndexEmptyState(t *testing.T) {
	r, _ := newTestApp(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No purchase orders available.")
}

func TestIndexRendersTableAndActions(t *testing.T) {
	r, _ := newTestApp(t)

	postForm(r, "/orders", addForm("Cleaning Supplies", "1234.5"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Cleaning Supplies")
	assert.Contains(t, body, "1,234.50")
	assert.Contains(t, body, "Download CSV")
	assert.Contains(t, body, "mailto:po@example.com")
	assert.Contains(t, body, "Delete Selected PO")
}

func TestExportCSV(t *testing.T) {
	r, _ := newTestApp(t)

	postForm(r, "/orders", addForm("First", "10"))
	postForm(r, "/orders", addForm("Second", "20"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders.csv", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "purchase_orders.csv")

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "transaction_date,id,transaction_name,amount,user_name,payment_method,notes,created_at", lines[0])
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestApp(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
