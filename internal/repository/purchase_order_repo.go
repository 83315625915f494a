package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ramidoush/Automatic-PO/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS purchase_orders (
	po_id INTEGER PRIMARY KEY AUTOINCREMENT,
	transaction_date TEXT NOT NULL,
	transaction_name TEXT NOT NULL,
	amount REAL NOT NULL,
	user_name TEXT NOT NULL,
	notes TEXT,
	payment_method TEXT DEFAULT 'Other',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

type PurchaseOrderRepository struct {
	db *sql.DB
}

func NewPurchaseOrderRepository(db *sql.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{db: db}
}

// EnsureSchema creates the purchase_orders table if it does not exist yet.
// Safe to call on every startup.
func (r *PurchaseOrderRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create purchase_orders table: %w", err)
	}
	return nil
}

// Create inserts a new purchase order, stamping CreatedAt and reading back
// the engine-assigned id. Field validation is the caller's job; the store
// only enforces the column constraints.
func (r *PurchaseOrderRepository) Create(ctx context.Context, po *domain.PurchaseOrder) error {
	po.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO purchase_orders (transaction_date, transaction_name, amount, user_name, notes, payment_method, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING po_id`,
		po.TransactionDate, po.TransactionName, po.Amount, po.UserName, po.Notes, po.PaymentMethod, po.CreatedAt,
	).Scan(&po.ID)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// ListAll returns every purchase order in insertion order (po_id ascending).
// The table is expected to stay small, so there is no pagination.
func (r *PurchaseOrderRepository) ListAll(ctx context.Context) ([]*domain.PurchaseOrder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT po_id, transaction_date, transaction_name, amount, user_name, notes, payment_method, created_at
		 FROM purchase_orders
		 ORDER BY po_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var result []*domain.PurchaseOrder
	for rows.Next() {
		var (
			po    domain.PurchaseOrder
			notes sql.NullString
		)
		if err := rows.Scan(&po.ID, &po.TransactionDate, &po.TransactionName, &po.Amount, &po.UserName, &notes, &po.PaymentMethod, &po.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		po.Notes = notes.String
		result = append(result, &po)
	}
	return result, rows.Err()
}

// Delete removes the purchase order with the given id. Deleting an id that
// does not exist is a silent no-op, not an error.
func (r *PurchaseOrderRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM purchase_orders WHERE po_id = ?`, id); err != nil {
		return fmt.Errorf("delete purchase order %d: %w", id, err)
	}
	return nil
}
