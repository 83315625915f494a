package domain

import "time"

// PurchaseOrder is one recorded purchase-order transaction.
// ID and CreatedAt are assigned by the store on insert and never change.
type PurchaseOrder struct {
	ID              int64         `db:"po_id" json:"po_id"`
	TransactionDate string        `db:"transaction_date" json:"transaction_date"` // YYYY-MM-DD
	TransactionName string        `db:"transaction_name" json:"transaction_name"`
	Amount          float64       `db:"amount" json:"amount"`
	UserName        string        `db:"user_name" json:"user_name"`
	Notes           string        `db:"notes" json:"notes,omitempty"`
	PaymentMethod   PaymentMethod `db:"payment_method" json:"payment_method"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
}

// PaymentMethod - how the purchase was paid for
type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "Transfer"
	PaymentCash     PaymentMethod = "Cash"
	PaymentCard     PaymentMethod = "Card"
	PaymentPayback  PaymentMethod = "Payback"
	PaymentOther    PaymentMethod = "Other"
)

// PaymentMethods lists every accepted payment method, in form order.
var PaymentMethods = []PaymentMethod{
	PaymentTransfer,
	PaymentCash,
	PaymentCard,
	PaymentPayback,
	PaymentOther,
}

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// NormalizePaymentMethod maps unknown values to PaymentOther, matching the
// column default in the store.
func NormalizePaymentMethod(s string) PaymentMethod {
	m := PaymentMethod(s)
	if !m.Valid() {
		return PaymentOther
	}
	return m
}
