// Package report derives export artifacts from purchase-order records: the
// CSV download and the pre-filled notification email. Everything here is
// pure - no I/O, no store access.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/ramidoush/Automatic-PO/internal/domain"
)

// csvHeader fixes the export column order.
var csvHeader = []string{
	"transaction_date",
	"id",
	"transaction_name",
	"amount",
	"user_name",
	"payment_method",
	"notes",
	"created_at",
}

// ToCSV serializes all records into a UTF-8 CSV document with a header row,
// one row per record, columns in the fixed export order.
func ToCSV(orders []*domain.PurchaseOrder) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, po := range orders {
		row := []string{
			po.TransactionDate,
			strconv.FormatInt(po.ID, 10),
			po.TransactionName,
			strconv.FormatFloat(po.Amount, 'f', -1, 64),
			po.UserName,
			string(po.PaymentMethod),
			po.Notes,
			po.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row for PO %d: %w", po.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
