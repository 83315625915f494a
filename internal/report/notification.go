package report

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ramidoush/Automatic-PO/internal/domain"
)

// Notification is a pre-filled email summarizing one purchase order. It is
// handed to the operator's own mail client via a mailto link; nothing is
// ever sent by this application.
type Notification struct {
	Subject string
	Body    string
}

// NewNotification renders the notification for a single record.
func NewNotification(po *domain.PurchaseOrder) Notification {
	subject := fmt.Sprintf("PO-%04d: %s - AED %s", po.ID, po.TransactionName, FormatAmount(po.Amount))

	var b strings.Builder
	fmt.Fprintf(&b, "Purchase Order (PO-%04d)\n\n", po.ID)
	fmt.Fprintf(&b, "Transaction Date: %s\n", po.TransactionDate)
	fmt.Fprintf(&b, "Transaction Name: %s\n", po.TransactionName)
	fmt.Fprintf(&b, "Amount: AED %s\n", strconv.FormatFloat(po.Amount, 'f', -1, 64))
	fmt.Fprintf(&b, "User: %s\n", po.UserName)
	fmt.Fprintf(&b, "Payment Method: %s\n", po.PaymentMethod)
	fmt.Fprintf(&b, "Notes: %s\n", po.Notes)
	fmt.Fprintf(&b, "Created At: %s\n", po.CreatedAt.Format("2006-01-02 15:04:05"))

	return Notification{Subject: subject, Body: b.String()}
}

// MailtoURI builds the mailto link for the notification: comma-separated
// recipients, percent-escaped subject and body.
func MailtoURI(recipients []string, n Notification) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		strings.Join(recipients, ","),
		escape(n.Subject),
		escape(n.Body),
	)
}

// escape percent-encodes a mailto component. Spaces must become %20, not the
// '+' that QueryEscape produces.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FormatAmount renders an amount with a thousands separator and two decimal
// places, e.g. 1234.5 -> "1,234.50".
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + b.String() + "." + fracPart
}
