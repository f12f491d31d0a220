// Package export builds the CSV downloads offered by the admin screens.
// The file is assembled as a literal comma-joined, quote-wrapped text blob;
// there is no server round-trip.
package export

import (
	"strconv"
	"strings"
	"time"

	"storefront/internal/order"
)

const placeholder = "N/A"

var orderHeader = []string{
	"Order ID", "Status", "Total", "Created At",
	"Expected Delivery", "Vendor", "Delivery Contact",
}

// Orders renders the order list as CSV. Missing optional fields come out
// as "N/A" rather than empty cells.
func Orders(records []order.Record) string {
	var b strings.Builder

	writeRow(&b, orderHeader)
	for _, r := range records {
		writeRow(&b, []string{
			orDefault(r.ID),
			orDefault(string(r.Status)),
			formatTotal(r.Total),
			formatDate(r.CreatedAt),
			orDefault(r.ExpectedDelivery),
			orDefault(r.VendorName),
			orDefault(r.DeliveryBoyPhone),
		})
	}

	return b.String()
}

// writeRow appends one quote-wrapped, comma-joined line. Embedded quotes
// are doubled so spreadsheet imports survive product names with inch
// marks.
func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func orDefault(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func formatTotal(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return t.Format("2006-01-02")
}
