package services

// StockStatus is the three-way stock classification shown on inventory
// reports and dashboard badges.
type StockStatus string

const (
	StockStatusOut StockStatus = "Out of Stock"
	StockStatusLow StockStatus = "Low Stock"
	StockStatusIn  StockStatus = "In Stock"
)

// ClassifyStock maps a product's quantity against its minimum stock level.
func ClassifyStock(quantity, minStockLevel int) StockStatus {
	if quantity <= 0 {
		return StockStatusOut
	}
	if quantity <= minStockLevel {
		return StockStatusLow
	}
	return StockStatusIn
}

// PaymentStatus is the stored payment/fee state enumeration. Reports render
// its Label, never the raw stored value.
type PaymentStatus string

const (
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Label returns the display text for a payment status. Unknown stored values
// pass through unchanged rather than failing a whole report.
func (p PaymentStatus) Label() string {
	switch p {
	case PaymentStatusPaid:
		return "Paid"
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusOverdue:
		return "Overdue"
	case PaymentStatusCancelled:
		return "Cancelled"
	default:
		return string(p)
	}
}

// Severity returns the badge severity used by renderers for a payment status.
func (p PaymentStatus) Severity() string {
	switch p {
	case PaymentStatusPaid:
		return "success"
	case PaymentStatusPending:
		return "warning"
	case PaymentStatusOverdue:
		return "danger"
	default:
		return "neutral"
	}
}
