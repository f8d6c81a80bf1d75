package services

import "testing"

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		minStock int
		want     StockStatus
	}{
		{"zero quantity is out of stock", 0, 10, StockStatusOut},
		{"negative quantity is out of stock", -3, 10, StockStatusOut},
		{"below minimum is low stock", 5, 10, StockStatusLow},
		{"exactly at minimum is low stock", 10, 10, StockStatusLow},
		{"above minimum is in stock", 50, 10, StockStatusIn},
		{"zero minimum with stock on hand", 1, 0, StockStatusIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStock(tt.quantity, tt.minStock); got != tt.want {
				t.Errorf("ClassifyStock(%d, %d) = %q, want %q", tt.quantity, tt.minStock, got, tt.want)
			}
		})
	}
}

func TestPaymentStatusLabel(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		label  string
	}{
		{PaymentStatusPaid, "Paid"},
		{PaymentStatusPending, "Pending"},
		{PaymentStatusOverdue, "Overdue"},
		{PaymentStatusCancelled, "Cancelled"},
		{PaymentStatus("partial"), "partial"}, // unknown values pass through
	}

	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.label {
			t.Errorf("Label(%q) = %q, want %q", tt.status, got, tt.label)
		}
	}
}

func TestPaymentStatusSeverity(t *testing.T) {
	tests := []struct {
		status   PaymentStatus
		severity string
	}{
		{PaymentStatusPaid, "success"},
		{PaymentStatusPending, "warning"},
		{PaymentStatusOverdue, "danger"},
		{PaymentStatusCancelled, "neutral"},
		{PaymentStatus("partial"), "neutral"},
	}

	for _, tt := range tests {
		if got := tt.status.Severity(); got != tt.severity {
			t.Errorf("Severity(%q) = %q, want %q", tt.status, got, tt.severity)
		}
	}
}
