package models

import "time"

// RevenueRecord is the raw shape of a revenue event as fetched from one of
// the category-dependent collections (sales, rent_payments, fee_payments,
// bookings). Which amount field is populated depends on the collection, so
// all three are nullable; normalization picks the first non-nil one in the
// collection's documented priority order.
type RevenueRecord struct {
	OccurredAt  time.Time `json:"occurred_at" db:"occurred_at"`
	TotalAmount *float64  `json:"total_amount,omitempty" db:"total_amount"`
	Amount      *float64  `json:"amount,omitempty" db:"amount"`
	PaidAmount  *float64  `json:"paid_amount,omitempty" db:"paid_amount"`
	// CustomerRef is the customer/guest phone number, when the collection
	// carries one. Rent and fee collections identify payers through their
	// tenant/student rows instead and leave this nil.
	CustomerRef *string `json:"customer_ref,omitempty" db:"customer_ref"`
}

// StatsSummary holds the dashboard tile metrics for a single business.
// It is built fresh on every aggregation call and never persisted.
// MonthlyRevenue <= TotalRevenue and MonthlyTransactions <= TotalTransactions
// always hold, since the monthly window is a subset of all records.
type StatsSummary struct {
	TotalRevenue         float64 `json:"total_revenue"`
	MonthlyRevenue       float64 `json:"monthly_revenue"`
	TotalTransactions    int     `json:"total_transactions"`
	MonthlyTransactions  int     `json:"monthly_transactions"`
	TotalCustomers       int     `json:"total_customers"`
	RevenueGrowthPercent float64 `json:"revenue_growth_percent"`
}
