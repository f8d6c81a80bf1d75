package models

import (
	"strings"
	"time"
)

// ReportTable is the tabular contract handed to the renderers (JSON, PDF,
// XLSX). Every row carries exactly len(Columns) cells, in column order.
type ReportTable struct {
	Title       string     `json:"title"`
	GeneratedAt time.Time  `json:"generated_at"`
	Columns     []string   `json:"columns"`
	Rows        [][]string `json:"rows"`
}

// Filename builds the download name for an export of this table, e.g.
// "sales_report_2026-08-29.pdf".
func (t *ReportTable) Filename(ext string) string {
	name := strings.ToLower(strings.ReplaceAll(t.Title, " ", "_"))
	return name + "_" + t.GeneratedAt.Format("2006-01-02") + "." + ext
}

// SalesRow is a single sale as listed on the printable sales report.
type SalesRow struct {
	SoldAt        time.Time `json:"sold_at" db:"created_at"`
	CustomerPhone *string   `json:"customer_phone,omitempty" db:"customer_phone"`
	PaymentMethod *string   `json:"payment_method,omitempty" db:"payment_method"`
	TotalAmount   float64   `json:"total_amount" db:"total_amount"`
	Status        string    `json:"status" db:"status"`
}

// FeePaymentRow is a single school fee payment on the fee report.
type FeePaymentRow struct {
	PaidAt      time.Time `json:"paid_at" db:"paid_at"`
	StudentName string    `json:"student_name" db:"student_name"`
	AdmissionNo *string   `json:"admission_no,omitempty" db:"admission_no"`
	Amount      float64   `json:"amount" db:"amount"`
	Status      string    `json:"status" db:"status"`
}

// ProductRow is a single product on the inventory report.
type ProductRow struct {
	Name          string  `json:"name" db:"name"`
	SKU           *string `json:"sku,omitempty" db:"sku"`
	Price         float64 `json:"price" db:"price"`
	StockQuantity int     `json:"stock_quantity" db:"stock_quantity"`
	MinStockLevel int     `json:"min_stock_level" db:"min_stock_level"`
}
