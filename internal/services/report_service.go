package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Johnmalala/fedhaplus-sub001/internal/models"
	"github.com/Johnmalala/fedhaplus-sub001/internal/repositories"

	"github.com/google/uuid"
)

const reportDateLayout = "2006-01-02"

// ReportService builds the printable report tables. Each table's rows carry
// exactly as many cells as its header, and status columns hold display
// labels, never stored enum values.
type ReportService interface {
	SalesReport(ctx context.Context, businessID uuid.UUID, now time.Time) (*models.ReportTable, error)
	FeeReport(ctx context.Context, businessID uuid.UUID, now time.Time) (*models.ReportTable, error)
	InventoryReport(ctx context.Context, businessID uuid.UUID, now time.Time) (*models.ReportTable, error)
}

type reportService struct {
	reportRepo repositories.ReportRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(rr repositories.ReportRepository) ReportService {
	return &reportService{reportRepo: rr}
}

// SalesReport lists a business's sales with payment state labels.
func (s *reportService) SalesReport(ctx context.Context, businessID uuid.UUID, now time.Time) (*models.ReportTable, error) {
	sales, err := s.reportRepo.ListSales(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("building sales report: %w", err)
	}

	table := &models.ReportTable{
		Title:       "Sales Report",
		GeneratedAt: now,
		Columns:     []string{"Date", "Customer", "Payment Method", "Amount", "Status"},
		Rows:        make([][]string, 0, len(sales)),
	}
	for _, sale := range sales {
		table.Rows = append(table.Rows, []string{
			sale.SoldAt.Format(reportDateLayout),
			orDash(sale.CustomerPhone),
			orDash(sale.PaymentMethod),
			formatAmount(sale.TotalAmount),
			PaymentStatus(sale.Status).Label(),
		})
	}
	return table, nil
}

// FeeReport lists a school's fee payments with the paying student.
func (s *reportService) FeeReport(ctx context.Context, businessID uuid.UUID, now time.Time) (*models.ReportTable, error) {
	payments, err := s.reportRepo.ListFeePayments(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("building fee report: %w", err)
	}

	table := &models.ReportTable{
		Title:       "Fee Report",
		GeneratedAt: now,
		Columns:     []string{"Date", "Student", "Admission No", "Amount", "Status"},
		Rows:        make([][]string, 0, len(payments)),
	}
	for _, payment := range payments {
		table.Rows = append(table.Rows, []string{
			payment.PaidAt.Format(reportDateLayout),
			payment.StudentName,
			orDash(payment.AdmissionNo),
			formatAmount(payment.Amount),
			PaymentStatus(payment.Status).Label(),
		})
	}
	return table, nil
}

// InventoryReport lists tracked products with their stock classification.
func (s *reportService) InventoryReport(ctx context.Context, businessID uuid.UUID, now time.Time) (*models.ReportTable, error) {
	products, err := s.reportRepo.ListProducts(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("building inventory report: %w", err)
	}

	table := &models.ReportTable{
		Title:       "Inventory Report",
		GeneratedAt: now,
		Columns:     []string{"Product", "SKU", "Price", "Stock", "Min Level", "Status"},
		Rows:        make([][]string, 0, len(products)),
	}
	for _, product := range products {
		table.Rows = append(table.Rows, []string{
			product.Name,
			orDash(product.SKU),
			formatAmount(product.Price),
			fmt.Sprintf("%d", product.StockQuantity),
			fmt.Sprintf("%d", product.MinStockLevel),
			string(ClassifyStock(product.StockQuantity, product.MinStockLevel)),
		})
	}
	return table, nil
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
