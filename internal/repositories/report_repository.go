package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Johnmalala/fedhaplus-sub001/internal/models"

	"github.com/google/uuid"
)

// ReportRepository lists the domain rows the printable reports are built
// from. Rows come back newest-first so the rendered tables are stable.
type ReportRepository interface {
	ListSales(ctx context.Context, businessID uuid.UUID) ([]models.SalesRow, error)
	ListFeePayments(ctx context.Context, businessID uuid.UUID) ([]models.FeePaymentRow, error)
	ListProducts(ctx context.Context, businessID uuid.UUID) ([]models.ProductRow, error)
}

type reportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

// ListSales returns the sales of a business for the sales report.
func (r *reportRepository) ListSales(ctx context.Context, businessID uuid.UUID) ([]models.SalesRow, error) {
	query := `SELECT created_at, customer_phone, payment_method, COALESCE(total_amount, amount, paid_amount, 0), status
	          FROM sales WHERE business_id = $1
	          ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying sales report rows for business %s: %v", ErrDatabaseError, businessID, err)
	}
	defer rows.Close()

	sales := []models.SalesRow{}
	for rows.Next() {
		var row models.SalesRow
		var customerPhone, paymentMethod sql.NullString
		if err := rows.Scan(&row.SoldAt, &customerPhone, &paymentMethod, &row.TotalAmount, &row.Status); err != nil {
			return nil, fmt.Errorf("%w: scanning sales report row: %v", ErrDatabaseError, err)
		}
		if customerPhone.Valid {
			row.CustomerPhone = &customerPhone.String
		}
		if paymentMethod.Valid {
			row.PaymentMethod = &paymentMethod.String
		}
		sales = append(sales, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sales report rows: %v", ErrDatabaseError, err)
	}
	return sales, nil
}

// ListFeePayments returns the fee payments of a school for the fee report,
// joined with the paying student.
func (r *reportRepository) ListFeePayments(ctx context.Context, businessID uuid.UUID) ([]models.FeePaymentRow, error) {
	query := `SELECT fp.paid_at, s.full_name, s.admission_no, fp.amount, fp.status
	          FROM fee_payments fp
	          JOIN students s ON fp.student_id = s.id
	          WHERE s.business_id = $1
	          ORDER BY fp.paid_at DESC`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying fee report rows for business %s: %v", ErrDatabaseError, businessID, err)
	}
	defer rows.Close()

	payments := []models.FeePaymentRow{}
	for rows.Next() {
		var row models.FeePaymentRow
		var admissionNo sql.NullString
		if err := rows.Scan(&row.PaidAt, &row.StudentName, &admissionNo, &row.Amount, &row.Status); err != nil {
			return nil, fmt.Errorf("%w: scanning fee report row: %v", ErrDatabaseError, err)
		}
		if admissionNo.Valid {
			row.AdmissionNo = &admissionNo.String
		}
		payments = append(payments, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating fee report rows: %v", ErrDatabaseError, err)
	}
	return payments, nil
}

// ListProducts returns the tracked products of a business for the inventory
// report.
func (r *reportRepository) ListProducts(ctx context.Context, businessID uuid.UUID) ([]models.ProductRow, error) {
	query := `SELECT name, sku, price, stock_quantity, min_stock_level
	          FROM products WHERE business_id = $1
	          ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying inventory report rows for business %s: %v", ErrDatabaseError, businessID, err)
	}
	defer rows.Close()

	products := []models.ProductRow{}
	for rows.Next() {
		var row models.ProductRow
		var sku sql.NullString
		if err := rows.Scan(&row.Name, &sku, &row.Price, &row.StockQuantity, &row.MinStockLevel); err != nil {
			return nil, fmt.Errorf("%w: scanning inventory report row: %v", ErrDatabaseError, err)
		}
		if sku.Valid {
			row.SKU = &sku.String
		}
		products = append(products, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating inventory report rows: %v", ErrDatabaseError, err)
	}
	return products, nil
}
