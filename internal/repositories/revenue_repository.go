package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Johnmalala/fedhaplus-sub001/internal/models"

	"github.com/google/uuid"
)

// RevenueRepository fetches raw revenue events for the stats aggregator.
// Each method covers one of the category-dependent collections; the rent and
// fee queries are scoped to the business through their tenant/student rows
// and restricted to paid records, matching how those verticals recognize
// revenue.
type RevenueRepository interface {
	FetchSales(ctx context.Context, businessID uuid.UUID) ([]models.RevenueRecord, error)
	FetchRentPayments(ctx context.Context, businessID uuid.UUID) ([]models.RevenueRecord, error)
	FetchFeePayments(ctx context.Context, businessID uuid.UUID) ([]models.RevenueRecord, error)
	FetchBookings(ctx context.Context, businessID uuid.UUID) ([]models.RevenueRecord, error)
	CountActiveTenants(ctx context.Context, businessID uuid.UUID) (int, error)
	CountActiveStudents(ctx context.Context, businessID uuid.UUID) (int, error)
}

type revenueRepository struct {
	db *sql.DB
}

// NewRevenueRepository creates a new instance of RevenueRepository.
func NewRevenueRepository(db *sql.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

// FetchSales returns all sale transactions of a business. Sales rows have
// historically carried the amount under different columns, so all three
// candidates are selected and normalization decides later.
func (r *revenueRepository) FetchSales(ctx context.Context, businessID uuid.UUID) ([]models.RevenueRecord, error) {
	query := `SELECT created_at, total_amount, amount, paid_amount, customer_phone
	          FROM sales WHERE business_id = $1`
	return r.queryRecords(ctx, query, "sales", businessID)
}

// FetchRentPayments returns paid rent payments for tenants of a business.
func (r *revenueRepository) FetchRentPayments(ctx context.Context, businessID uuid.UUID) ([]models.RevenueRecord, error) {
	query := `SELECT rp.paid_at, NULL::numeric, rp.amount, NULL::numeric, NULL::text
	          FROM rent_payments rp
	          JOIN tenants t ON rp.tenant_id = t.id
	          WHERE t.business_id = $1 AND rp.status = 'paid'`
	return r.queryRecords(ctx, query, "rent_payments", businessID)
}

// FetchFeePayments returns paid fee payments for students of a business.
func (r *revenueRepository) FetchFeePayments(ctx context.Context, businessID uuid.UUID) ([]models.RevenueRecord, error) {
	query := `SELECT fp.paid_at, NULL::numeric, fp.amount, NULL::numeric, NULL::text
	          FROM fee_payments fp
	          JOIN students s ON fp.student_id = s.id
	          WHERE s.business_id = $1 AND fp.status = 'paid'`
	return r.queryRecords(ctx, query, "fee_payments", businessID)
}

// FetchBookings returns booking records of a hotel or short-stay business.
func (r *revenueRepository) FetchBookings(ctx context.Context, businessID uuid.UUID) ([]models.RevenueRecord, error) {
	query := `SELECT created_at, NULL::numeric, NULL::numeric, paid_amount, guest_phone
	          FROM bookings WHERE business_id = $1`
	return r.queryRecords(ctx, query, "bookings", businessID)
}

// queryRecords runs a five-column revenue query (timestamp, total_amount,
// amount, paid_amount, customer ref) and scans the nullable columns into
// RevenueRecords.
func (r *revenueRepository) queryRecords(ctx context.Context, query, collection string, businessID uuid.UUID) ([]models.RevenueRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying %s for business %s: %v", ErrDatabaseError, collection, businessID, err)
	}
	defer rows.Close()

	records := []models.RevenueRecord{}
	for rows.Next() {
		var rec models.RevenueRecord
		var occurredAt sql.NullTime
		var totalAmount, amount, paidAmount sql.NullFloat64
		var customerRef sql.NullString

		if err := rows.Scan(&occurredAt, &totalAmount, &amount, &paidAmount, &customerRef); err != nil {
			return nil, fmt.Errorf("%w: scanning %s record: %v", ErrDatabaseError, collection, err)
		}
		if occurredAt.Valid {
			rec.OccurredAt = occurredAt.Time
		}
		if totalAmount.Valid {
			rec.TotalAmount = &totalAmount.Float64
		}
		if amount.Valid {
			rec.Amount = &amount.Float64
		}
		if paidAmount.Valid {
			rec.PaidAmount = &paidAmount.Float64
		}
		if customerRef.Valid {
			rec.CustomerRef = &customerRef.String
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating %s records: %v", ErrDatabaseError, collection, err)
	}
	return records, nil
}

// CountActiveTenants returns the number of active tenants of a business.
func (r *revenueRepository) CountActiveTenants(ctx context.Context, businessID uuid.UUID) (int, error) {
	return r.countActive(ctx, `SELECT COUNT(*) FROM tenants WHERE business_id = $1 AND status = 'active'`, "tenants", businessID)
}

// CountActiveStudents returns the number of active students of a business.
func (r *revenueRepository) CountActiveStudents(ctx context.Context, businessID uuid.UUID) (int, error) {
	return r.countActive(ctx, `SELECT COUNT(*) FROM students WHERE business_id = $1 AND status = 'active'`, "students", businessID)
}

func (r *revenueRepository) countActive(ctx context.Context, query, entity string, businessID uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, query, businessID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting active %s for business %s: %v", ErrDatabaseError, entity, businessID, err)
	}
	return count, nil
}
