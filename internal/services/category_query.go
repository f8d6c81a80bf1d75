package services

import (
	"github.com/Johnmalala/fedhaplus-sub001/internal/models"
)

// RevenueCollection names the collection revenue events are read from for a
// given business type.
type RevenueCollection string

const (
	CollectionSales        RevenueCollection = "sales"
	CollectionRentPayments RevenueCollection = "rent_payments"
	CollectionFeePayments  RevenueCollection = "fee_payments"
	CollectionBookings     RevenueCollection = "bookings"
)

// AmountField names a candidate monetary field on a RevenueRecord.
type AmountField string

const (
	FieldTotalAmount AmountField = "total_amount"
	FieldAmount      AmountField = "amount"
	FieldPaidAmount  AmountField = "paid_amount"
)

// CustomerCountMode selects how TotalCustomers is obtained. Distinct
// counting over an identifier field and the active-entity fallback are
// different quantities, not approximations of each other, and stay separate.
type CustomerCountMode int

const (
	// CountDistinctCustomers counts distinct non-empty customer identifiers
	// across the fetched revenue records.
	CountDistinctCustomers CustomerCountMode = iota
	// CountActiveTenants uses the number of active tenants of the business.
	CountActiveTenants
	// CountActiveStudents uses the number of active students of the business.
	CountActiveStudents
)

// RevenueSource describes where revenue events for a business type live and
// how to read them: the collection to query, the amount fields in priority
// order, and how customers are counted.
type RevenueSource struct {
	Collection    RevenueCollection
	AmountFields  []AmountField
	CustomerCount CustomerCountMode
}

// SourceForBusinessType maps a business type to its revenue source. It is
// total: an unrecognized type gets the retail mapping, so a new vertical
// shows up as a plain sales dashboard instead of an error.
func SourceForBusinessType(bt models.BusinessType) RevenueSource {
	switch bt {
	case models.BusinessTypeRental:
		return RevenueSource{
			Collection:    CollectionRentPayments,
			AmountFields:  []AmountField{FieldAmount},
			CustomerCount: CountActiveTenants,
		}
	case models.BusinessTypeSchool:
		return RevenueSource{
			Collection:    CollectionFeePayments,
			AmountFields:  []AmountField{FieldAmount},
			CustomerCount: CountActiveStudents,
		}
	case models.BusinessTypeHotel, models.BusinessTypeAirbnb:
		return RevenueSource{
			Collection:    CollectionBookings,
			AmountFields:  []AmountField{FieldPaidAmount},
			CustomerCount: CountDistinctCustomers,
		}
	case models.BusinessTypeRetail, models.BusinessTypeGrocery:
		fallthrough
	default:
		return RevenueSource{
			Collection:    CollectionSales,
			AmountFields:  []AmountField{FieldTotalAmount, FieldAmount, FieldPaidAmount},
			CustomerCount: CountDistinctCustomers,
		}
	}
}

// NormalizeAmount reads the record's amount fields in the source's priority
// order and returns the first one that is present. A record missing every
// candidate field counts as zero, never as an error.
func NormalizeAmount(rec models.RevenueRecord, fields []AmountField) float64 {
	for _, f := range fields {
		switch f {
		case FieldTotalAmount:
			if rec.TotalAmount != nil {
				return *rec.TotalAmount
			}
		case FieldAmount:
			if rec.Amount != nil {
				return *rec.Amount
			}
		case FieldPaidAmount:
			if rec.PaidAmount != nil {
				return *rec.PaidAmount
			}
		}
	}
	return 0
}
