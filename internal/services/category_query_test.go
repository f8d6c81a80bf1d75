package services

import (
	"testing"

	"github.com/Johnmalala/fedhaplus-sub001/internal/models"
)

func TestSourceForBusinessType(t *testing.T) {
	tests := []struct {
		name          string
		businessType  models.BusinessType
		collection    RevenueCollection
		amountFields  []AmountField
		customerCount CustomerCountMode
	}{
		{"retail", models.BusinessTypeRetail, CollectionSales, []AmountField{FieldTotalAmount, FieldAmount, FieldPaidAmount}, CountDistinctCustomers},
		{"grocery", models.BusinessTypeGrocery, CollectionSales, []AmountField{FieldTotalAmount, FieldAmount, FieldPaidAmount}, CountDistinctCustomers},
		{"rental", models.BusinessTypeRental, CollectionRentPayments, []AmountField{FieldAmount}, CountActiveTenants},
		{"school", models.BusinessTypeSchool, CollectionFeePayments, []AmountField{FieldAmount}, CountActiveStudents},
		{"hotel", models.BusinessTypeHotel, CollectionBookings, []AmountField{FieldPaidAmount}, CountDistinctCustomers},
		{"airbnb", models.BusinessTypeAirbnb, CollectionBookings, []AmountField{FieldPaidAmount}, CountDistinctCustomers},
		{"unknown falls back to retail", models.BusinessType("barbershop"), CollectionSales, []AmountField{FieldTotalAmount, FieldAmount, FieldPaidAmount}, CountDistinctCustomers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := SourceForBusinessType(tt.businessType)
			if src.Collection != tt.collection {
				t.Errorf("Expected collection %q, got %q", tt.collection, src.Collection)
			}
			if len(src.AmountFields) != len(tt.amountFields) {
				t.Fatalf("Expected %d amount fields, got %d", len(tt.amountFields), len(src.AmountFields))
			}
			for i, f := range tt.amountFields {
				if src.AmountFields[i] != f {
					t.Errorf("Expected amount field %d to be %q, got %q", i, f, src.AmountFields[i])
				}
			}
			if src.CustomerCount != tt.customerCount {
				t.Errorf("Expected customer count mode %d, got %d", tt.customerCount, src.CustomerCount)
			}
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	retail := SourceForBusinessType(models.BusinessTypeRetail).AmountFields

	t.Run("first field wins", func(t *testing.T) {
		rec := models.RevenueRecord{TotalAmount: floatPtr(120), Amount: floatPtr(999), PaidAmount: floatPtr(50)}
		if got := NormalizeAmount(rec, retail); got != 120 {
			t.Errorf("Expected 120, got %v", got)
		}
	})

	t.Run("zero-valued first field still wins", func(t *testing.T) {
		// Priority is positional, not a truthiness chain: an explicit zero
		// must not fall through to the next candidate.
		rec := models.RevenueRecord{TotalAmount: floatPtr(0), Amount: floatPtr(999)}
		if got := NormalizeAmount(rec, retail); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})

	t.Run("falls through nil fields in order", func(t *testing.T) {
		rec := models.RevenueRecord{Amount: floatPtr(50), PaidAmount: floatPtr(70)}
		if got := NormalizeAmount(rec, retail); got != 50 {
			t.Errorf("Expected 50, got %v", got)
		}
	})

	t.Run("all fields missing means zero", func(t *testing.T) {
		if got := NormalizeAmount(models.RevenueRecord{}, retail); got != 0 {
			t.Errorf("Expected 0 for a record with no amount fields, got %v", got)
		}
	})

	t.Run("only listed fields are read", func(t *testing.T) {
		bookings := SourceForBusinessType(models.BusinessTypeHotel).AmountFields
		rec := models.RevenueRecord{TotalAmount: floatPtr(500), Amount: floatPtr(300)}
		if got := NormalizeAmount(rec, bookings); got != 0 {
			t.Errorf("Expected 0 when paid_amount is absent, got %v", got)
		}
	})
}
