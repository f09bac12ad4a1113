package domain_test

import (
	"testing"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoice_ApplyReceipt(t *testing.T) {
	newInvoice := func() domain.Invoice {
		return domain.Invoice{
			TotalCharges:    decimal.NewFromInt(49350),
			AdvanceReceived: decimal.NewFromInt(10000),
			BalanceAmount:   decimal.NewFromInt(39350),
			PaymentStatus:   domain.PaymentPartial,
		}
	}

	t.Run("partial receipt", func(t *testing.T) {
		inv := newInvoice()
		inv.ApplyReceipt(decimal.NewFromInt(15000))

		assert.True(t, inv.AdvanceReceived.Equal(decimal.NewFromInt(25000)))
		assert.True(t, inv.BalanceAmount.Equal(decimal.NewFromInt(24350)))
		assert.Equal(t, domain.PaymentPartial, inv.PaymentStatus)
	})

	t.Run("receipt settles the invoice", func(t *testing.T) {
		inv := newInvoice()
		inv.ApplyReceipt(decimal.NewFromInt(39350))

		assert.True(t, inv.BalanceAmount.IsZero())
		assert.Equal(t, domain.PaymentPaid, inv.PaymentStatus)
	})

	t.Run("negative delta backs a receipt out", func(t *testing.T) {
		inv := newInvoice()
		inv.ApplyReceipt(decimal.NewFromInt(10000).Neg())

		assert.True(t, inv.AdvanceReceived.IsZero())
		assert.True(t, inv.BalanceAmount.Equal(inv.TotalCharges))
		assert.Equal(t, domain.PaymentPending, inv.PaymentStatus)
	})

	t.Run("balance stays total minus advance across a sequence", func(t *testing.T) {
		inv := newInvoice()
		for _, delta := range []int64{5000, 20000, -20000, 14350} {
			inv.ApplyReceipt(decimal.NewFromInt(delta))
			assert.True(t, inv.BalanceAmount.Equal(inv.TotalCharges.Sub(inv.AdvanceReceived)))
		}
		assert.True(t, inv.BalanceAmount.Equal(decimal.NewFromInt(20000)))
		assert.Equal(t, domain.PaymentPartial, inv.PaymentStatus)
	})
}
