package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tx := TransactionModel{
		ZakatFitrahAmount: 35000,
		ZakatFitrahRice:   KgFromFloat(2.5),
		ZakatMaalAmount:   1000000,
		InfaqAmount:       50000,
		ShodaqohAmount:    20000,
		FidyahAmount:      45000,
		FidyahRice:        KgFromFloat(1.25),
		WakafAmount:       500000,
		HibahAmount:       10000,
	}
	tx.ComputeTotals()

	assert.Equal(t, int64(1660000), tx.TotalAmount)
	assert.Equal(t, KgFromFloat(3.75), tx.TotalRice)
}

func TestComputeTotalsIsIdempotentAfterEdit(t *testing.T) {
	tx := TransactionModel{InfaqAmount: 50000}
	tx.ComputeTotals()
	assert.Equal(t, int64(50000), tx.TotalAmount)

	// edit kategori ⇒ totals mengikuti, tidak bisa diedit terpisah
	tx.InfaqAmount = 75000
	tx.WakafAmount = 25000
	tx.ComputeTotals()
	assert.Equal(t, int64(100000), tx.TotalAmount)
	assert.Equal(t, Kg(0), tx.TotalRice)
}

func TestComputeTotalsLargeValuesNoPrecisionLoss(t *testing.T) {
	// sanity 10^12: int64 masih jauh dari batas
	tx := TransactionModel{
		ZakatMaalAmount: 1_000_000_000_000,
		WakafAmount:     1_000_000_000_000,
	}
	tx.ComputeTotals()
	assert.Equal(t, int64(2_000_000_000_000), tx.TotalAmount)
}

func TestClampNegatives(t *testing.T) {
	tx := TransactionModel{
		InfaqAmount:     -500,
		ZakatFitrahRice: Kg(-100),
		WakafAmount:     1000,
	}
	tx.ClampNegatives()
	tx.ComputeTotals()

	assert.Equal(t, int64(0), tx.InfaqAmount)
	assert.Equal(t, Kg(0), tx.ZakatFitrahRice)
	assert.Equal(t, int64(1000), tx.TotalAmount)
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentCash))
	assert.True(t, ValidPaymentMethod(PaymentRice))
	assert.True(t, ValidPaymentMethod(PaymentTransfer))
	assert.False(t, ValidPaymentMethod("gopay"))
	assert.False(t, ValidPaymentMethod(""))
}
