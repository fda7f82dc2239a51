package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderValidate(t *testing.T) {
	order := &Order{
		ID:           1,
		Subtotal:     120000,
		Tax:          9600,
		ShippingCost: 2500,
		Total:        132100,
	}
	assert.NoError(t, order.Validate())
}

func TestOrderValidateTotalMismatch(t *testing.T) {
	order := &Order{
		ID:           1,
		Subtotal:     120000,
		Tax:          9600,
		ShippingCost: 2500,
		Total:        130000,
	}
	assert.Error(t, order.Validate())
}

func TestOrderValidateCommissionNotInTotal(t *testing.T) {
	// Commission is deducted from the vendor payout, never added to
	// what the customer pays.
	order := &Order{
		ID:           2,
		Subtotal:     10000,
		Tax:          800,
		ShippingCost: 500,
		Commission:   678,
		Total:        11300,
	}
	assert.NoError(t, order.Validate())
}

func TestProductValidate(t *testing.T) {
	product := &Product{
		ID:             1,
		Price:          34900,
		StockQuantity:  15,
		IsOnSale:       false,
		CompareAtPrice: 0,
	}
	assert.NoError(t, product.Validate())

	onSale := &Product{
		ID:             2,
		Price:          129900,
		CompareAtPrice: 159900,
		StockQuantity:  8,
		IsOnSale:       true,
	}
	assert.NoError(t, onSale.Validate())
}

func TestProductValidateNegativeStock(t *testing.T) {
	product := &Product{ID: 1, Price: 34900, StockQuantity: -1}
	assert.Error(t, product.Validate())
}

func TestProductValidateOnSaleRequiresHigherCompareAt(t *testing.T) {
	// Equal compare-at price is not a markdown.
	equal := &Product{ID: 1, Price: 34900, CompareAtPrice: 34900, StockQuantity: 5, IsOnSale: true}
	assert.Error(t, equal.Validate())

	missing := &Product{ID: 2, Price: 34900, StockQuantity: 5, IsOnSale: true}
	assert.Error(t, missing.Validate())
}
