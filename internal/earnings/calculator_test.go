package earnings

import (
	"testing"

	"marketplace-service/internal/models"
	"marketplace-service/internal/status"

	"github.com/stretchr/testify/assert"
)

func TestCommission(t *testing.T) {
	// 6% of $100.00 is $6.00, net $94.00
	commission := Commission(10000, 600)
	assert.Equal(t, int64(600), commission)
	assert.Equal(t, int64(9400), Net(10000, commission))
}

func TestCommissionFloorsFractionalCents(t *testing.T) {
	// 6% of $0.99 = 5.94 cents, floored to 5
	assert.Equal(t, int64(5), Commission(99, 600))
	assert.Equal(t, int64(0), Commission(0, 600))
}

func TestAggregate(t *testing.T) {
	orders := []models.Order{
		{Total: 15000, Commission: 900, Status: status.Delivered},
		{Total: 20000, Commission: 1200, Status: status.Delivered},
	}

	sum := Aggregate(orders, 600)
	assert.Equal(t, int64(35000), sum.Total)
	assert.Equal(t, int64(2100), sum.Commission)
	assert.Equal(t, int64(32900), sum.Net)
	assert.Equal(t, 2, sum.Orders)
}

func TestAggregateDefaultsMissingCommission(t *testing.T) {
	orders := []models.Order{
		{Total: 10000}, // commission never stored
	}

	sum := Aggregate(orders, 600)
	assert.Equal(t, int64(600), sum.Commission)
	assert.Equal(t, int64(9400), sum.Net)
}

func TestAggregateZeroTotal(t *testing.T) {
	sum := Aggregate([]models.Order{{Total: 0}}, 600)
	assert.Equal(t, int64(0), sum.Total)
	assert.Equal(t, int64(0), sum.Commission)
	assert.Equal(t, int64(0), sum.Net)
	assert.Equal(t, 1, sum.Orders)
}

func TestFilterByStatusAndAggregate(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Status: status.Pending, Total: 20000},
		{ID: 2, Status: status.Delivered, Total: 15000, Commission: 900},
	}

	delivered := FilterByStatus(orders, status.Delivered)
	assert.Len(t, delivered, 1)
	assert.Equal(t, int64(2), delivered[0].ID)

	sum := Aggregate(delivered, 600)
	assert.Equal(t, int64(15000), sum.Total)
	assert.Equal(t, int64(900), sum.Commission)
	assert.Equal(t, int64(14100), sum.Net)
}

func TestFilterByStatusEmpty(t *testing.T) {
	assert.Empty(t, FilterByStatus(nil, status.Delivered))
}
