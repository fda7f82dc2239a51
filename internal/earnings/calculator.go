// Package earnings derives commission, net payouts, and aggregate
// revenue figures from order records. All amounts are int64 cents and
// rates are basis points, so the arithmetic stays exact.
package earnings

import "marketplace-service/internal/models"

const bpsDenominator = 10000

// Commission computes the platform's cut of an order total. The result
// is floored to whole cents.
func Commission(totalCents, rateBps int64) int64 {
	return totalCents * rateBps / bpsDenominator
}

// Net computes the vendor payout after the commission deduction.
func Net(totalCents, commissionCents int64) int64 {
	return totalCents - commissionCents
}

// Summary aggregates revenue across a set of orders
type Summary struct {
	Total      int64 `json:"total"`
	Commission int64 `json:"commission"`
	Net        int64 `json:"net"`
	Orders     int   `json:"orders"`
}

// Aggregate sums revenue over orders. Orders with no stored commission
// fall back to defaultRateBps; a zero total contributes zeros. The
// stored commission field is the canonical source — the fallback exists
// only for records written before commission was captured at checkout.
func Aggregate(orders []models.Order, defaultRateBps int64) Summary {
	var sum Summary
	for _, o := range orders {
		commission := o.Commission
		if commission == 0 && o.Total != 0 {
			commission = Commission(o.Total, defaultRateBps)
		}
		sum.Total += o.Total
		sum.Commission += commission
		sum.Net += Net(o.Total, commission)
		sum.Orders++
	}
	return sum
}

// FilterByStatus returns the orders whose status matches exactly.
// Used to isolate delivered orders for the earnings ledger.
func FilterByStatus(orders []models.Order, status string) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}
