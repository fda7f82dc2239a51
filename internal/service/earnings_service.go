package service

import (
	"context"

	"marketplace-service/internal/earnings"
	"marketplace-service/internal/models"
	"marketplace-service/internal/status"
	"marketplace-service/internal/store"
	"marketplace-service/internal/util"

	"go.uber.org/zap"
)

// EarningsService derives vendor earnings and admin revenue statistics
type EarningsService struct {
	store          *store.Store
	defaultRateBps int64
	logger         *zap.Logger
}

// NewEarningsService creates a new earnings service
func NewEarningsService(store *store.Store, defaultRateBps int64) *EarningsService {
	return &EarningsService{
		store:          store,
		defaultRateBps: defaultRateBps,
		logger:         util.GetLogger(),
	}
}

// VendorEarnings is the earnings page payload for one vendor
type VendorEarnings struct {
	Summary earnings.Summary       `json:"summary"`
	Ledger  []models.EarningsEntry `json:"ledger"`
}

// resolveRateBps picks the commission rate for fallback computation:
// the vendor's configured rate when set, the platform default otherwise.
func resolveRateBps(vendor *models.Vendor, defaultBps int64) int64 {
	if vendor != nil && vendor.CommissionRateBps > 0 {
		return vendor.CommissionRateBps
	}
	return defaultBps
}

// vendorRateBps looks up a vendor's commission rate. A missing vendor
// record degrades to the platform default rather than failing the read.
func (s *EarningsService) vendorRateBps(ctx context.Context, vendorID int64) int64 {
	vendor, err := s.store.GetVendorByID(ctx, vendorID)
	if err != nil {
		s.logger.Warn("Vendor lookup failed, using default commission rate",
			zap.Int64("vendor_id", vendorID), zap.Error(err))
		return s.defaultRateBps
	}
	return resolveRateBps(vendor, s.defaultRateBps)
}

// GetVendorEarnings computes a vendor's net earnings from their
// delivered orders and returns the recorded ledger alongside.
func (s *EarningsService) GetVendorEarnings(ctx context.Context, vendorID int64) (*VendorEarnings, error) {
	ctx, span := util.StartSpan(ctx, "EarningsService.GetVendorEarnings")
	defer span.End()

	orders, err := s.store.GetOrdersByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	delivered := earnings.FilterByStatus(orders, status.Delivered)
	summary := earnings.Aggregate(delivered, s.vendorRateBps(ctx, vendorID))

	ledger, err := s.store.GetEarningsByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	return &VendorEarnings{Summary: summary, Ledger: ledger}, nil
}

// AdminStats is the platform-wide statistics payload
type AdminStats struct {
	Revenue       earnings.Summary `json:"revenue"`
	OrdersByState map[string]int   `json:"orders_by_status"`
}

// GetAdminStats aggregates delivered revenue and order counts per
// status across all vendors.
func (s *EarningsService) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	ctx, span := util.StartSpan(ctx, "EarningsService.GetAdminStats")
	defer span.End()

	orders, err := s.store.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(status.All))
	for _, o := range orders {
		counts[o.Status]++
	}

	delivered := earnings.FilterByStatus(orders, status.Delivered)
	return &AdminStats{
		Revenue:       earnings.Aggregate(delivered, s.defaultRateBps),
		OrdersByState: counts,
	}, nil
}

// GetRevenueChart returns monthly revenue buckets for the admin chart
func (s *EarningsService) GetRevenueChart(ctx context.Context, months int) ([]store.MonthlyRevenue, error) {
	if months <= 0 {
		months = 12
	}
	return s.store.GetMonthlyRevenue(ctx, months)
}

// RecordDelivery writes the earnings ledger row for a delivered order.
// Invoked by the earnings worker; idempotent per order.
func (s *EarningsService) RecordDelivery(ctx context.Context, event *models.OrderDeliveredEvent) error {
	commission := event.Commission
	if commission == 0 && event.Total != 0 {
		commission = earnings.Commission(event.Total, s.vendorRateBps(ctx, event.VendorID))
	}

	entry := &models.EarningsEntry{
		OrderID:    event.OrderID,
		VendorID:   event.VendorID,
		Total:      event.Total,
		Commission: commission,
		Net:        earnings.Net(event.Total, commission),
	}

	if err := s.store.CreateEarningsEntry(ctx, entry); err != nil {
		return err
	}

	util.EarningsRecordedTotal.Inc()
	s.logger.Info("Earnings recorded",
		zap.Int64("order_id", event.OrderID),
		zap.Int64("vendor_id", event.VendorID),
		zap.Int64("net", entry.Net))
	return nil
}
