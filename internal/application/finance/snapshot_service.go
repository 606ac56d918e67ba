package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ventas/backend/internal/domain/billing"
	"github.com/ventas/backend/internal/domain/expense"
	"github.com/ventas/backend/internal/domain/orders"
	"github.com/ventas/backend/internal/domain/partner"
	"github.com/ventas/backend/internal/domain/shared"
)

// SnapshotService assembles the financial state of orders from the billing,
// expense and commission sources. It owns no state of its own: everything it
// returns is derived at call time.
type SnapshotService struct {
	orderRepo   orders.OrderRepository
	invoiceRepo billing.InvoiceRepository
	expenseRepo expense.SupplierExpenseRepository
	lineRepo    orders.ExpenseLineRepository
	vendorRepo  partner.VendorRepository
	logger      *zap.Logger
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(
	orderRepo orders.OrderRepository,
	invoiceRepo billing.InvoiceRepository,
	expenseRepo expense.SupplierExpenseRepository,
	lineRepo orders.ExpenseLineRepository,
	vendorRepo partner.VendorRepository,
	logger *zap.Logger,
) *SnapshotService {
	return &SnapshotService{
		orderRepo:   orderRepo,
		invoiceRepo: invoiceRepo,
		expenseRepo: expenseRepo,
		lineRepo:    lineRepo,
		vendorRepo:  vendorRepo,
		logger:      logger,
	}
}

// GetOrderFinancialSnapshot assembles the complete financial picture of one
// order. The billing, expense and commission sources are fetched
// concurrently; a failing expense source degrades to a zeroed category with
// a warning instead of failing the snapshot.
func (s *SnapshotService) GetOrderFinancialSnapshot(ctx context.Context, orderID uuid.UUID) (*OrderFinancialSnapshot, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var (
		invoices   []billing.Invoice
		breakdown  *expense.Breakdown
		commission CommissionSummaryResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = s.invoiceRepo.FindByOrder(gctx, orderID)
		return err
	})
	g.Go(func() error {
		breakdown = s.buildBreakdown(gctx, order)
		return nil
	})
	g.Go(func() error {
		commission = s.buildCommission(gctx, order)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	invoiced := billing.AggregateInvoicedTotals([]uuid.UUID{orderID}, invoices)
	summary := billing.NewBillingSummary(orderID, order.SaleTotal, invoiced[orderID])

	margin := order.SaleTotal.Sub(breakdown.TotalExpense()).Sub(commission.CommissionAmount)

	return &OrderFinancialSnapshot{
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		OrderStatus:     order.Status.String(),
		WorkProgress:    order.WorkProgress,
		Billing:         ToBillingSummaryResponse(summary),
		Expenses:        ToExpenseBreakdownResponse(breakdown),
		Commission:      commission,
		EstimatedMargin: margin,
		GeneratedAt:     time.Now(),
	}, nil
}

// GetBillingTotals derives billing summaries for a batch of orders in two
// fetches: the orders and all their invoices. Every requested id appears in
// the result: orders without invoices report invoiced zero, and ids with no
// matching order row degrade to an all-zero summary with a logged warning
// instead of failing the batch.
func (s *SnapshotService) GetBillingTotals(ctx context.Context, orderIDs []uuid.UUID) ([]BillingSummaryResponse, error) {
	if len(orderIDs) == 0 {
		return []BillingSummaryResponse{}, nil
	}
	for _, id := range orderIDs {
		if id == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
		}
	}

	var (
		found    []orders.Order
		invoices []billing.Invoice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		found, err = s.orderRepo.FindByIDs(gctx, orderIDs)
		return err
	})
	g.Go(func() error {
		var err error
		invoices, err = s.invoiceRepo.FindByOrderIDs(gctx, orderIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*orders.Order, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}
	invoiced := billing.AggregateInvoicedTotals(orderIDs, invoices)

	summaries := make([]BillingSummaryResponse, 0, len(orderIDs))
	for _, id := range orderIDs {
		saleTotal := decimal.Zero
		if order, ok := byID[id]; ok {
			saleTotal = order.SaleTotal
		} else {
			s.logger.Warn("order missing from billing totals batch",
				zap.String("order_id", id.String()))
		}
		summary := billing.NewBillingSummary(id, saleTotal, invoiced[id])
		summaries = append(summaries, ToBillingSummaryResponse(summary))
	}
	return summaries, nil
}

// GetExpenseBreakdown aggregates an order's expenses from all three sources
func (s *SnapshotService) GetExpenseBreakdown(ctx context.Context, orderID uuid.UUID) (*ExpenseBreakdownResponse, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	breakdown := s.buildBreakdown(ctx, order)
	response := ToExpenseBreakdownResponse(breakdown)
	return &response, nil
}

// buildBreakdown aggregates the order's expense sources. Each source that
// fails is zeroed and recorded as a warning so one unavailable source never
// hides the others.
func (s *SnapshotService) buildBreakdown(ctx context.Context, order *orders.Order) *expense.Breakdown {
	breakdown := expense.NewBreakdown(order.ID)

	supplierExpenses, err := s.expenseRepo.FindByOrder(ctx, order.ID)
	if err != nil {
		s.logger.Warn("supplier expense aggregation failed",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
		breakdown.AddWarning("material expense source unavailable")
	} else {
		material, pending, count := expense.SummarizeSupplierExpenses(supplierExpenses)
		breakdown.MaterialExpense = material
		breakdown.MaterialExpensePending = pending
		breakdown.TotalSupplierExpense = material
		breakdown.SupplierInvoiceCount = count
	}

	lines, err := s.lineRepo.FindByOrder(ctx, order.ID)
	if err != nil {
		s.logger.Warn("expense line aggregation failed",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
		breakdown.AddWarning("order expense line source unavailable")
		return breakdown
	}

	breakdown.OperationalExpense = expense.SumExpenseLines(lines, orders.ExpenseLineOperativo)
	breakdown.IndirectExpense = expense.SumExpenseLines(lines, orders.ExpenseLineIndirecto)

	// Roll-up drift is reported, not repaired: the line items stay the source
	// of truth on read.
	if !breakdown.OperationalExpense.Equal(order.OperationalExpenseTotal) ||
		!breakdown.IndirectExpense.Equal(order.IndirectExpenseTotal) {
		s.logger.Warn("order expense roll-up drift detected",
			zap.String("order_id", order.ID.String()),
			zap.String("operational_cached", order.OperationalExpenseTotal.String()),
			zap.String("operational_actual", breakdown.OperationalExpense.String()),
			zap.String("indirect_cached", order.IndirectExpenseTotal.String()),
			zap.String("indirect_actual", breakdown.IndirectExpense.String()))
		breakdown.AddWarning("expense roll-up totals out of date")
	}

	return breakdown
}

// buildCommission resolves the order's commission. A missing vendor degrades
// to a zero commission rather than failing the snapshot.
func (s *SnapshotService) buildCommission(ctx context.Context, order *orders.Order) CommissionSummaryResponse {
	var vendorRate *decimal.Decimal
	source := "none"

	switch {
	case order.CommissionRate != nil:
		source = "order"
	case order.VendorID != nil:
		vendor, err := s.vendorRepo.FindByID(ctx, *order.VendorID)
		if err != nil {
			s.logger.Warn("vendor lookup failed, commission zeroed",
				zap.String("order_id", order.ID.String()),
				zap.String("vendor_id", order.VendorID.String()),
				zap.Error(err))
		} else {
			vendorRate = &vendor.CommissionRate
			if !vendor.CommissionRate.IsZero() {
				source = "vendor"
			}
		}
	}

	rate := orders.EffectiveCommissionRate(order.CommissionRate, vendorRate)
	return CommissionSummaryResponse{
		EffectiveRate:    orders.ClampCommissionRate(rate),
		CommissionAmount: orders.CommissionAmount(order.SaleSubtotal, rate),
		RateSource:       source,
	}
}
