package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventas/backend/internal/domain/billing"
	"github.com/ventas/backend/internal/domain/expense"
	"github.com/ventas/backend/internal/domain/orders"
	"github.com/ventas/backend/internal/domain/partner"
	"github.com/ventas/backend/internal/domain/shared"
	"github.com/ventas/backend/internal/domain/shared/valueobject"
)

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo   orders.OrderRepository
	lineRepo    orders.ExpenseLineRepository
	clientRepo  partner.ClientRepository
	vendorRepo  partner.VendorRepository
	invoiceRepo billing.InvoiceRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo orders.OrderRepository, lineRepo orders.ExpenseLineRepository, clientRepo partner.ClientRepository, vendorRepo partner.VendorRepository, invoiceRepo billing.InvoiceRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		lineRepo:    lineRepo,
		clientRepo:  clientRepo,
		vendorRepo:  vendorRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Create creates a new order
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	exists, err := s.orderRepo.ExistsByOrderNumber(ctx, req.OrderNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Order with this number already exists")
	}

	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}
	if req.VendorID != nil {
		if _, err := s.vendorRepo.FindByID(ctx, *req.VendorID); err != nil {
			return nil, err
		}
	}

	order, err := orders.NewOrder(req.OrderNumber, req.ClientID, req.VendorID, req.OrderDate, valueobject.NewMoneyMXN(req.SaleSubtotal))
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		order.SetDescription(req.Description)
	}
	if req.CommissionRate != nil {
		order.SetCommissionRate(req.CommissionRate)
	}
	if req.CreatedBy != nil {
		order.CreatedBy = req.CreatedBy
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByOrderNumber retrieves an order by its number
func (s *OrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "order_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := orders.OrderFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
			Search:   filter.Search,
		},
		ClientID: filter.ClientID,
		VendorID: filter.VendorID,
	}
	if filter.Status != "" {
		status := orders.OrderStatus(filter.Status)
		domainFilter.Status = &status
	}

	found, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, 0, len(found))
	for i := range found {
		responses = append(responses, ToOrderResponse(&found[i]))
	}
	return responses, total, nil
}

// UpdateSaleSubtotal replaces the sale subtotal, rederiving the sale total
func (s *OrderService) UpdateSaleSubtotal(ctx context.Context, id uuid.UUID, req UpdateSaleSubtotalRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.SetSaleSubtotal(valueobject.NewMoneyMXN(req.SaleSubtotal)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// SetWorkProgress sets the user-entered completion percentage
func (s *OrderService) SetWorkProgress(ctx context.Context, id uuid.UUID, req SetWorkProgressRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.SetWorkProgress(req.WorkProgress); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// SetCommissionRate sets or clears the order-level commission override
func (s *OrderService) SetCommissionRate(ctx context.Context, id uuid.UUID, req SetCommissionRateRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.SetCommissionRate(req.CommissionRate)

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Start moves the order into EN_PROCESO
func (s *OrderService) Start(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*orders.Order).Start)
}

// Finish moves the order into TERMINADA
func (s *OrderService) Finish(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*orders.Order).Finish)
}

// Deliver moves the order into ENTREGADA
func (s *OrderService) Deliver(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*orders.Order).Deliver)
}

// Cancel cancels the order with a mandatory reason
func (s *OrderService) Cancel(ctx context.Context, id uuid.UUID, req CancelOrderRequest) (*OrderResponse, error) {
	return s.transition(ctx, id, func(o *orders.Order) error {
		return o.Cancel(req.Reason)
	})
}

func (s *OrderService) transition(ctx context.Context, id uuid.UUID, fn func(*orders.Order) error) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// AddExpenseLine adds a cost line to an order and refreshes the order's
// roll-up totals from the line items in the same operation
func (s *OrderService) AddExpenseLine(ctx context.Context, orderID uuid.UUID, req AddExpenseLineRequest) (*ExpenseLineResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status.IsTerminal() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add expense lines to a closed order")
	}

	line, err := orders.NewExpenseLine(orderID, orders.ExpenseLineKind(req.Kind), valueobject.NewMoneyMXN(req.Amount), req.Description, req.ExpenseDate)
	if err != nil {
		return nil, err
	}
	if req.Category != "" {
		line.SetCategory(req.Category)
	}

	// Snapshot the commission rate in force at capture time
	rate, err := s.effectiveRate(ctx, order)
	if err != nil {
		return nil, err
	}
	line.SnapshotCommissionRate(rate)

	if err := s.lineRepo.Save(ctx, line); err != nil {
		return nil, err
	}

	if err := s.refreshRollups(ctx, order); err != nil {
		return nil, err
	}

	response := ToExpenseLineResponse(line)
	return &response, nil
}

// RemoveExpenseLine soft-deletes a cost line and refreshes the owning
// order's roll-up totals
func (s *OrderService) RemoveExpenseLine(ctx context.Context, lineID uuid.UUID) error {
	line, err := s.lineRepo.FindByID(ctx, lineID)
	if err != nil {
		return err
	}

	order, err := s.orderRepo.FindByID(ctx, line.OrderID)
	if err != nil {
		return err
	}

	if err := s.lineRepo.Deactivate(ctx, lineID); err != nil {
		return err
	}

	return s.refreshRollups(ctx, order)
}

// ListExpenseLines retrieves all cost lines of an order
func (s *OrderService) ListExpenseLines(ctx context.Context, orderID uuid.UUID) ([]ExpenseLineResponse, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}

	lines, err := s.lineRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	responses := make([]ExpenseLineResponse, 0, len(lines))
	for i := range lines {
		responses = append(responses, ToExpenseLineResponse(&lines[i]))
	}
	return responses, nil
}

// ComputeCommission previews the commission for an order from its effective
// rate: the order override when present, otherwise the vendor's default,
// otherwise zero.
func (s *OrderService) ComputeCommission(ctx context.Context, orderID uuid.UUID) (*CommissionResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	rate, err := s.effectiveRate(ctx, order)
	if err != nil {
		return nil, err
	}

	source := "none"
	switch {
	case order.CommissionRate != nil:
		source = "order"
	case order.VendorID != nil && !rate.IsZero():
		source = "vendor"
	}

	return &CommissionResponse{
		OrderID:          order.ID,
		SaleSubtotal:     order.SaleSubtotal,
		EffectiveRate:    orders.ClampCommissionRate(rate),
		CommissionAmount: orders.CommissionAmount(order.SaleSubtotal, rate),
		RateSource:       source,
	}, nil
}

// Deactivate soft-deletes an order. Its invoices survive as orphans: each
// one is detached from the order before the order row is deactivated, so
// their financial history keeps deriving status without an owner.
func (s *OrderService) Deactivate(ctx context.Context, id uuid.UUID) error {
	invoices, err := s.invoiceRepo.FindByOrder(ctx, id)
	if err != nil {
		return err
	}
	for i := range invoices {
		invoice := &invoices[i]
		invoice.Detach()
		if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
			return err
		}
	}
	return s.orderRepo.Deactivate(ctx, id)
}

// effectiveRate resolves the commission rate for an order. A missing vendor
// degrades to a zero rate rather than failing the operation.
func (s *OrderService) effectiveRate(ctx context.Context, order *orders.Order) (decimal.Decimal, error) {
	var vendorRate *decimal.Decimal
	if order.CommissionRate == nil && order.VendorID != nil {
		vendor, err := s.vendorRepo.FindByID(ctx, *order.VendorID)
		switch {
		case err == nil:
			vendorRate = &vendor.CommissionRate
		case shared.IsNotFound(err):
			// fall through to the zero rate
		default:
			return decimal.Zero, err
		}
	}
	return orders.EffectiveCommissionRate(order.CommissionRate, vendorRate), nil
}

// refreshRollups recomputes the order's expense roll-up caches from the line
// items and persists them
func (s *OrderService) refreshRollups(ctx context.Context, order *orders.Order) error {
	lines, err := s.lineRepo.FindByOrder(ctx, order.ID)
	if err != nil {
		return err
	}

	operational := expense.SumExpenseLines(lines, orders.ExpenseLineOperativo)
	indirect := expense.SumExpenseLines(lines, orders.ExpenseLineIndirecto)
	order.RefreshExpenseTotals(operational, indirect)

	return s.orderRepo.SaveWithLock(ctx, order)
}
