package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/ventas/backend/internal/domain/expense"
	"github.com/ventas/backend/internal/domain/orders"
	"github.com/ventas/backend/internal/domain/partner"
	"github.com/ventas/backend/internal/domain/shared"
	"github.com/ventas/backend/internal/domain/shared/valueobject"
)

// SupplierExpenseService handles supplier expense business operations
type SupplierExpenseService struct {
	expenseRepo  expense.SupplierExpenseRepository
	supplierRepo partner.SupplierRepository
	orderRepo    orders.OrderRepository
}

// NewSupplierExpenseService creates a new SupplierExpenseService
func NewSupplierExpenseService(expenseRepo expense.SupplierExpenseRepository, supplierRepo partner.SupplierRepository, orderRepo orders.OrderRepository) *SupplierExpenseService {
	return &SupplierExpenseService{
		expenseRepo:  expenseRepo,
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
	}
}

// Create registers a new supplier expense
func (s *SupplierExpenseService) Create(ctx context.Context, req CreateSupplierExpenseRequest) (*SupplierExpenseResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}
	if req.OrderID != nil {
		if _, err := s.orderRepo.FindByID(ctx, *req.OrderID); err != nil {
			return nil, err
		}
	}

	e, err := expense.NewSupplierExpense(req.SupplierID, req.OrderID, req.Description, req.ExpenseDate, valueobject.NewMoneyMXN(req.Total))
	if err != nil {
		return nil, err
	}
	if req.Category != "" {
		e.SetCategory(req.Category)
	}
	if req.CreatedBy != nil {
		e.CreatedBy = req.CreatedBy
	}

	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	response := ToSupplierExpenseResponse(e)
	return &response, nil
}

// GetByID retrieves a supplier expense by ID
func (s *SupplierExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToSupplierExpenseResponse(e)
	return &response, nil
}

// SchedulePayment sets the planned payment date of an expense
func (s *SupplierExpenseService) SchedulePayment(ctx context.Context, id uuid.UUID, req SchedulePaymentRequest) (*SupplierExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := e.SchedulePayment(req.ScheduledPaymentDate); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.SaveWithLock(ctx, e); err != nil {
		return nil, err
	}

	response := ToSupplierExpenseResponse(e)
	return &response, nil
}

// MarkPaid transitions an expense to PAGADO
func (s *SupplierExpenseService) MarkPaid(ctx context.Context, id uuid.UUID, req MarkPaidRequest) (*SupplierExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := e.MarkPaid(req.PaidAt, req.PayMethod); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.SaveWithLock(ctx, e); err != nil {
		return nil, err
	}

	response := ToSupplierExpenseResponse(e)
	return &response, nil
}

// AttachToOrder attributes the expense to an order's material cost
func (s *SupplierExpenseService) AttachToOrder(ctx context.Context, id uuid.UUID, req AttachToOrderRequest) (*SupplierExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.orderRepo.FindByID(ctx, req.OrderID); err != nil {
		return nil, err
	}

	if err := e.AttachToOrder(req.OrderID); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.SaveWithLock(ctx, e); err != nil {
		return nil, err
	}

	response := ToSupplierExpenseResponse(e)
	return &response, nil
}

// Detach removes the order attribution of an expense
func (s *SupplierExpenseService) Detach(ctx context.Context, id uuid.UUID) (*SupplierExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	e.Detach()

	if err := s.expenseRepo.SaveWithLock(ctx, e); err != nil {
		return nil, err
	}

	response := ToSupplierExpenseResponse(e)
	return &response, nil
}

// List retrieves supplier expenses with filtering and pagination
func (s *SupplierExpenseService) List(ctx context.Context, filter SupplierExpenseListFilter) ([]SupplierExpenseResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "expense_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := expense.SupplierExpenseFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
			Search:   filter.Search,
		},
		SupplierID: filter.SupplierID,
		OrderID:    filter.OrderID,
		FromDate:   filter.FromDate,
		ToDate:     filter.ToDate,
	}
	if filter.Status != "" {
		status := expense.ExpenseStatus(filter.Status)
		domainFilter.Status = &status
	}
	if filter.Category != "" {
		domainFilter.Category = &filter.Category
	}

	found, err := s.expenseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.expenseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SupplierExpenseResponse, 0, len(found))
	for i := range found {
		responses = append(responses, ToSupplierExpenseResponse(&found[i]))
	}
	return responses, total, nil
}

// ListByOrder retrieves all supplier expenses attributed to an order
func (s *SupplierExpenseService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]SupplierExpenseResponse, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}

	found, err := s.expenseRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierExpenseResponse, 0, len(found))
	for i := range found {
		responses = append(responses, ToSupplierExpenseResponse(&found[i]))
	}
	return responses, nil
}

// Deactivate soft-deletes a supplier expense
func (s *SupplierExpenseService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.expenseRepo.Deactivate(ctx, id)
}
