package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ventas/backend/internal/domain/billing"
	"github.com/ventas/backend/internal/domain/orders"
	"github.com/ventas/backend/internal/domain/partner"
	"github.com/ventas/backend/internal/domain/shared"
	"github.com/ventas/backend/internal/domain/shared/valueobject"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*orders.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*orders.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]orders.Order, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]orders.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter orders.OrderFilter) ([]orders.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]orders.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *orders.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveWithLock(ctx context.Context, order *orders.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter orders.OrderFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	args := m.Called(ctx, orderNumber)
	return args.Bool(0), args.Error(1)
}

// MockExpenseLineRepository is a mock implementation of ExpenseLineRepository
type MockExpenseLineRepository struct {
	mock.Mock
}

func (m *MockExpenseLineRepository) FindByID(ctx context.Context, id uuid.UUID) (*orders.ExpenseLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.ExpenseLine), args.Error(1)
}

func (m *MockExpenseLineRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]orders.ExpenseLine, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]orders.ExpenseLine), args.Error(1)
}

func (m *MockExpenseLineRepository) FindByOrderAndKind(ctx context.Context, orderID uuid.UUID, kind orders.ExpenseLineKind) ([]orders.ExpenseLine, error) {
	args := m.Called(ctx, orderID, kind)
	return args.Get(0).([]orders.ExpenseLine), args.Error(1)
}

func (m *MockExpenseLineRepository) FindByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]orders.ExpenseLine, error) {
	args := m.Called(ctx, orderIDs)
	return args.Get(0).([]orders.ExpenseLine), args.Error(1)
}

func (m *MockExpenseLineRepository) Save(ctx context.Context, line *orders.ExpenseLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockExpenseLineRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockVendorRepository is a mock implementation of VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Vendor, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Save(ctx context.Context, vendor *partner.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByFolio(ctx context.Context, folio string) (*billing.Invoice, error) {
	args := m.Called(ctx, folio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]billing.Invoice, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]billing.Invoice, error) {
	args := m.Called(ctx, orderIDs)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter billing.InvoiceFilter) ([]billing.Invoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveWithLock(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter billing.InvoiceFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsByFolio(ctx context.Context, folio string) (bool, error) {
	args := m.Called(ctx, folio)
	return args.Bool(0), args.Error(1)
}

// =============================================================================
// Test Helpers
// =============================================================================

func newTestService() (*OrderService, *MockOrderRepository, *MockExpenseLineRepository, *MockClientRepository, *MockVendorRepository) {
	orderRepo := new(MockOrderRepository)
	lineRepo := new(MockExpenseLineRepository)
	clientRepo := new(MockClientRepository)
	vendorRepo := new(MockVendorRepository)
	return NewOrderService(orderRepo, lineRepo, clientRepo, vendorRepo, new(MockInvoiceRepository)), orderRepo, lineRepo, clientRepo, vendorRepo
}

func testClient(t *testing.T) *partner.Client {
	client, err := partner.NewClient("Aceros del Norte SA de CV")
	require.NoError(t, err)
	return client
}

func testOrder(t *testing.T, vendorID *uuid.UUID) *orders.Order {
	order, err := orders.NewOrder("OT-2024-001", uuid.New(), vendorID, time.Now(), valueobject.NewMoneyMXNFromFloat(10000))
	require.NoError(t, err)
	return order
}

// =============================================================================
// Create Tests
// =============================================================================

func TestOrderService_Create(t *testing.T) {
	service, orderRepo, _, clientRepo, _ := newTestService()
	client := testClient(t)

	orderRepo.On("ExistsByOrderNumber", mock.Anything, "OT-2024-001").Return(false, nil)
	clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*orders.Order")).Return(nil)

	resp, err := service.Create(context.Background(), CreateOrderRequest{
		OrderNumber:  "OT-2024-001",
		ClientID:     client.ID,
		OrderDate:    time.Now(),
		SaleSubtotal: decimal.NewFromInt(10000),
	})

	require.NoError(t, err)
	assert.Equal(t, "11600.00", resp.SaleTotal.StringFixed(2))
	assert.Equal(t, orders.OrderStatusCreada.String(), resp.Status)
}

func TestOrderService_Create_DuplicateNumber(t *testing.T) {
	service, orderRepo, _, _, _ := newTestService()

	orderRepo.On("ExistsByOrderNumber", mock.Anything, "OT-2024-001").Return(true, nil)

	_, err := service.Create(context.Background(), CreateOrderRequest{
		OrderNumber: "OT-2024-001",
		ClientID:    uuid.New(),
		OrderDate:   time.Now(),
	})

	assert.Error(t, err)
	orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// =============================================================================
// Expense Line Tests
// =============================================================================

func TestOrderService_AddExpenseLine_RefreshesRollups(t *testing.T) {
	service, orderRepo, lineRepo, _, _ := newTestService()
	order := testOrder(t, nil)

	stored, err := orders.NewExpenseLine(order.ID, orders.ExpenseLineOperativo, valueobject.NewMoneyMXNFromFloat(350), "fletes", time.Now())
	require.NoError(t, err)

	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	lineRepo.On("Save", mock.Anything, mock.AnythingOfType("*orders.ExpenseLine")).Return(nil)
	lineRepo.On("FindByOrder", mock.Anything, order.ID).Return([]orders.ExpenseLine{*stored}, nil)
	orderRepo.On("SaveWithLock", mock.Anything, order).Return(nil)

	resp, err := service.AddExpenseLine(context.Background(), order.ID, AddExpenseLineRequest{
		Kind:        "OPERATIVO",
		Amount:      decimal.NewFromInt(350),
		Description: "fletes",
		ExpenseDate: time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, "OPERATIVO", resp.Kind)
	assert.Equal(t, "350.00", order.OperationalExpenseTotal.StringFixed(2))
	assert.True(t, order.IndirectExpenseTotal.IsZero())
}

func TestOrderService_AddExpenseLine_ClosedOrder(t *testing.T) {
	service, orderRepo, lineRepo, _, _ := newTestService()
	order := testOrder(t, nil)
	require.NoError(t, order.Cancel("cliente cancelo el pedido"))

	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	_, err := service.AddExpenseLine(context.Background(), order.ID, AddExpenseLineRequest{
		Kind:        "OPERATIVO",
		Amount:      decimal.NewFromInt(100),
		ExpenseDate: time.Now(),
	})

	assert.Error(t, err)
	lineRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// =============================================================================
// Commission Tests
// =============================================================================

func TestOrderService_ComputeCommission_OrderOverrideWins(t *testing.T) {
	service, orderRepo, _, _, vendorRepo := newTestService()
	vendorID := uuid.New()
	order := testOrder(t, &vendorID)
	rate := decimal.NewFromInt(10)
	order.SetCommissionRate(&rate)

	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	resp, err := service.ComputeCommission(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, "order", resp.RateSource)
	assert.Equal(t, "1000.00", resp.CommissionAmount.StringFixed(2))
	vendorRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOrderService_ComputeCommission_FallsBackToVendor(t *testing.T) {
	service, orderRepo, _, _, vendorRepo := newTestService()

	vendor, err := partner.NewVendor("Carlos Dominguez")
	require.NoError(t, err)
	require.NoError(t, vendor.SetCommissionRate(decimal.NewFromInt(5)))

	order := testOrder(t, &vendor.ID)

	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	vendorRepo.On("FindByID", mock.Anything, vendor.ID).Return(vendor, nil)

	resp, err := service.ComputeCommission(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, "vendor", resp.RateSource)
	assert.Equal(t, "500.00", resp.CommissionAmount.StringFixed(2))
}

func TestOrderService_ComputeCommission_MissingVendorDegradesToZero(t *testing.T) {
	service, orderRepo, _, _, vendorRepo := newTestService()
	vendorID := uuid.New()
	order := testOrder(t, &vendorID)

	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	vendorRepo.On("FindByID", mock.Anything, vendorID).Return(nil, shared.ErrNotFound)

	resp, err := service.ComputeCommission(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, "none", resp.RateSource)
	assert.True(t, resp.CommissionAmount.IsZero())
}

// =============================================================================
// Transition Tests
// =============================================================================

func TestOrderService_Transitions(t *testing.T) {
	service, orderRepo, _, _, _ := newTestService()
	order := testOrder(t, nil)

	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	orderRepo.On("SaveWithLock", mock.Anything, order).Return(nil)

	resp, err := service.Start(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.OrderStatusEnProceso.String(), resp.Status)

	resp, err = service.Finish(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.OrderStatusTerminada.String(), resp.Status)

	resp, err = service.Deliver(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.OrderStatusEntregada.String(), resp.Status)

	// terminal: no further transitions
	_, err = service.Cancel(context.Background(), order.ID, CancelOrderRequest{Reason: "tarde"})
	assert.Error(t, err)
}

// =============================================================================
// Deactivate Tests
// =============================================================================

func TestOrderService_Deactivate_DetachesInvoices(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	invoiceRepo := new(MockInvoiceRepository)
	service := NewOrderService(orderRepo, new(MockExpenseLineRepository), new(MockClientRepository), new(MockVendorRepository), invoiceRepo)

	order := testOrder(t, nil)
	invoice, err := billing.NewInvoice("A-1001", &order.ID, time.Now(), valueobject.NewMoneyMXNFromFloat(1000))
	require.NoError(t, err)

	invoiceRepo.On("FindByOrder", mock.Anything, order.ID).Return([]billing.Invoice{*invoice}, nil)
	invoiceRepo.On("SaveWithLock", mock.Anything, mock.MatchedBy(func(inv *billing.Invoice) bool {
		return inv.ID == invoice.ID && inv.OrderID == nil
	})).Return(nil)
	orderRepo.On("Deactivate", mock.Anything, order.ID).Return(nil)

	require.NoError(t, service.Deactivate(context.Background(), order.ID))

	// invoices survive as orphans, the order row is gone
	invoiceRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	invoiceRepo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestOrderService_Deactivate_NoInvoices(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	invoiceRepo := new(MockInvoiceRepository)
	service := NewOrderService(orderRepo, new(MockExpenseLineRepository), new(MockClientRepository), new(MockVendorRepository), invoiceRepo)

	id := uuid.New()
	invoiceRepo.On("FindByOrder", mock.Anything, id).Return([]billing.Invoice{}, nil)
	orderRepo.On("Deactivate", mock.Anything, id).Return(nil)

	require.NoError(t, service.Deactivate(context.Background(), id))
	invoiceRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}
