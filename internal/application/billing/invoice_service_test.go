package billing

import (
	"context"
	"fmt"
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

// =============================================================================
// Test Helpers
// =============================================================================

func newTestService() (*InvoiceService, *MockInvoiceRepository, *MockOrderRepository, *MockClientRepository) {
	invoiceRepo := new(MockInvoiceRepository)
	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	return NewInvoiceService(invoiceRepo, orderRepo, clientRepo), invoiceRepo, orderRepo, clientRepo
}

func testOrder(t *testing.T, clientID uuid.UUID) *orders.Order {
	order, err := orders.NewOrder("OT-2024-001", clientID, nil, time.Now(), valueobject.NewMoneyMXNFromFloat(10000))
	require.NoError(t, err)
	return order
}

func testInvoice(t *testing.T, orderID *uuid.UUID) *billing.Invoice {
	invoice, err := billing.NewInvoice("A-1001", orderID, time.Now(), valueobject.NewMoneyMXNFromFloat(1000))
	require.NoError(t, err)
	return invoice
}

// =============================================================================
// Create Tests
// =============================================================================

func TestInvoiceService_Create(t *testing.T) {
	service, invoiceRepo, orderRepo, _ := newTestService()
	clientID := uuid.New()
	order := testOrder(t, clientID)

	invoiceRepo.On("ExistsByFolio", mock.Anything, "A-1001").Return(false, nil)
	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	invoiceRepo.On("Save", mock.Anything, mock.AnythingOfType("*billing.Invoice")).Return(nil)

	resp, err := service.Create(context.Background(), CreateInvoiceRequest{
		Folio:       "A-1001",
		OrderID:     &order.ID,
		InvoiceDate: time.Now(),
		Subtotal:    decimal.NewFromInt(1000),
	})

	require.NoError(t, err)
	assert.Equal(t, "1160.00", resp.Total.StringFixed(2))
	assert.Equal(t, billing.InvoiceStatusCreada.String(), resp.Status)
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_Create_DuplicateFolio(t *testing.T) {
	service, invoiceRepo, _, _ := newTestService()

	invoiceRepo.On("ExistsByFolio", mock.Anything, "A-1001").Return(true, nil)

	_, err := service.Create(context.Background(), CreateInvoiceRequest{
		Folio:       "A-1001",
		InvoiceDate: time.Now(),
		Subtotal:    decimal.NewFromInt(1000),
	})

	assert.Error(t, err)
	invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInvoiceService_Create_MissingOrder(t *testing.T) {
	service, invoiceRepo, orderRepo, _ := newTestService()
	orderID := uuid.New()

	invoiceRepo.On("ExistsByFolio", mock.Anything, "A-1001").Return(false, nil)
	orderRepo.On("FindByID", mock.Anything, orderID).Return(nil, shared.ErrNotFound)

	_, err := service.Create(context.Background(), CreateInvoiceRequest{
		Folio:       "A-1001",
		OrderID:     &orderID,
		InvoiceDate: time.Now(),
		Subtotal:    decimal.NewFromInt(1000),
	})

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

// =============================================================================
// Receive Tests
// =============================================================================

func TestInvoiceService_Receive_UsesClientCreditDays(t *testing.T) {
	service, invoiceRepo, orderRepo, clientRepo := newTestService()

	client, err := partner.NewClient("Aceros del Norte SA de CV")
	require.NoError(t, err)
	require.NoError(t, client.SetCreditDays(45))

	order := testOrder(t, client.ID)
	invoice := testInvoice(t, &order.ID)

	invoiceRepo.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)
	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	invoiceRepo.On("SaveWithLock", mock.Anything, invoice).Return(nil)

	reception := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	resp, err := service.Receive(context.Background(), invoice.ID, ReceiveInvoiceRequest{ReceptionDate: reception})

	require.NoError(t, err)
	require.NotNil(t, resp.DueDate)
	assert.Equal(t, reception.AddDate(0, 0, 45), *resp.DueDate)
}

func TestInvoiceService_Receive_OrphanedUsesDefaultTerm(t *testing.T) {
	service, invoiceRepo, orderRepo, clientRepo := newTestService()
	invoice := testInvoice(t, nil)

	invoiceRepo.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)
	invoiceRepo.On("SaveWithLock", mock.Anything, invoice).Return(nil)

	reception := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	resp, err := service.Receive(context.Background(), invoice.ID, ReceiveInvoiceRequest{ReceptionDate: reception})

	require.NoError(t, err)
	require.NotNil(t, resp.DueDate)
	assert.Equal(t, reception.AddDate(0, 0, partner.DefaultCreditDays), *resp.DueDate)
	orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	clientRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestInvoiceService_Receive_ExplicitOverride(t *testing.T) {
	service, invoiceRepo, orderRepo, _ := newTestService()
	order := testOrder(t, uuid.New())
	invoice := testInvoice(t, &order.ID)

	invoiceRepo.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)
	invoiceRepo.On("SaveWithLock", mock.Anything, invoice).Return(nil)

	days := 15
	reception := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	resp, err := service.Receive(context.Background(), invoice.ID, ReceiveInvoiceRequest{
		ReceptionDate: reception,
		CreditDays:    &days,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.DueDate)
	assert.Equal(t, reception.AddDate(0, 0, 15), *resp.DueDate)
	orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// =============================================================================
// Payment Tests
// =============================================================================

func TestInvoiceService_RegisterPayment(t *testing.T) {
	service, invoiceRepo, _, _ := newTestService()
	invoice := testInvoice(t, nil)

	invoiceRepo.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)
	invoiceRepo.On("SaveWithLock", mock.Anything, invoice).Return(nil)

	resp, err := service.RegisterPayment(context.Background(), invoice.ID, RegisterPaymentRequest{PaymentDate: time.Now()})

	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusPagada.String(), resp.Status)
}

func TestInvoiceService_RegisterPayment_AlreadyPaid(t *testing.T) {
	service, invoiceRepo, _, _ := newTestService()
	invoice := testInvoice(t, nil)
	require.NoError(t, invoice.RegisterPayment(time.Now()))

	invoiceRepo.On("FindByID", mock.Anything, invoice.ID).Return(invoice, nil)

	_, err := service.RegisterPayment(context.Background(), invoice.ID, RegisterPaymentRequest{PaymentDate: time.Now()})

	assert.Error(t, err)
	invoiceRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

// =============================================================================
// List Tests
// =============================================================================

func TestInvoiceService_List_StatusFilterCountsFilteredSet(t *testing.T) {
	service, invoiceRepo, _, _ := newTestService()

	paid := testInvoice(t, nil)
	require.NoError(t, paid.RegisterPayment(time.Now()))
	pending, err := billing.NewInvoice("A-1002", nil, time.Now(), valueobject.NewMoneyMXNFromFloat(500))
	require.NoError(t, err)
	pending.Receive(time.Now().AddDate(0, 0, -5), 30)

	// status queries fetch the full match set, unpaginated
	invoiceRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f billing.InvoiceFilter) bool {
		return f.Page == 0 && f.PageSize == 0
	})).Return([]billing.Invoice{*paid, *pending}, nil)

	responses, total, err := service.List(context.Background(), InvoiceListFilter{Status: "PAGADA"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, responses, 1)
	assert.Equal(t, "A-1001", responses[0].Folio)
	invoiceRepo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestInvoiceService_List_StatusFilterPaginatesAfterFiltering(t *testing.T) {
	service, invoiceRepo, _, _ := newTestService()

	set := make([]billing.Invoice, 0, 4)
	for i := 0; i < 3; i++ {
		inv, err := billing.NewInvoice(fmt.Sprintf("B-100%d", i), nil, time.Now(), valueobject.NewMoneyMXNFromFloat(100))
		require.NoError(t, err)
		require.NoError(t, inv.RegisterPayment(time.Now()))
		set = append(set, *inv)
	}
	unpaid, err := billing.NewInvoice("B-2000", nil, time.Now(), valueobject.NewMoneyMXNFromFloat(100))
	require.NoError(t, err)
	set = append(set, *unpaid)

	invoiceRepo.On("FindAll", mock.Anything, mock.AnythingOfType("billing.InvoiceFilter")).
		Return(set, nil)

	responses, total, err := service.List(context.Background(), InvoiceListFilter{
		Status:   "PAGADA",
		Page:     2,
		PageSize: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, responses, 1)
	assert.Equal(t, "B-1002", responses[0].Folio)
}
