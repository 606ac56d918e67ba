package orders

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventas/backend/internal/domain/shared/valueobject"
)

func createTestOrder(t *testing.T) *Order {
	vendorID := uuid.New()
	order, err := NewOrder(
		"PED-2024-001",
		uuid.New(),
		&vendorID,
		time.Now(),
		valueobject.NewMoneyMXNFromFloat(5000.00),
	)
	require.NoError(t, err)
	return order
}

// ============================================
// OrderStatus Tests
// ============================================

func TestOrderStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  OrderStatus
		isValid bool
	}{
		{OrderStatusCreada, true},
		{OrderStatusEnProceso, true},
		{OrderStatusTerminada, true},
		{OrderStatusEntregada, true},
		{OrderStatusCancelado, true},
		{OrderStatus("INVALID"), false},
		{OrderStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusEntregada.IsTerminal())
	assert.True(t, OrderStatusCancelado.IsTerminal())
	assert.False(t, OrderStatusCreada.IsTerminal())
	assert.False(t, OrderStatusEnProceso.IsTerminal())
	assert.False(t, OrderStatusTerminada.IsTerminal())
}

// ============================================
// NewOrder Tests
// ============================================

func TestNewOrder(t *testing.T) {
	order := createTestOrder(t)

	assert.Equal(t, OrderStatusCreada, order.Status)
	assert.Equal(t, "5000.00", order.SaleSubtotal.StringFixed(2))
	assert.Equal(t, "5800.00", order.SaleTotal.StringFixed(2))
	assert.True(t, order.WorkProgress.IsZero())
	assert.True(t, order.OperationalExpenseTotal.IsZero())
	assert.True(t, order.IndirectExpenseTotal.IsZero())
	assert.Nil(t, order.CommissionRate)
	assert.True(t, order.IsActive())
}

func TestNewOrder_Validation(t *testing.T) {
	t.Run("empty order number", func(t *testing.T) {
		_, err := NewOrder("", uuid.New(), nil, time.Now(), valueobject.ZeroMXN())
		assert.Error(t, err)
	})

	t.Run("empty client", func(t *testing.T) {
		_, err := NewOrder("PED-1", uuid.Nil, nil, time.Now(), valueobject.ZeroMXN())
		assert.Error(t, err)
	})

	t.Run("negative subtotal", func(t *testing.T) {
		_, err := NewOrder("PED-1", uuid.New(), nil, time.Now(), valueobject.NewMoneyMXNFromFloat(-1))
		assert.Error(t, err)
	})

	t.Run("vendor is optional", func(t *testing.T) {
		order, err := NewOrder("PED-1", uuid.New(), nil, time.Now(), valueobject.ZeroMXN())
		require.NoError(t, err)
		assert.Nil(t, order.VendorID)
	})
}

// ============================================
// Amount and progress mutations
// ============================================

func TestOrder_SetSaleSubtotal_RederivesTotal(t *testing.T) {
	order := createTestOrder(t)

	err := order.SetSaleSubtotal(valueobject.NewMoneyMXNFromFloat(1000.00))
	require.NoError(t, err)

	assert.Equal(t, "1000.00", order.SaleSubtotal.StringFixed(2))
	assert.Equal(t, "1160.00", order.SaleTotal.StringFixed(2))
}

func TestOrder_SetWorkProgress(t *testing.T) {
	order := createTestOrder(t)

	require.NoError(t, order.SetWorkProgress(decimal.NewFromInt(75)))
	assert.Equal(t, "75.00", order.WorkProgress.StringFixed(2))

	assert.Error(t, order.SetWorkProgress(decimal.NewFromInt(-1)))
	assert.Error(t, order.SetWorkProgress(decimal.NewFromInt(101)))
	// Rejected values leave the previous progress untouched.
	assert.Equal(t, "75.00", order.WorkProgress.StringFixed(2))
}

func TestOrder_SetCommissionRate_ClampsOverride(t *testing.T) {
	order := createTestOrder(t)

	rate := decimal.NewFromInt(150)
	order.SetCommissionRate(&rate)

	require.NotNil(t, order.CommissionRate)
	assert.Equal(t, "100.00", order.CommissionRate.StringFixed(2))

	order.SetCommissionRate(nil)
	assert.Nil(t, order.CommissionRate)
}

// ============================================
// Status transitions
// ============================================

func TestOrder_StatusTransitions(t *testing.T) {
	order := createTestOrder(t)

	require.NoError(t, order.Start())
	assert.Equal(t, OrderStatusEnProceso, order.Status)

	require.NoError(t, order.Finish())
	assert.Equal(t, OrderStatusTerminada, order.Status)

	require.NoError(t, order.Deliver())
	assert.Equal(t, OrderStatusEntregada, order.Status)
}

func TestOrder_StatusTransitions_InvalidFromState(t *testing.T) {
	order := createTestOrder(t)

	assert.Error(t, order.Finish())
	assert.Error(t, order.Deliver())

	require.NoError(t, order.Start())
	assert.Error(t, order.Start())
}

func TestOrder_Cancel(t *testing.T) {
	order := createTestOrder(t)
	require.NoError(t, order.Start())

	err := order.Cancel("client withdrew the job")
	require.NoError(t, err)

	assert.True(t, order.IsCancelled())
	assert.NotNil(t, order.CancelledAt)
	assert.Equal(t, "client withdrew the job", order.CancelReason)
}

func TestOrder_Cancel_IsOneWay(t *testing.T) {
	order := createTestOrder(t)
	require.NoError(t, order.Cancel("duplicate entry"))

	assert.Error(t, order.Start())
	assert.Error(t, order.Cancel("again"))
	assert.Error(t, order.SetSaleSubtotal(valueobject.NewMoneyMXNFromFloat(1)))
	assert.Equal(t, OrderStatusCancelado, order.Status)
}

func TestOrder_Cancel_RequiresReason(t *testing.T) {
	order := createTestOrder(t)
	assert.Error(t, order.Cancel(""))
	assert.Equal(t, OrderStatusCreada, order.Status)
}

// ============================================
// Expense roll-up refresh
// ============================================

func TestOrder_RefreshExpenseTotals(t *testing.T) {
	order := createTestOrder(t)

	order.RefreshExpenseTotals(decimal.NewFromFloat(350.50), decimal.NewFromFloat(120.00))

	assert.Equal(t, "350.50", order.OperationalExpenseTotal.StringFixed(2))
	assert.Equal(t, "120.00", order.IndirectExpenseTotal.StringFixed(2))
}

// ============================================
// ExpenseLine Tests
// ============================================

func TestNewExpenseLine(t *testing.T) {
	orderID := uuid.New()
	line, err := NewExpenseLine(orderID, ExpenseLineOperativo, valueobject.NewMoneyMXNFromFloat(250.00), "freight", time.Now())
	require.NoError(t, err)

	assert.Equal(t, orderID, line.OrderID)
	assert.Equal(t, ExpenseLineOperativo, line.Kind)
	assert.Equal(t, "250.00", line.Amount.StringFixed(2))
	assert.Nil(t, line.CommissionRate)
}

func TestNewExpenseLine_Validation(t *testing.T) {
	t.Run("empty order", func(t *testing.T) {
		_, err := NewExpenseLine(uuid.Nil, ExpenseLineOperativo, valueobject.ZeroMXN(), "", time.Now())
		assert.Error(t, err)
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := NewExpenseLine(uuid.New(), ExpenseLineKind("OTRA"), valueobject.ZeroMXN(), "", time.Now())
		assert.Error(t, err)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := NewExpenseLine(uuid.New(), ExpenseLineIndirecto, valueobject.NewMoneyMXNFromFloat(-10), "", time.Now())
		assert.Error(t, err)
	})
}

func TestExpenseLine_SnapshotCommissionRate(t *testing.T) {
	line, err := NewExpenseLine(uuid.New(), ExpenseLineIndirecto, valueobject.NewMoneyMXNFromFloat(10), "", time.Now())
	require.NoError(t, err)

	line.SnapshotCommissionRate(decimal.NewFromInt(120))

	require.NotNil(t, line.CommissionRate)
	assert.Equal(t, "100.00", line.CommissionRate.StringFixed(2))
}
