package expense

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventas/backend/internal/domain/orders"
	"github.com/ventas/backend/internal/domain/shared/valueobject"
)

func supplierExpense(t *testing.T, total float64, paid bool) SupplierExpense {
	orderID := uuid.New()
	e, err := NewSupplierExpense(uuid.New(), &orderID, "materials", time.Now(), valueobject.NewMoneyMXNFromFloat(total))
	require.NoError(t, err)
	if paid {
		require.NoError(t, e.MarkPaid(time.Now(), "TRANSFERENCIA"))
	}
	return *e
}

func expenseLine(t *testing.T, kind orders.ExpenseLineKind, amount float64) orders.ExpenseLine {
	line, err := orders.NewExpenseLine(uuid.New(), kind, valueobject.NewMoneyMXNFromFloat(amount), "line", time.Now())
	require.NoError(t, err)
	return *line
}

// ============================================
// SummarizeSupplierExpenses Tests
// ============================================

func TestSummarizeSupplierExpenses(t *testing.T) {
	expenses := []SupplierExpense{
		supplierExpense(t, 1000, true),
		supplierExpense(t, 500, false),
		supplierExpense(t, 250, false),
	}

	material, pending, count := SummarizeSupplierExpenses(expenses)

	assert.Equal(t, "1750.00", material.StringFixed(2))
	assert.Equal(t, "750.00", pending.StringFixed(2))
	assert.Equal(t, 3, count)
}

func TestSummarizeSupplierExpenses_Empty(t *testing.T) {
	material, pending, count := SummarizeSupplierExpenses(nil)

	assert.True(t, material.IsZero())
	assert.True(t, pending.IsZero())
	assert.Zero(t, count)
}

func TestSummarizeSupplierExpenses_AllPaid(t *testing.T) {
	expenses := []SupplierExpense{
		supplierExpense(t, 100, true),
		supplierExpense(t, 200, true),
	}

	material, pending, _ := SummarizeSupplierExpenses(expenses)

	assert.Equal(t, "300.00", material.StringFixed(2))
	assert.True(t, pending.IsZero())
}

// ============================================
// SumExpenseLines Tests
// ============================================

func TestSumExpenseLines(t *testing.T) {
	lines := []orders.ExpenseLine{
		expenseLine(t, orders.ExpenseLineOperativo, 100),
		expenseLine(t, orders.ExpenseLineOperativo, 50.50),
		expenseLine(t, orders.ExpenseLineIndirecto, 25),
	}

	assert.Equal(t, "150.50", SumExpenseLines(lines, orders.ExpenseLineOperativo).StringFixed(2))
	assert.Equal(t, "25.00", SumExpenseLines(lines, orders.ExpenseLineIndirecto).StringFixed(2))
}

func TestSumExpenseLines_Empty(t *testing.T) {
	assert.True(t, SumExpenseLines(nil, orders.ExpenseLineOperativo).IsZero())
}

// ============================================
// Breakdown Tests
// ============================================

func TestNewBreakdown_ZeroValued(t *testing.T) {
	b := NewBreakdown(uuid.New())

	assert.True(t, b.MaterialExpense.IsZero())
	assert.True(t, b.MaterialExpensePending.IsZero())
	assert.True(t, b.OperationalExpense.IsZero())
	assert.True(t, b.IndirectExpense.IsZero())
	assert.Zero(t, b.SupplierInvoiceCount)
	assert.Empty(t, b.Warnings)
}

func TestBreakdown_TotalExpense(t *testing.T) {
	b := NewBreakdown(uuid.New())
	b.MaterialExpense = decimal.NewFromInt(1000)
	b.OperationalExpense = decimal.NewFromInt(200)
	b.IndirectExpense = decimal.NewFromInt(50)

	assert.Equal(t, "1250.00", b.TotalExpense().StringFixed(2))
}

func TestBreakdown_AddWarning(t *testing.T) {
	b := NewBreakdown(uuid.New())
	b.AddWarning("material expense source unavailable")

	require.Len(t, b.Warnings, 1)
}
