package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ventas/backend/internal/domain/shared"
)

// SupplierExpenseFilter defines filtering options for supplier expense
// queries
type SupplierExpenseFilter struct {
	shared.Filter
	SupplierID *uuid.UUID     // Filter by supplier
	OrderID    *uuid.UUID     // Filter by attributed order
	Status     *ExpenseStatus // Filter by payment status
	Category   *string        // Filter by category tag
	FromDate   *time.Time     // Filter by expense date range start
	ToDate     *time.Time     // Filter by expense date range end
}

// SupplierExpenseRepository defines the interface for supplier expense
// persistence
type SupplierExpenseRepository interface {
	// FindByID finds a supplier expense by ID
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierExpense, error)

	// FindByOrder finds all supplier expenses attributed to an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]SupplierExpense, error)

	// FindByOrderIDs finds supplier expenses attributed to any of the
	// given orders, used for batch expense aggregation
	FindByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]SupplierExpense, error)

	// FindBySupplier finds supplier expenses for a supplier
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter SupplierExpenseFilter) ([]SupplierExpense, error)

	// FindAll finds supplier expenses with filtering
	FindAll(ctx context.Context, filter SupplierExpenseFilter) ([]SupplierExpense, error)

	// Save creates or updates a supplier expense
	Save(ctx context.Context, expense *SupplierExpense) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, expense *SupplierExpense) error

	// Deactivate soft-deletes a supplier expense
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Count counts supplier expenses matching the filter
	Count(ctx context.Context, filter SupplierExpenseFilter) (int64, error)
}
