package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ventas/backend/internal/domain/shared"
)

// OrderFilter defines filtering options for order queries
type OrderFilter struct {
	shared.Filter
	ClientID *uuid.UUID   // Filter by client
	VendorID *uuid.UUID   // Filter by vendor
	Status   *OrderStatus // Filter by status
	FromDate *time.Time   // Filter by order date range start
	ToDate   *time.Time   // Filter by order date range end
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindByIDs finds orders by a batch of IDs; missing IDs are simply
	// absent from the result
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Order, error)

	// FindAll finds orders with filtering
	FindAll(ctx context.Context, filter OrderFilter) ([]Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, order *Order) error

	// Deactivate soft-deletes an order
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// ExistsByOrderNumber checks if an order number is already in use
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
}

// ExpenseLineRepository defines the interface for order expense line
// persistence
type ExpenseLineRepository interface {
	// FindByID finds an expense line by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ExpenseLine, error)

	// FindByOrder finds all expense lines owned by an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]ExpenseLine, error)

	// FindByOrderAndKind finds an order's expense lines of one kind
	FindByOrderAndKind(ctx context.Context, orderID uuid.UUID, kind ExpenseLineKind) ([]ExpenseLine, error)

	// FindByOrderIDs finds expense lines for any of the given orders,
	// used for batch expense aggregation
	FindByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]ExpenseLine, error)

	// Save creates or updates an expense line
	Save(ctx context.Context, line *ExpenseLine) error

	// Deactivate soft-deletes an expense line
	Deactivate(ctx context.Context, id uuid.UUID) error
}
