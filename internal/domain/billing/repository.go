package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ventas/backend/internal/domain/shared"
)

// InvoiceFilter defines filtering options for invoice queries
type InvoiceFilter struct {
	shared.Filter
	OrderID  *uuid.UUID     // Filter by owning order
	Status   *InvoiceStatus // Filter by evaluated status (applied in memory by callers)
	FromDate *time.Time     // Filter by invoice date range start
	ToDate   *time.Time     // Filter by invoice date range end
	Paid     *bool          // Filter by presence of a payment date
	Orphaned *bool          // Filter invoices without an owning order
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByFolio finds an invoice by its folio
	FindByFolio(ctx context.Context, folio string) (*Invoice, error)

	// FindByOrder finds all invoices owned by an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Invoice, error)

	// FindByOrderIDs finds all invoices owned by any of the given orders,
	// used for batch billing aggregation
	FindByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]Invoice, error)

	// FindAll finds invoices with filtering
	FindAll(ctx context.Context, filter InvoiceFilter) ([]Invoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, invoice *Invoice) error

	// Deactivate soft-deletes an invoice
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter InvoiceFilter) (int64, error)

	// ExistsByFolio checks if a folio is already in use
	ExistsByFolio(ctx context.Context, folio string) (bool, error)
}
