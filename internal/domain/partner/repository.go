package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/ventas/backend/internal/domain/shared"
)

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindByID finds a client by ID, contacts included
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindAll finds clients with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)

	// Save creates or updates a client and its contacts
	Save(ctx context.Context, client *Client) error

	// Deactivate soft-deletes a client
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Count counts clients matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// VendorRepository defines the interface for vendor persistence
type VendorRepository interface {
	// FindByID finds a vendor by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)

	// FindByUser finds the vendor linked to a user account
	FindByUser(ctx context.Context, userID uuid.UUID) (*Vendor, error)

	// FindAll finds vendors with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Vendor, error)

	// Save creates or updates a vendor
	Save(ctx context.Context, vendor *Vendor) error

	// Deactivate soft-deletes a vendor
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Count counts vendors matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindAll finds suppliers with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// Deactivate soft-deletes a supplier
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Count counts suppliers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
