package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/ventas/backend/internal/domain/partner"
)

// VendorService handles vendor-related business operations
type VendorService struct {
	vendorRepo partner.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo partner.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// Create creates a new vendor
func (s *VendorService) Create(ctx context.Context, req CreateVendorRequest) (*VendorResponse, error) {
	vendor, err := partner.NewVendor(req.Name)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" || req.Email != "" {
		if err := vendor.SetContact(req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.CommissionRate != nil {
		if err := vendor.SetCommissionRate(*req.CommissionRate); err != nil {
			return nil, err
		}
	}
	if req.UserID != nil {
		if err := vendor.LinkUser(*req.UserID); err != nil {
			return nil, err
		}
	}
	if req.CreatedBy != nil {
		vendor.CreatedBy = req.CreatedBy
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(ctx context.Context, id uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// SetCommissionRate sets a vendor's default commission rate
func (s *VendorService) SetCommissionRate(ctx context.Context, id uuid.UUID, req SetVendorCommissionRateRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := vendor.SetCommissionRate(req.CommissionRate); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// List retrieves vendors with filtering and pagination
func (s *VendorService) List(ctx context.Context, filter PartnerListFilter) ([]VendorResponse, int64, error) {
	domainFilter := toDomainFilter(filter, "name")

	vendors, err := s.vendorRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.vendorRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]VendorResponse, 0, len(vendors))
	for i := range vendors {
		responses = append(responses, ToVendorResponse(&vendors[i]))
	}
	return responses, total, nil
}

// Deactivate soft-deletes a vendor
func (s *VendorService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.vendorRepo.Deactivate(ctx, id)
}
