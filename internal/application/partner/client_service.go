package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/ventas/backend/internal/domain/partner"
	"github.com/ventas/backend/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := partner.NewClient(req.Name)
	if err != nil {
		return nil, err
	}

	if req.ShortName != "" {
		if err := client.Update(req.Name, req.ShortName); err != nil {
			return nil, err
		}
	}
	if req.TaxID != "" {
		if err := client.SetTaxID(req.TaxID); err != nil {
			return nil, err
		}
	}
	if req.Address != "" || req.City != "" || req.State != "" || req.PostalCode != "" {
		if err := client.SetAddress(req.Address, req.City, req.State, req.PostalCode); err != nil {
			return nil, err
		}
	}
	if req.CreditDays != nil {
		if err := client.SetCreditDays(*req.CreditDays); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		client.SetNotes(req.Notes)
	}
	if req.CreatedBy != nil {
		client.CreatedBy = req.CreatedBy
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Update updates a client's information
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := client.Name
	if req.Name != nil {
		name = *req.Name
	}
	shortName := client.ShortName
	if req.ShortName != nil {
		shortName = *req.ShortName
	}
	if err := client.Update(name, shortName); err != nil {
		return nil, err
	}

	if req.TaxID != nil {
		if err := client.SetTaxID(*req.TaxID); err != nil {
			return nil, err
		}
	}
	if req.Address != nil || req.City != nil || req.State != nil || req.PostalCode != nil {
		address, city, state, postalCode := client.Address, client.City, client.State, client.PostalCode
		if req.Address != nil {
			address = *req.Address
		}
		if req.City != nil {
			city = *req.City
		}
		if req.State != nil {
			state = *req.State
		}
		if req.PostalCode != nil {
			postalCode = *req.PostalCode
		}
		if err := client.SetAddress(address, city, state, postalCode); err != nil {
			return nil, err
		}
	}
	if req.CreditDays != nil {
		if err := client.SetCreditDays(*req.CreditDays); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		client.SetNotes(*req.Notes)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// AddContact adds a contact to a client
func (s *ClientService) AddContact(ctx context.Context, clientID uuid.UUID, req AddContactRequest) (*ContactResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	contact, err := client.AddContact(req.Name, req.Role, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// SetPrimaryContact marks a contact as the client's primary one
func (s *ClientService) SetPrimaryContact(ctx context.Context, clientID, contactID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if err := client.SetPrimaryContact(contactID); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// RemoveContact removes a contact from a client
func (s *ClientService) RemoveContact(ctx context.Context, clientID, contactID uuid.UUID) error {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return err
	}

	if err := client.RemoveContact(contactID); err != nil {
		return err
	}

	return s.clientRepo.Save(ctx, client)
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter PartnerListFilter) ([]ClientResponse, int64, error) {
	domainFilter := toDomainFilter(filter, "name")

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, ToClientResponse(&clients[i]))
	}
	return responses, total, nil
}

// Deactivate soft-deletes a client
func (s *ClientService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.clientRepo.Deactivate(ctx, id)
}

func toDomainFilter(filter PartnerListFilter, defaultOrderBy string) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = defaultOrderBy
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}
	return shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}
}
