package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ventas/backend/internal/domain/billing"
	"github.com/ventas/backend/internal/domain/orders"
	"github.com/ventas/backend/internal/domain/partner"
	"github.com/ventas/backend/internal/domain/shared"
	"github.com/ventas/backend/internal/domain/shared/valueobject"
)

// InvoiceService handles invoice-related business operations
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	orderRepo   orders.OrderRepository
	clientRepo  partner.ClientRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, orderRepo orders.OrderRepository, clientRepo partner.ClientRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
	}
}

// Create creates a new invoice
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	exists, err := s.invoiceRepo.ExistsByFolio(ctx, req.Folio)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this folio already exists")
	}

	// Creating against a missing order is an error; orphaned invoices only
	// arise later, when an order is removed.
	if req.OrderID != nil {
		if _, err := s.orderRepo.FindByID(ctx, *req.OrderID); err != nil {
			return nil, err
		}
	}

	invoice, err := billing.NewInvoice(req.Folio, req.OrderID, req.InvoiceDate, valueobject.NewMoneyMXN(req.Subtotal))
	if err != nil {
		return nil, err
	}
	if req.Remark != "" {
		invoice.SetRemark(req.Remark)
	}
	if req.CreatedBy != nil {
		invoice.CreatedBy = req.CreatedBy
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice, time.Now())
	return &response, nil
}

// GetByID retrieves an invoice by ID with its evaluated status
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice, time.Now())
	return &response, nil
}

// GetByFolio retrieves an invoice by folio
func (s *InvoiceService) GetByFolio(ctx context.Context, folio string) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByFolio(ctx, folio)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice, time.Now())
	return &response, nil
}

// Receive records the reception of an invoice and derives its due date from
// the owning client's credit term. An explicit credit-days override in the
// request wins; an orphaned invoice falls back to the default term.
func (s *InvoiceService) Receive(ctx context.Context, id uuid.UUID, req ReceiveInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	creditDays := partner.DefaultCreditDays
	if req.CreditDays != nil {
		creditDays = *req.CreditDays
	} else if invoice.OrderID != nil {
		order, err := s.orderRepo.FindByID(ctx, *invoice.OrderID)
		if err != nil {
			return nil, err
		}
		client, err := s.clientRepo.FindByID(ctx, order.ClientID)
		if err != nil {
			return nil, err
		}
		creditDays = client.CreditDays
	}

	invoice.Receive(req.ReceptionDate, creditDays)

	if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice, time.Now())
	return &response, nil
}

// ClearReception removes the reception date and the derived due date
func (s *InvoiceService) ClearReception(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	invoice.ClearReception()

	if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice, time.Now())
	return &response, nil
}

// SetDueDate sets or clears the due date directly, without touching the
// reception date
func (s *InvoiceService) SetDueDate(ctx context.Context, id uuid.UUID, req SetDueDateRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	invoice.SetDueDate(req.DueDate)

	if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice, time.Now())
	return &response, nil
}

// RegisterPayment records the payment date of an invoice
func (s *InvoiceService) RegisterPayment(ctx context.Context, id uuid.UUID, req RegisterPaymentRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.RegisterPayment(req.PaymentDate); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice, time.Now())
	return &response, nil
}

// UpdateSubtotal replaces the subtotal, rederiving the total
func (s *InvoiceService) UpdateSubtotal(ctx context.Context, id uuid.UUID, req UpdateSubtotalRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.SetSubtotal(valueobject.NewMoneyMXN(req.Subtotal)); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice, time.Now())
	return &response, nil
}

// OverrideTotal sets the invoice total directly without rederiving it
func (s *InvoiceService) OverrideTotal(ctx context.Context, id uuid.UUID, req OverrideTotalRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.OverrideTotal(valueobject.NewMoneyMXN(req.Total)); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice, time.Now())
	return &response, nil
}

// List retrieves invoices with filtering and pagination. The status filter is
// applied in memory after the fetch: status is derived from dates at read
// time and cannot be pushed into the query.
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "invoice_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := billing.InvoiceFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
			Search:   filter.Search,
		},
		OrderID:  filter.OrderID,
		Paid:     filter.Paid,
		Orphaned: filter.Orphaned,
	}

	// Status is derived from dates, never stored, so the database cannot
	// paginate a status query: fetch the full match set, evaluate, then page
	// the filtered result. Total reflects the filtered count.
	if filter.Status != "" {
		domainFilter.Page = 0
		domainFilter.PageSize = 0

		invoices, err := s.invoiceRepo.FindAll(ctx, domainFilter)
		if err != nil {
			return nil, 0, err
		}

		now := time.Now()
		matched := make([]InvoiceResponse, 0, len(invoices))
		for i := range invoices {
			resp := ToInvoiceResponse(&invoices[i], now)
			if resp.Status == filter.Status {
				matched = append(matched, resp)
			}
		}

		total := int64(len(matched))
		start := (filter.Page - 1) * filter.PageSize
		if start >= len(matched) {
			return []InvoiceResponse{}, total, nil
		}
		end := start + filter.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		return matched[start:end], total, nil
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.invoiceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, ToInvoiceResponse(&invoices[i], now))
	}

	return responses, total, nil
}

// ListByOrder retrieves all invoices owned by an order
func (s *InvoiceService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]InvoiceResponse, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}

	invoices, err := s.invoiceRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, ToInvoiceResponse(&invoices[i], now))
	}
	return responses, nil
}

// Deactivate soft-deletes an invoice
func (s *InvoiceService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.invoiceRepo.Deactivate(ctx, id)
}
