package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ventas/backend/internal/domain/partner"
	"github.com/ventas/backend/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

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
// Client Service Tests
// =============================================================================

func TestClientService_Create_DefaultCreditDays(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Client")).Return(nil)

	resp, err := service.Create(context.Background(), CreateClientRequest{
		Name: "Aceros del Norte SA de CV",
	})

	require.NoError(t, err)
	assert.Equal(t, partner.DefaultCreditDays, resp.CreditDays)
}

func TestClientService_Create_ExplicitCreditDays(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Client")).Return(nil)

	days := 60
	resp, err := service.Create(context.Background(), CreateClientRequest{
		Name:       "Aceros del Norte SA de CV",
		CreditDays: &days,
	})

	require.NoError(t, err)
	assert.Equal(t, 60, resp.CreditDays)
}

func TestClientService_AddContact(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	client, err := partner.NewClient("Aceros del Norte SA de CV")
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	repo.On("Save", mock.Anything, client).Return(nil)

	resp, err := service.AddContact(context.Background(), client.ID, AddContactRequest{
		Name:  "Laura Mendoza",
		Role:  "Compras",
		Email: "laura@acerosnorte.mx",
	})

	require.NoError(t, err)
	assert.True(t, resp.IsPrimary)
}

func TestClientService_SetPrimaryContact(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	client, err := partner.NewClient("Aceros del Norte SA de CV")
	require.NoError(t, err)
	_, err = client.AddContact("Laura Mendoza", "Compras", "", "")
	require.NoError(t, err)
	second, err := client.AddContact("Pedro Ruiz", "Pagos", "", "")
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	repo.On("Save", mock.Anything, client).Return(nil)

	resp, err := service.SetPrimaryContact(context.Background(), client.ID, second.ID)
	require.NoError(t, err)

	primaries := 0
	for _, c := range resp.Contacts {
		if c.IsPrimary {
			primaries++
			assert.Equal(t, "Pedro Ruiz", c.Name)
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestClientService_Update_PartialFields(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	client, err := partner.NewClient("Aceros del Norte SA de CV")
	require.NoError(t, err)
	require.NoError(t, client.SetCreditDays(45))

	repo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	repo.On("Save", mock.Anything, client).Return(nil)

	city := "Monterrey"
	resp, err := service.Update(context.Background(), client.ID, UpdateClientRequest{City: &city})

	require.NoError(t, err)
	assert.Equal(t, "Monterrey", resp.City)
	assert.Equal(t, 45, resp.CreditDays)
	assert.Equal(t, "Aceros del Norte SA de CV", resp.Name)
}
