package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ventas/backend/internal/domain/orders"
	"github.com/ventas/backend/internal/domain/shared"
	"github.com/ventas/backend/internal/infrastructure/persistence/models"
)

// GormExpenseLineRepository implements ExpenseLineRepository using GORM.
// Reads exclude deactivated lines so roll-up refreshes never count removed
// cost lines.
type GormExpenseLineRepository struct {
	db *gorm.DB
}

// NewGormExpenseLineRepository creates a new GormExpenseLineRepository
func NewGormExpenseLineRepository(db *gorm.DB) *GormExpenseLineRepository {
	return &GormExpenseLineRepository{db: db}
}

// FindByID finds an expense line by its ID
func (r *GormExpenseLineRepository) FindByID(ctx context.Context, id uuid.UUID) (*orders.ExpenseLine, error) {
	var model models.OrderExpenseLineModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrder finds all active expense lines owned by an order
func (r *GormExpenseLineRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]orders.ExpenseLine, error) {
	var lineModels []models.OrderExpenseLineModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND active = ?", orderID, true).
		Order("expense_date ASC, created_at ASC").
		Find(&lineModels).Error; err != nil {
		return nil, err
	}
	return toDomainExpenseLines(lineModels), nil
}

// FindByOrderAndKind finds an order's active expense lines of one kind
func (r *GormExpenseLineRepository) FindByOrderAndKind(ctx context.Context, orderID uuid.UUID, kind orders.ExpenseLineKind) ([]orders.ExpenseLine, error) {
	var lineModels []models.OrderExpenseLineModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND kind = ? AND active = ?", orderID, kind.String(), true).
		Order("expense_date ASC, created_at ASC").
		Find(&lineModels).Error; err != nil {
		return nil, err
	}
	return toDomainExpenseLines(lineModels), nil
}

// FindByOrderIDs finds active expense lines for any of the given orders
func (r *GormExpenseLineRepository) FindByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]orders.ExpenseLine, error) {
	if len(orderIDs) == 0 {
		return []orders.ExpenseLine{}, nil
	}

	var lineModels []models.OrderExpenseLineModel
	if err := r.db.WithContext(ctx).
		Where("order_id IN ? AND active = ?", orderIDs, true).
		Find(&lineModels).Error; err != nil {
		return nil, err
	}
	return toDomainExpenseLines(lineModels), nil
}

// Save creates or updates an expense line
func (r *GormExpenseLineRepository) Save(ctx context.Context, line *orders.ExpenseLine) error {
	model := models.OrderExpenseLineModelFromDomain(line)
	return r.db.WithContext(ctx).Save(model).Error
}

// Deactivate soft-deletes an expense line
func (r *GormExpenseLineRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.OrderExpenseLineModel{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainExpenseLines(lineModels []models.OrderExpenseLineModel) []orders.ExpenseLine {
	lines := make([]orders.ExpenseLine, len(lineModels))
	for i := range lineModels {
		lines[i] = *lineModels[i].ToDomain()
	}
	return lines
}

// Ensure GormExpenseLineRepository implements ExpenseLineRepository
var _ orders.ExpenseLineRepository = (*GormExpenseLineRepository)(nil)
