package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ventas/backend/internal/domain/expense"
	"github.com/ventas/backend/internal/domain/shared"
	"github.com/ventas/backend/internal/infrastructure/persistence/models"
)

// GormSupplierExpenseRepository implements SupplierExpenseRepository using GORM
type GormSupplierExpenseRepository struct {
	db *gorm.DB
}

// NewGormSupplierExpenseRepository creates a new GormSupplierExpenseRepository
func NewGormSupplierExpenseRepository(db *gorm.DB) *GormSupplierExpenseRepository {
	return &GormSupplierExpenseRepository{db: db}
}

// FindByID finds a supplier expense by its ID
func (r *GormSupplierExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*expense.SupplierExpense, error) {
	var model models.SupplierExpenseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrder finds all active supplier expenses attributed to an order
func (r *GormSupplierExpenseRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]expense.SupplierExpense, error) {
	var expenseModels []models.SupplierExpenseModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND active = ?", orderID, true).
		Order("expense_date ASC, created_at ASC").
		Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	return toDomainSupplierExpenses(expenseModels), nil
}

// FindByOrderIDs finds active supplier expenses attributed to any of the given orders
func (r *GormSupplierExpenseRepository) FindByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]expense.SupplierExpense, error) {
	if len(orderIDs) == 0 {
		return []expense.SupplierExpense{}, nil
	}

	var expenseModels []models.SupplierExpenseModel
	if err := r.db.WithContext(ctx).
		Where("order_id IN ? AND active = ?", orderIDs, true).
		Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	return toDomainSupplierExpenses(expenseModels), nil
}

// FindBySupplier finds supplier expenses for a supplier
func (r *GormSupplierExpenseRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter expense.SupplierExpenseFilter) ([]expense.SupplierExpense, error) {
	filter.SupplierID = &supplierID
	return r.FindAll(ctx, filter)
}

// FindAll finds supplier expenses matching the filter
func (r *GormSupplierExpenseRepository) FindAll(ctx context.Context, filter expense.SupplierExpenseFilter) ([]expense.SupplierExpense, error) {
	var expenseModels []models.SupplierExpenseModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SupplierExpenseModel{}), filter)

	if err := query.Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	return toDomainSupplierExpenses(expenseModels), nil
}

// Save creates or updates a supplier expense
func (r *GormSupplierExpenseRepository) Save(ctx context.Context, exp *expense.SupplierExpense) error {
	model := models.SupplierExpenseModelFromDomain(exp)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves a supplier expense with optimistic locking (version check)
func (r *GormSupplierExpenseRepository) SaveWithLock(ctx context.Context, exp *expense.SupplierExpense) error {
	model := models.SupplierExpenseModelFromDomain(exp)
	result := r.db.WithContext(ctx).
		Model(&models.SupplierExpenseModel{}).
		Where("id = ? AND version = ?", exp.ID, exp.Version-1).
		Select("*").
		Omit("created_at").
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Deactivate soft-deletes a supplier expense
func (r *GormSupplierExpenseRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.SupplierExpenseModel{}).
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

// Count counts supplier expenses matching the filter
func (r *GormSupplierExpenseRepository) Count(ctx context.Context, filter expense.SupplierExpenseFilter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.SupplierExpenseModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormSupplierExpenseRepository) applyFilter(query *gorm.DB, filter expense.SupplierExpenseFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, SupplierExpenseSortFields, "expense_date")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

func (r *GormSupplierExpenseRepository) applyFilterWithoutPagination(query *gorm.DB, filter expense.SupplierExpenseFilter) *gorm.DB {
	query = query.Where("active = ?", true)

	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.FromDate != nil {
		query = query.Where("expense_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("expense_date <= ?", *filter.ToDate)
	}
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("description ILIKE ? OR category ILIKE ?", searchPattern, searchPattern)
	}

	return query
}

func toDomainSupplierExpenses(expenseModels []models.SupplierExpenseModel) []expense.SupplierExpense {
	expenses := make([]expense.SupplierExpense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = *expenseModels[i].ToDomain()
	}
	return expenses
}

// Ensure GormSupplierExpenseRepository implements SupplierExpenseRepository
var _ expense.SupplierExpenseRepository = (*GormSupplierExpenseRepository)(nil)
