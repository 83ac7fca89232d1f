package repository

import (
	"errors"

	"sustaining-audit-app/internal/models"

	"gorm.io/gorm"
)

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepo(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// GetAllCategories retrieves all categories ordered by name
func (r *ChecklistRepository) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// CategoryExistsByName reports whether a category with the exact name exists
func (r *ChecklistRepository) CategoryExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// CreateCategory creates a new category
func (r *ChecklistRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

// GetCategoryByID retrieves a category by ID
func (r *ChecklistRepository) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, err
	}
	return &category, nil
}

// GetAllItems retrieves all checklist items in creation order with their category
func (r *ChecklistRepository) GetAllItems() ([]models.ChecklistItem, error) {
	var items []models.ChecklistItem
	err := r.db.Preload("Category").Order("id ASC").Find(&items).Error
	return items, err
}

// GetItemByID retrieves a checklist item by ID
func (r *ChecklistRepository) GetItemByID(id uint) (*models.ChecklistItem, error) {
	var item models.ChecklistItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("checklist item not found")
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem creates a new checklist item
func (r *ChecklistRepository) CreateItem(item *models.ChecklistItem) error {
	return r.db.Create(item).Error
}

// UpdateItem updates an existing checklist item
func (r *ChecklistRepository) UpdateItem(item *models.ChecklistItem) error {
	return r.db.Save(item).Error
}
