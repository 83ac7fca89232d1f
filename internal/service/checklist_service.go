package service

import (
	"errors"
	"fmt"
	"strings"

	"sustaining-audit-app/internal/models"
	"sustaining-audit-app/internal/repository"
)

type ChecklistService struct {
	checklistRepo *repository.ChecklistRepository
}

func NewChecklistService(checklistRepo *repository.ChecklistRepository) *ChecklistService {
	return &ChecklistService{
		checklistRepo: checklistRepo,
	}
}

// Checklist retrieves all categories (by name) and items (in creation order)
func (s *ChecklistService) Checklist() ([]models.Category, []models.ChecklistItem, error) {
	categories, err := s.checklistRepo.GetAllCategories()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	items, err := s.checklistRepo.GetAllItems()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch checklist items: %w", err)
	}
	return categories, items, nil
}

// AddCategory creates a category. The name is trimmed; an empty or already
// existing name is rejected with an error the handler surfaces as a message.
func (s *ChecklistService) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("category exists or empty")
	}

	exists, err := s.checklistRepo.CategoryExistsByName(name)
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if exists {
		return errors.New("category exists or empty")
	}

	return s.checklistRepo.CreateCategory(&models.Category{Name: name})
}

// AddItem creates a checklist item under a category. An empty text after
// trimming is a silent no-op; the return reports whether a row was inserted.
func (s *ChecklistService) AddItem(categoryID uint, text, originalSpec string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}

	if _, err := s.checklistRepo.GetCategoryByID(categoryID); err != nil {
		return false, err
	}

	item := &models.ChecklistItem{
		CategoryID:   categoryID,
		Text:         text,
		OriginalSpec: strings.TrimSpace(originalSpec),
	}
	if err := s.checklistRepo.CreateItem(item); err != nil {
		return false, fmt.Errorf("failed to create checklist item: %w", err)
	}
	return true, nil
}

// UpdateItem overwrites the text and original spec of an existing item
func (s *ChecklistService) UpdateItem(itemID uint, text, originalSpec string) error {
	item, err := s.checklistRepo.GetItemByID(itemID)
	if err != nil {
		return err
	}

	item.Text = text
	item.OriginalSpec = originalSpec
	if err := s.checklistRepo.UpdateItem(item); err != nil {
		return fmt.Errorf("failed to update checklist item: %w", err)
	}
	return nil
}
