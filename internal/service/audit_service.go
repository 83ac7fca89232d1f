package service

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"sustaining-audit-app/internal/models"
	"sustaining-audit-app/internal/repository"
	"sustaining-audit-app/internal/storage"
)

// MaxScore is the top of the 0..3 scoring scale; percentages are computed
// against MaxScore per item.
const MaxScore = 3

// AuditItemInput carries the submitted result for one checklist item
type AuditItemInput struct {
	Score     *int
	Record    string
	PhotoName string
	Photo     io.Reader
}

// CategoryScore is the aggregated percentage for one category within an audit
type CategoryScore struct {
	Name    string
	Percent float64
}

// AuditSummary is an audit with its per-category and overall percentages
type AuditSummary struct {
	Audit          models.Audit
	CategoryScores []CategoryScore
	TotalPercent   float64
}

type AuditService struct {
	auditRepo     *repository.AuditRepository
	checklistRepo *repository.ChecklistRepository
	photos        *storage.PhotoStore
}

func NewAuditService(
	auditRepo *repository.AuditRepository,
	checklistRepo *repository.ChecklistRepository,
	photos *storage.PhotoStore,
) *AuditService {
	return &AuditService{
		auditRepo:     auditRepo,
		checklistRepo: checklistRepo,
		photos:        photos,
	}
}

// CreateAudit records a new audit: one header row plus one item row per
// checklist item that currently exists, committed as a single transaction.
// Items absent from inputs are recorded as unscored, not skipped. Photos are
// written to the blob store inside the transaction; a rollback may leave an
// orphaned file behind, which is accepted.
func (s *AuditService) CreateAudit(vendor, auditDate, auditArea string, inputs map[uint]AuditItemInput) (uint, error) {
	vendor = strings.TrimSpace(vendor)
	auditArea = strings.TrimSpace(auditArea)
	if vendor == "" || auditDate == "" || auditArea == "" {
		return 0, errors.New("vendor, audit date and audit area are required")
	}

	date, err := time.Parse("2006-01-02", auditDate)
	if err != nil {
		return 0, fmt.Errorf("invalid audit date %q: %w", auditDate, err)
	}

	items, err := s.checklistRepo.GetAllItems()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch checklist items: %w", err)
	}

	audit := &models.Audit{
		Vendor:    vendor,
		AuditDate: date,
		AuditArea: auditArea,
	}

	err = s.auditRepo.CreateWithItems(audit, func(auditID uint) ([]models.AuditItem, error) {
		rows := make([]models.AuditItem, 0, len(items))
		for _, item := range items {
			in := inputs[item.ID]

			filename := ""
			if in.Photo != nil && in.PhotoName != "" {
				name, err := s.photos.Save(auditID, item.ID, in.PhotoName, in.Photo)
				if err != nil {
					return nil, err
				}
				filename = name
			}

			rows = append(rows, models.AuditItem{
				AuditID:         auditID,
				ChecklistItemID: item.ID,
				Score:           in.Score,
				Record:          in.Record,
				PhotoFilename:   filename,
			})
		}
		return rows, nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create audit: %w", err)
	}

	return audit.ID, nil
}

// GetAudit retrieves a single audit header
func (s *AuditService) GetAudit(id uint) (*models.Audit, error) {
	return s.auditRepo.GetAuditByID(id)
}

// ListAudits retrieves all audits, newest audit date first, each with its
// per-category and overall score percentages
func (s *AuditService) ListAudits() ([]AuditSummary, error) {
	audits, err := s.auditRepo.GetAllAudits()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audits: %w", err)
	}

	summaries := make([]AuditSummary, 0, len(audits))
	for _, audit := range audits {
		items, err := s.auditRepo.GetItemsByAuditID(audit.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch items for audit %d: %w", audit.ID, err)
		}
		summaries = append(summaries, summarize(audit, items))
	}
	return summaries, nil
}

// summarize aggregates item scores into percentages. Unscored items count as
// zero but still count toward the denominator; an audit or category with no
// items reports 0%.
func summarize(audit models.Audit, items []models.AuditItem) AuditSummary {
	type tally struct {
		sum   int
		count int
	}

	// Categories keep first-seen order across the audit's items
	order := []string{}
	byCategory := map[string]*tally{}
	totalSum := 0
	totalCount := 0

	for _, item := range items {
		name := item.ChecklistItem.Category.Name
		t, ok := byCategory[name]
		if !ok {
			t = &tally{}
			byCategory[name] = t
			order = append(order, name)
		}
		if item.Score != nil {
			t.sum += *item.Score
			totalSum += *item.Score
		}
		t.count++
		totalCount++
	}

	summary := AuditSummary{Audit: audit}
	for _, name := range order {
		t := byCategory[name]
		summary.CategoryScores = append(summary.CategoryScores, CategoryScore{
			Name:    name,
			Percent: percent(t.sum, t.count),
		})
	}
	summary.TotalPercent = percent(totalSum, totalCount)
	return summary
}

func percent(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count*MaxScore) * 100
}

// DeleteAudit removes an audit, its item rows and their photo files. Photo
// removal is best effort; the row deletes run in one transaction.
func (s *AuditService) DeleteAudit(id uint) error {
	if _, err := s.auditRepo.GetAuditByID(id); err != nil {
		return err
	}

	items, err := s.auditRepo.GetItemsByAuditID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch items for audit %d: %w", id, err)
	}
	for _, item := range items {
		s.photos.Remove(item.PhotoFilename)
	}

	if err := s.auditRepo.DeleteWithItems(id); err != nil {
		return fmt.Errorf("failed to delete audit: %w", err)
	}
	return nil
}
