package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sustaining-audit-app/internal/repository"

	"github.com/xuri/excelize/v2"
)

type ExportService struct {
	auditRepo *repository.AuditRepository
	exportDir string
}

func NewExportService(auditRepo *repository.AuditRepository, exportDir string) (*ExportService, error) {
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &ExportService{
		auditRepo: auditRepo,
		exportDir: exportDir,
	}, nil
}

// ExportAudit writes a spreadsheet with one row per audit item in storage
// order and returns the file path and download filename
func (s *ExportService) ExportAudit(auditID uint) (string, string, error) {
	audit, err := s.auditRepo.GetAuditByID(auditID)
	if err != nil {
		return "", "", err
	}
	items, err := s.auditRepo.GetItemsByAuditID(auditID)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch items for audit %d: %w", auditID, err)
	}

	headers := []string{"No", "Category", "Checking Item", "Score", "Record", "Vendor", "Audit Date", "Audit Area"}
	rows := make([][]interface{}, 0, len(items))
	for idx, item := range items {
		var score interface{}
		if item.Score != nil {
			score = *item.Score
		}
		rows = append(rows, []interface{}{
			idx + 1,
			item.ChecklistItem.Category.Name,
			item.ChecklistItem.Text,
			score,
			item.Record,
			audit.Vendor,
			audit.AuditDate.Format("2006-01-02"),
			audit.AuditArea,
		})
	}

	filename := fmt.Sprintf("audit_%d_%s.xlsx", audit.ID, time.Now().UTC().Format("20060102150405"))
	path := filepath.Join(s.exportDir, filename)
	if err := writeWorkbook(path, headers, rows); err != nil {
		return "", "", fmt.Errorf("failed to write audit export: %w", err)
	}
	return path, filename, nil
}

// ExportMIL writes the master issue list: every audit item across all audits
// whose score is not exactly 3, unscored included, in insertion order. An
// empty result returns an error instead of producing a file.
func (s *ExportService) ExportMIL() (string, string, error) {
	items, err := s.auditRepo.GetMILItems()
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch MIL items: %w", err)
	}
	if len(items) == 0 {
		return "", "", errors.New("no MIL items")
	}

	headers := []string{"No", "Checking item", "Category", "Record", "Status", "Action", "Vendor DRI", "Due Date", "Closed date", "Remark"}
	rows := make([][]interface{}, 0, len(items))
	for idx, item := range items {
		// Mirrors the legacy status rule even though the query filter
		// already excludes every score that would yield "Closed"
		status := "Open"
		if item.Score != nil && *item.Score >= MaxScore {
			status = "Closed"
		}
		rows = append(rows, []interface{}{
			idx + 1,
			item.ChecklistItem.Text,
			item.ChecklistItem.Category.Name,
			item.Record,
			status,
			"",
			item.Audit.Vendor,
			"",
			"",
			"",
		})
	}

	filename := fmt.Sprintf("mil_export_%s.xlsx", time.Now().UTC().Format("20060102150405"))
	path := filepath.Join(s.exportDir, filename)
	if err := writeWorkbook(path, headers, rows); err != nil {
		return "", "", fmt.Errorf("failed to write MIL export: %w", err)
	}
	return path, filename, nil
}

func writeWorkbook(path string, headers []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
