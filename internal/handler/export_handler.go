package handler

import (
	"net/http"
	"strconv"

	"sustaining-audit-app/internal/service"
	"sustaining-audit-app/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportService *service.ExportService
}

func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportAudit streams the single-audit spreadsheet as a download
func (h *ExportHandler) ExportAudit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid audit ID")
		return
	}

	path, filename, err := h.exportService.ExportAudit(uint(id))
	if err != nil {
		if err.Error() == "audit not found" {
			c.String(http.StatusNotFound, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, "Failed to export audit")
		return
	}

	c.FileAttachment(path, filename)
}

// ExportMIL streams the cross-audit master issue list, or redirects home
// with a message when no items qualify
func (h *ExportHandler) ExportMIL(c *gin.Context) {
	path, filename, err := h.exportService.ExportMIL()
	if err != nil {
		if err.Error() == "no MIL items" {
			utils.Flash(c, "No MIL items.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to export MIL")
		return
	}

	c.FileAttachment(path, filename)
}
