package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"sustaining-audit-app/internal/service"
	"sustaining-audit-app/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService     *service.AuditService
	checklistService *service.ChecklistService
}

func NewAuditHandler(auditService *service.AuditService, checklistService *service.ChecklistService) *AuditHandler {
	return &AuditHandler{
		auditService:     auditService,
		checklistService: checklistService,
	}
}

// List renders all audits with their aggregated percentages
func (h *AuditHandler) List(c *gin.Context) {
	summaries, err := h.auditService.ListAudits()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load audits")
		return
	}

	c.HTML(http.StatusOK, "audits.html", gin.H{
		"Audits":  summaries,
		"Flashes": utils.Flashes(c),
	})
}

// NewForm renders the checklist-driven audit creation form
func (h *AuditHandler) NewForm(c *gin.Context) {
	_, items, err := h.checklistService.Checklist()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load checklist")
		return
	}

	c.HTML(http.StatusOK, "audit_new.html", gin.H{
		"Items":   items,
		"Scores":  []int{0, 1, 2, 3},
		"Flashes": utils.Flashes(c),
	})
}

// Create records a submitted audit. The multipart form carries score_{id},
// record_{id} and photo_{id} fields per checklist item.
func (h *AuditHandler) Create(c *gin.Context) {
	_, items, err := h.checklistService.Checklist()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load checklist")
		return
	}

	inputs := make(map[uint]service.AuditItemInput, len(items))
	for _, item := range items {
		in := service.AuditItemInput{
			Record: c.PostForm(fmt.Sprintf("record_%d", item.ID)),
		}

		if raw := c.PostForm(fmt.Sprintf("score_%d", item.ID)); raw != "" {
			score, err := strconv.Atoi(raw)
			if err != nil || score < 0 || score > service.MaxScore {
				c.String(http.StatusBadRequest, "Invalid score for item %d", item.ID)
				return
			}
			in.Score = &score
		}

		if fh, err := c.FormFile(fmt.Sprintf("photo_%d", item.ID)); err == nil && fh.Filename != "" {
			f, err := fh.Open()
			if err != nil {
				c.String(http.StatusInternalServerError, "Failed to read uploaded photo")
				return
			}
			defer f.Close()
			in.Photo = f
			in.PhotoName = fh.Filename
		}

		inputs[item.ID] = in
	}

	if _, err := h.auditService.CreateAudit(
		c.PostForm("vendor"),
		c.PostForm("audit_date"),
		c.PostForm("audit_area"),
		inputs,
	); err != nil {
		utils.Flash(c, err.Error())
		c.Redirect(http.StatusFound, "/audits/new")
		return
	}

	utils.Flash(c, "Audit created successfully!")
	c.Redirect(http.StatusFound, "/audits")
}

// ConfirmDelete renders a confirmation page; the delete itself is a POST so
// plain navigation never destroys data
func (h *AuditHandler) ConfirmDelete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid audit ID")
		return
	}

	audit, err := h.auditService.GetAudit(uint(id))
	if err != nil {
		if err.Error() == "audit not found" {
			c.String(http.StatusNotFound, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, "Failed to load audit")
		return
	}

	c.HTML(http.StatusOK, "audit_delete.html", gin.H{
		"Audit":   audit,
		"Flashes": utils.Flashes(c),
	})
}

// Delete removes an audit with its items and photo files
func (h *AuditHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid audit ID")
		return
	}

	if err := h.auditService.DeleteAudit(uint(id)); err != nil {
		if err.Error() == "audit not found" {
			c.String(http.StatusNotFound, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, "Failed to delete audit")
		return
	}

	utils.Flash(c, "Audit deleted successfully.")
	c.Redirect(http.StatusFound, "/audits")
}
