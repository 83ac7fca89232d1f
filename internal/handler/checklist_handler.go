package handler

import (
	"net/http"
	"strconv"

	"sustaining-audit-app/internal/service"
	"sustaining-audit-app/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ChecklistHandler struct {
	checklistService *service.ChecklistService
}

func NewChecklistHandler(checklistService *service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{
		checklistService: checklistService,
	}
}

// Show renders the checklist page with category/item forms
func (h *ChecklistHandler) Show(c *gin.Context) {
	categories, items, err := h.checklistService.Checklist()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load checklist")
		return
	}

	c.HTML(http.StatusOK, "checklist.html", gin.H{
		"Categories": categories,
		"Items":      items,
		"Flashes":    utils.Flashes(c),
	})
}

// AddCategory creates a category from the submitted form
func (h *ChecklistHandler) AddCategory(c *gin.Context) {
	if err := h.checklistService.AddCategory(c.PostForm("category_name")); err != nil {
		utils.Flash(c, "Category exists or empty")
	} else {
		utils.Flash(c, "Category added")
	}
	c.Redirect(http.StatusFound, "/checklist")
}

// AddItem creates a checklist item from the submitted form
func (h *ChecklistHandler) AddItem(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid category ID")
		return
	}

	created, err := h.checklistService.AddItem(uint(categoryID), c.PostForm("item_text"), c.PostForm("original_spec"))
	if err != nil {
		if err.Error() == "category not found" {
			c.String(http.StatusNotFound, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, "Failed to add checklist item")
		return
	}
	if created {
		utils.Flash(c, "Checklist item added")
	}
	c.Redirect(http.StatusFound, "/checklist")
}

// UpdateItem overwrites the text and original spec of an existing item
func (h *ChecklistHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.checklistService.UpdateItem(uint(itemID), c.PostForm("item_text"), c.PostForm("original_spec")); err != nil {
		if err.Error() == "checklist item not found" {
			c.String(http.StatusNotFound, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, "Failed to update checklist item")
		return
	}

	utils.Flash(c, "Checklist item updated")
	c.Redirect(http.StatusFound, "/checklist")
}
