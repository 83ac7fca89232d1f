package handler

import (
	"net/http"

	"sustaining-audit-app/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index renders the landing page
func (h *HomeHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Flashes": utils.Flashes(c),
	})
}
