package middlewares

import (
	"net/http"

	"github.com/ShalomVision/models"
	"github.com/gin-gonic/gin"
)

// CheckEditor gates content mutations: editors, admins and super admins pass.
func CheckEditor(c *gin.Context) {
	role := c.MustGet("role").(models.Role)

	if !role.CanEdit() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Editor access required"})
		return
	}
}
