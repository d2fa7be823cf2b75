package middlewares

import (
	"net/http"

	"github.com/ShalomVision/models"
	"github.com/gin-gonic/gin"
)

func CheckAdmin(c *gin.Context) {
	role := c.MustGet("role").(models.Role)

	if !role.IsAdmin() {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
}
