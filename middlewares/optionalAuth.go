package middlewares

import (
	"github.com/ShalomVision/models"

	"github.com/gin-gonic/gin"
)

// OptionalAuth resolves the caller's role for public pages. Any failure
// (missing header, bad token, lookup error) degrades to anonymous; callers
// cannot tell a logged-out visitor from a failed identity lookup.
func OptionalAuth(c *gin.Context) {
	claims, err := parseBearerToken(c)
	if err == nil {
		if user, err := lookupUser(claims); err == nil {
			c.Set("currentUser", user)
			c.Set("role", user.Role)
			c.Next()
			return
		}
	}

	c.Set("role", models.RoleAnonymous)
	c.Next()
}

// CurrentRole reads the role resolved by CheckAuth or OptionalAuth,
// defaulting to anonymous when neither ran.
func CurrentRole(c *gin.Context) models.Role {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return models.RoleAnonymous
}
