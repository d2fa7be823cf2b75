package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/ShalomVision/initializers"
	"github.com/ShalomVision/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// GetWebsiteSettings returns the singleton site settings row, falling back to
// defaults when none has been saved yet.
func GetWebsiteSettings(c *gin.Context) {
	var settings models.WebsiteSettings
	found, err := initializers.DB.From("website_settings").
		Order(goqu.C("website_settings_id").Asc()).
		Limit(1).
		ScanStruct(&settings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	if !found {
		settings = models.WebsiteSettings{Site_Name: "Shalom Vision Ministries"}
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateWebsiteSettings upserts the singleton site settings row. Admin only.
func UpdateWebsiteSettings(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var update models.WebsiteSettingsUpdate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.WebsiteSettings
	found, err := initializers.DB.From("website_settings").
		Order(goqu.C("website_settings_id").Asc()).
		Limit(1).
		ScanStruct(&existing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	if found {
		updateStmt := initializers.DB.Update("website_settings").
			Set(goqu.Record{
				"site_name":       update.Site_Name,
				"site_tagline":    update.Site_Tagline,
				"logo_url":        update.Logo_URL,
				"updated_by":      user.User_Profile_ID,
				"datetime_update": time.Now(),
			}).
			Where(goqu.C("website_settings_id").Eq(existing.Website_Settings_ID))

		if _, err := updateStmt.Executor().Exec(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
		return
	}

	settings := models.WebsiteSettings{
		Site_Name:    update.Site_Name,
		Site_Tagline: update.Site_Tagline,
		Logo_URL:     update.Logo_URL,
		Created_By:   user.User_Profile_ID,
		Updated_By:   user.User_Profile_ID,
	}

	insert := initializers.DB.Insert("website_settings").Rows(settings).Returning("website_settings_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create settings"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Settings created successfully"})
}
