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

// GetSupportInfo returns the single support-page record. With no record yet
// the defaults are served so the page still renders.
func GetSupportInfo(c *gin.Context) {
	var info models.SupportInfo
	found, err := initializers.DB.From("support_info").
		Order(goqu.C("support_info_id").Asc()).
		Limit(1).
		ScanStruct(&info)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch support info"})
		return
	}
	if !found {
		info = models.SupportInfo{
			Page_Title:      "Support Our Ministry",
			Donation_Title:  "Giving & Donations",
			Volunteer_Title: "Volunteer Opportunities",
		}
	}

	c.JSON(http.StatusOK, info)
}

// UpdateSupportInfo upserts the singleton support-page record.
func UpdateSupportInfo(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var update models.SupportInfoUpdate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.SupportInfo
	found, err := initializers.DB.From("support_info").
		Order(goqu.C("support_info_id").Asc()).
		Limit(1).
		ScanStruct(&existing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch support info"})
		return
	}

	if found {
		updateStmt := initializers.DB.Update("support_info").
			Set(goqu.Record{
				"page_title":        update.Page_Title,
				"intro_text":        update.Intro_Text,
				"image_url":         update.Image_URL,
				"donation_title":    update.Donation_Title,
				"donation_details":  update.Donation_Details,
				"volunteer_title":   update.Volunteer_Title,
				"volunteer_details": update.Volunteer_Details,
				"updated_by":        user.User_Profile_ID,
				"datetime_update":   time.Now(),
			}).
			Where(goqu.C("support_info_id").Eq(existing.Support_Info_ID))

		if _, err := updateStmt.Executor().Exec(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update support info"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Support info updated successfully"})
		return
	}

	info := models.SupportInfo{
		Page_Title:        update.Page_Title,
		Intro_Text:        update.Intro_Text,
		Image_URL:         update.Image_URL,
		Donation_Title:    update.Donation_Title,
		Donation_Details:  update.Donation_Details,
		Volunteer_Title:   update.Volunteer_Title,
		Volunteer_Details: update.Volunteer_Details,
		Created_By:        user.User_Profile_ID,
		Updated_By:        user.User_Profile_ID,
	}

	insert := initializers.DB.Insert("support_info").Rows(info).Returning("support_info_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create support info"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Support info created successfully"})
}
