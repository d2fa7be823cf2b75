package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ShalomVision/initializers"
	"github.com/ShalomVision/middlewares"
	"github.com/ShalomVision/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// GetMinistries lists ministries ordered by display_order. Inactive
// ministries only appear for callers with edit access; the public listing
// excludes them entirely.
func GetMinistries(c *gin.Context) {
	role := middlewares.CurrentRole(c)

	ds := initializers.DB.From("ministry").Order(goqu.C("display_order").Asc())
	if !role.CanEdit() {
		ds = ds.Where(goqu.C("is_active").IsTrue())
	}
	ds = applyListOptions(c, ds, "display_order", "title", "datetime_create")

	var ministries []models.Ministry
	if err := ds.ScanStructs(&ministries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ministries"})
		return
	}

	c.JSON(http.StatusOK, ministries)
}

func GetMinistry(c *gin.Context) {
	ministryID, err := strconv.Atoi(c.Param("ministry_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry ID"})
		return
	}

	var ministry models.Ministry
	found, err := initializers.DB.From("ministry").
		Where(goqu.C("ministry_id").Eq(ministryID)).
		ScanStruct(&ministry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ministry"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ministry not found"})
		return
	}

	if !ministry.Is_Active && !middlewares.CurrentRole(c).CanEdit() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ministry not found"})
		return
	}

	c.JSON(http.StatusOK, ministry)
}

func CreateMinistry(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var newMinistry models.MinistryCreate
	if err := c.BindJSON(&newMinistry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if newMinistry.Is_Active != nil {
		isActive = *newMinistry.Is_Active
	}

	ministry := models.Ministry{
		Title:         newMinistry.Title,
		Description:   newMinistry.Description,
		Image_URL:     newMinistry.Image_URL,
		Leader_Name:   newMinistry.Leader_Name,
		Contact_Email: newMinistry.Contact_Email,
		Display_Order: newMinistry.Display_Order,
		Is_Active:     isActive,
		Created_By:    user.User_Profile_ID,
		Updated_By:    user.User_Profile_ID,
	}

	insert := initializers.DB.Insert("ministry").Rows(ministry).Returning("ministry_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ministry"})
		return
	}

	ministry.Ministry_ID = insertedID

	c.JSON(http.StatusCreated, ministry)
}

func UpdateMinistry(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	ministryID, err := strconv.Atoi(c.Param("ministry_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry ID"})
		return
	}

	var update models.MinistryCreate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if update.Is_Active != nil {
		isActive = *update.Is_Active
	}

	updateStmt := initializers.DB.Update("ministry").
		Set(goqu.Record{
			"title":           update.Title,
			"description":     update.Description,
			"image_url":       update.Image_URL,
			"leader_name":     update.Leader_Name,
			"contact_email":   update.Contact_Email,
			"display_order":   update.Display_Order,
			"is_active":       isActive,
			"updated_by":      user.User_Profile_ID,
			"datetime_update": time.Now(),
		}).
		Where(goqu.C("ministry_id").Eq(ministryID))

	result, err := updateStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ministry"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ministry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ministry updated successfully"})
}

func DeleteMinistry(c *gin.Context) {
	ministryID, err := strconv.Atoi(c.Param("ministry_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry ID"})
		return
	}

	deleteStmt := initializers.DB.Delete("ministry").
		Where(goqu.C("ministry_id").Eq(ministryID))

	result, err := deleteStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ministry"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ministry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ministry deleted successfully"})
}
