package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ShalomVision/initializers"
	"github.com/ShalomVision/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func GetGalleryImages(c *gin.Context) {
	ds := initializers.DB.From("gallery_image").Order(goqu.C("datetime_create").Desc())

	if tag := c.Query("tag"); tag != "" {
		ds = ds.Where(goqu.L("? = ANY(tags)", tag))
	}
	ds = applyListOptions(c, ds, "datetime_create", "title")

	var images []models.GalleryImage
	if err := ds.ScanStructs(&images); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery images"})
		return
	}

	c.JSON(http.StatusOK, images)
}

func CreateGalleryImage(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var newImage models.GalleryImageCreate
	if err := c.BindJSON(&newImage); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := models.GalleryImage{
		Title:       newImage.Title,
		Image_URL:   newImage.Image_URL,
		Tags:        pq.StringArray(newImage.Tags),
		Event_Name:  newImage.Event_Name,
		Description: newImage.Description,
		Created_By:  user.User_Profile_ID,
		Updated_By:  user.User_Profile_ID,
	}

	insert := initializers.DB.Insert("gallery_image").Rows(image).Returning("gallery_image_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create gallery image"})
		return
	}

	image.Gallery_Image_ID = insertedID

	c.JSON(http.StatusCreated, image)
}

func UpdateGalleryImage(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	imageID, err := strconv.Atoi(c.Param("gallery_image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery image ID"})
		return
	}

	var update models.GalleryImageCreate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateStmt := initializers.DB.Update("gallery_image").
		Set(goqu.Record{
			"title":           update.Title,
			"image_url":       update.Image_URL,
			"tags":            pq.StringArray(update.Tags),
			"event_name":      update.Event_Name,
			"description":     update.Description,
			"updated_by":      user.User_Profile_ID,
			"datetime_update": time.Now(),
		}).
		Where(goqu.C("gallery_image_id").Eq(imageID))

	result, err := updateStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gallery image"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery image updated successfully"})
}

func DeleteGalleryImage(c *gin.Context) {
	imageID, err := strconv.Atoi(c.Param("gallery_image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery image ID"})
		return
	}

	deleteStmt := initializers.DB.Delete("gallery_image").
		Where(goqu.C("gallery_image_id").Eq(imageID))

	result, err := deleteStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete gallery image"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery image deleted successfully"})
}
