package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ShalomVision/initializers"
	"github.com/ShalomVision/middlewares"
	"github.com/ShalomVision/models"
	"github.com/ShalomVision/projections"
	"github.com/ShalomVision/services"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// GetTestimonies lists testimonies, most recent first. Unapproved stories are
// only included for callers with edit access.
func GetTestimonies(c *gin.Context) {
	role := middlewares.CurrentRole(c)

	ds := initializers.DB.From("testimony").Order(goqu.C("testimony_date").Desc())
	if !role.CanEdit() {
		ds = ds.Where(goqu.C("is_approved").IsTrue())
	}
	ds = applyListOptions(c, ds, "testimony_date", "datetime_create")

	var testimonies []models.Testimony
	if err := ds.ScanStructs(&testimonies); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonies"})
		return
	}

	c.JSON(http.StatusOK, testimonies)
}

// GetEventTestimonies returns the approved testimonies linked to an event.
// This is the public-facing view; unapproved stories never appear here.
func GetEventTestimonies(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var testimonies []models.Testimony
	err = initializers.DB.From("testimony").
		Where(goqu.C("is_approved").IsTrue()).
		ScanStructs(&testimonies)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonies"})
		return
	}

	linked := projections.LinkedTestimoniesForEvent(testimonies, int64(eventID))
	if linked == nil {
		linked = []models.Testimony{}
	}

	c.JSON(http.StatusOK, linked)
}

// GetMeetingTestimonies returns the approved testimonies linked to a meeting.
func GetMeetingTestimonies(c *gin.Context) {
	meetingID, err := strconv.Atoi(c.Param("meeting_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	var testimonies []models.Testimony
	err = initializers.DB.From("testimony").
		Where(goqu.C("is_approved").IsTrue()).
		ScanStructs(&testimonies)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonies"})
		return
	}

	linked := projections.LinkedTestimoniesForMeeting(testimonies, int64(meetingID))
	if linked == nil {
		linked = []models.Testimony{}
	}

	c.JSON(http.StatusOK, linked)
}

func CreateTestimony(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var newTestimony models.TestimonyCreate
	if err := c.BindJSON(&newTestimony); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testimony := models.Testimony{
		Title:              newTestimony.Title,
		Testifier_Name:     newTestimony.Testifier_Name,
		Story:              newTestimony.Story,
		Testimony_Date:     newTestimony.Testimony_Date,
		Image_URL:          newTestimony.Image_URL,
		Is_Approved:        newTestimony.Is_Approved,
		Linked_Event_IDs:   pq.Int64Array(newTestimony.Linked_Event_IDs),
		Linked_Meeting_IDs: pq.Int64Array(newTestimony.Linked_Meeting_IDs),
		Linked_Speaker_IDs: pq.Int64Array(newTestimony.Linked_Speaker_IDs),
		Created_By:         user.User_Profile_ID,
		Updated_By:         user.User_Profile_ID,
	}

	insert := initializers.DB.Insert("testimony").Rows(testimony).Returning("testimony_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create testimony"})
		return
	}

	testimony.Testimony_ID = insertedID

	c.JSON(http.StatusCreated, testimony)
}

// SubmitTestimony is the public submission path. The story always lands
// unapproved; the editors get an email so it doesn't sit unnoticed.
func SubmitTestimony(c *gin.Context) {
	var submission models.TestimonySubmission
	if err := c.BindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testimony := models.Testimony{
		Title:          submission.Title,
		Testifier_Name: submission.Testifier_Name,
		Story:          submission.Story,
		Testimony_Date: submission.Testimony_Date,
		Is_Approved:    false,
	}

	insert := initializers.DB.Insert("testimony").Rows(testimony).Returning("testimony_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit testimony"})
		return
	}

	go func() {
		if err := services.GetEmailService().SendTestimonyNotice(submission.Title, submission.Testifier_Name); err != nil {
			log.Printf("Testimony notice not sent: %v", err)
		}
	}()

	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for sharing. Your story will appear once it has been reviewed."})
}

func UpdateTestimony(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	testimonyID, err := strconv.Atoi(c.Param("testimony_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimony ID"})
		return
	}

	var update models.TestimonyCreate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateStmt := initializers.DB.Update("testimony").
		Set(goqu.Record{
			"title":              update.Title,
			"testifier_name":     update.Testifier_Name,
			"story":              update.Story,
			"testimony_date":     update.Testimony_Date,
			"image_url":          update.Image_URL,
			"is_approved":        update.Is_Approved,
			"linked_event_ids":   pq.Int64Array(update.Linked_Event_IDs),
			"linked_meeting_ids": pq.Int64Array(update.Linked_Meeting_IDs),
			"linked_speaker_ids": pq.Int64Array(update.Linked_Speaker_IDs),
			"updated_by":         user.User_Profile_ID,
			"datetime_update":    time.Now(),
		}).
		Where(goqu.C("testimony_id").Eq(testimonyID))

	result, err := updateStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimony"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimony not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimony updated successfully"})
}

func DeleteTestimony(c *gin.Context) {
	testimonyID, err := strconv.Atoi(c.Param("testimony_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimony ID"})
		return
	}

	deleteStmt := initializers.DB.Delete("testimony").
		Where(goqu.C("testimony_id").Eq(testimonyID))

	result, err := deleteStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimony"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimony not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimony deleted successfully"})
}
