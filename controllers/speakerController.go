package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ShalomVision/initializers"
	"github.com/ShalomVision/models"
	"github.com/ShalomVision/projections"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func GetSpeakers(c *gin.Context) {
	ds := initializers.DB.From("speaker_profile").Order(goqu.C("name").Asc())
	ds = applyListOptions(c, ds, "name", "datetime_create")

	var speakers []models.SpeakerProfile
	if err := ds.ScanStructs(&speakers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch speakers"})
		return
	}

	c.JSON(http.StatusOK, speakers)
}

func GetSpeaker(c *gin.Context) {
	speakerID, err := strconv.Atoi(c.Param("speaker_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid speaker profile ID"})
		return
	}

	var speaker models.SpeakerProfile
	found, err := initializers.DB.From("speaker_profile").
		Where(goqu.C("speaker_profile_id").Eq(speakerID)).
		ScanStruct(&speaker)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch speaker"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Speaker not found"})
		return
	}

	c.JSON(http.StatusOK, speaker)
}

// GetSpeakerPage returns a speaker's public page: profile, engagement history
// (past events and one-off meetings they spoke at, most recent first), and
// approved testimonies linked to them. All lists are loaded before the view
// is derived.
func GetSpeakerPage(c *gin.Context) {
	speakerID, err := strconv.Atoi(c.Param("speaker_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid speaker profile ID"})
		return
	}

	var speaker models.SpeakerProfile
	found, err := initializers.DB.From("speaker_profile").
		Where(goqu.C("speaker_profile_id").Eq(speakerID)).
		ScanStruct(&speaker)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch speaker"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Speaker not found"})
		return
	}

	var events []models.Event
	if err := initializers.DB.From("event").ScanStructs(&events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	var meetings []models.Meeting
	if err := initializers.DB.From("meeting").ScanStructs(&meetings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetings"})
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

	c.JSON(http.StatusOK, projections.SpeakerPage(speaker, events, meetings, testimonies, time.Now()))
}

func CreateSpeaker(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var newSpeaker models.SpeakerProfileCreate
	if err := c.BindJSON(&newSpeaker); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	speaker := models.SpeakerProfile{
		Name:           newSpeaker.Name,
		Title:          newSpeaker.Title,
		Bio:            newSpeaker.Bio,
		Profile_Image:  newSpeaker.Profile_Image,
		Gallery_Images: pq.StringArray(newSpeaker.Gallery_Images),
		Website:        newSpeaker.Website,
		Email:          newSpeaker.Email,
		Social_Links:   newSpeaker.Social_Links,
		Created_By:     user.User_Profile_ID,
		Updated_By:     user.User_Profile_ID,
	}

	insert := initializers.DB.Insert("speaker_profile").Rows(speaker).Returning("speaker_profile_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create speaker"})
		return
	}

	speaker.Speaker_Profile_ID = insertedID

	c.JSON(http.StatusCreated, speaker)
}

func UpdateSpeaker(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	speakerID, err := strconv.Atoi(c.Param("speaker_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid speaker profile ID"})
		return
	}

	var update models.SpeakerProfileCreate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateStmt := initializers.DB.Update("speaker_profile").
		Set(goqu.Record{
			"name":            update.Name,
			"title":           update.Title,
			"bio":             update.Bio,
			"profile_image":   update.Profile_Image,
			"gallery_images":  pq.StringArray(update.Gallery_Images),
			"website":         update.Website,
			"email":           update.Email,
			"social_links":    update.Social_Links,
			"updated_by":      user.User_Profile_ID,
			"datetime_update": time.Now(),
		}).
		Where(goqu.C("speaker_profile_id").Eq(speakerID))

	result, err := updateStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update speaker"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Speaker not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Speaker updated successfully"})
}

// DeleteSpeaker removes the profile only. Events, meetings and testimonies
// that reference the id keep it; resolution drops dangling ids silently.
func DeleteSpeaker(c *gin.Context) {
	speakerID, err := strconv.Atoi(c.Param("speaker_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid speaker profile ID"})
		return
	}

	deleteStmt := initializers.DB.Delete("speaker_profile").
		Where(goqu.C("speaker_profile_id").Eq(speakerID))

	result, err := deleteStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete speaker"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Speaker not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Speaker deleted successfully"})
}
