package controllers

import (
	"net/http"
	"time"

	"github.com/ShalomVision/initializers"
	"github.com/ShalomVision/models"
	"github.com/ShalomVision/projections"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// Page endpoints load every list a page needs before deriving its view, so a
// client never renders a partially-loaded page.

func GetHomePage(c *gin.Context) {
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

	c.JSON(http.StatusOK, projections.HomePage(events, meetings, time.Now()))
}

func GetEventsPage(c *gin.Context) {
	var events []models.Event
	err := initializers.DB.From("event").
		Order(goqu.C("event_date").Desc()).
		ScanStructs(&events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	var speakers []models.SpeakerProfile
	if err := initializers.DB.From("speaker_profile").ScanStructs(&speakers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch speakers"})
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

	c.JSON(http.StatusOK, projections.EventsPage(events, speakers, testimonies, time.Now()))
}

func GetMeetingsPage(c *gin.Context) {
	var meetings []models.Meeting
	if err := initializers.DB.From("meeting").ScanStructs(&meetings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetings"})
		return
	}

	var speakers []models.SpeakerProfile
	if err := initializers.DB.From("speaker_profile").ScanStructs(&speakers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch speakers"})
		return
	}

	var testimonies []models.Testimony
	err := initializers.DB.From("testimony").
		Where(goqu.C("is_approved").IsTrue()).
		ScanStructs(&testimonies)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonies"})
		return
	}

	c.JSON(http.StatusOK, projections.MeetingsPage(meetings, speakers, testimonies))
}
