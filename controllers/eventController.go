package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ShalomVision/initializers"
	"github.com/ShalomVision/models"
	"github.com/ShalomVision/services"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// GetEvents lists events, newest first by default. Recognized filters:
// `featured=true` (homepage carousel flag), `from=<RFC3339>` (event_date lower
// bound), plus the shared sort/limit options.
func GetEvents(c *gin.Context) {
	ds := initializers.DB.From("event").Order(goqu.C("event_date").Desc())

	if c.Query("featured") == "true" {
		ds = ds.Where(goqu.C("show_on_homepage_carousel").IsTrue())
	}
	if fromParam := c.Query("from"); fromParam != "" {
		from, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' timestamp"})
			return
		}
		ds = ds.Where(goqu.C("event_date").Gte(from))
	}
	ds = applyListOptions(c, ds, "event_date", "title", "datetime_create")

	var events []models.Event
	if err := ds.ScanStructs(&events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

func GetEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var event models.Event
	found, err := initializers.DB.From("event").
		Where(goqu.C("event_id").Eq(eventID)).
		ScanStruct(&event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func CreateEvent(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var newEvent models.EventCreate
	if err := c.BindJSON(&newEvent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := models.Event{
		Title:                     newEvent.Title,
		Description:               newEvent.Description,
		Event_Date:                newEvent.Event_Date,
		Location:                  newEvent.Location,
		Image_URL:                 newEvent.Image_URL,
		Speaker_IDs:               pq.Int64Array(newEvent.Speaker_IDs),
		Is_Coming_Soon:            newEvent.Is_Coming_Soon,
		Show_On_Homepage_Carousel: newEvent.Show_On_Homepage_Carousel,
		Created_By:                user.User_Profile_ID,
		Updated_By:                user.User_Profile_ID,
	}

	insert := initializers.DB.Insert("event").Rows(event).Returning("event_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	event.Event_ID = insertedID

	go services.GetAnnouncementService().Announce(
		services.TopicEvents,
		"New event: "+event.Title,
		event.Event_Date.Format("January 2, 2006"),
		map[string]string{"eventId": strconv.Itoa(event.Event_ID)},
	)

	c.JSON(http.StatusCreated, event)
}

func UpdateEvent(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	eventID, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var update models.EventCreate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateStmt := initializers.DB.Update("event").
		Set(goqu.Record{
			"title":                     update.Title,
			"description":               update.Description,
			"event_date":                update.Event_Date,
			"location":                  update.Location,
			"image_url":                 update.Image_URL,
			"speaker_ids":               pq.Int64Array(update.Speaker_IDs),
			"is_coming_soon":            update.Is_Coming_Soon,
			"show_on_homepage_carousel": update.Show_On_Homepage_Carousel,
			"updated_by":                user.User_Profile_ID,
			"datetime_update":           time.Now(),
		}).
		Where(goqu.C("event_id").Eq(eventID))

	result, err := updateStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

// DeleteEvent removes the event row only. Speaker and testimony id arrays
// referencing it are left untouched; readers drop dangling ids at render
// time.
func DeleteEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	deleteStmt := initializers.DB.Delete("event").
		Where(goqu.C("event_id").Eq(eventID))

	result, err := deleteStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
