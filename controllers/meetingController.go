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

// GetMeetings lists meetings. Recognized filters: `regular=true|false`,
// `featured=true` (homepage carousel flag), `homepage=true` (regular
// gatherings preview flag), plus the shared sort/limit options.
func GetMeetings(c *gin.Context) {
	ds := initializers.DB.From("meeting").Order(goqu.C("datetime_create").Desc())

	if regularParam := c.Query("regular"); regularParam != "" {
		if regularParam == "true" {
			ds = ds.Where(goqu.C("is_regular").IsTrue())
		} else {
			ds = ds.Where(goqu.C("is_regular").IsFalse())
		}
	}
	if c.Query("featured") == "true" {
		ds = ds.Where(goqu.C("show_on_homepage_carousel").IsTrue())
	}
	if c.Query("homepage") == "true" {
		ds = ds.Where(goqu.C("show_on_homepage").IsTrue())
	}
	ds = applyListOptions(c, ds, "meeting_date", "title", "datetime_create")

	var meetings []models.Meeting
	if err := ds.ScanStructs(&meetings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meetings"})
		return
	}

	c.JSON(http.StatusOK, meetings)
}

func GetMeeting(c *gin.Context) {
	meetingID, err := strconv.Atoi(c.Param("meeting_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	var meeting models.Meeting
	found, err := initializers.DB.From("meeting").
		Where(goqu.C("meeting_id").Eq(meetingID)).
		ScanStruct(&meeting)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meeting"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return
	}

	c.JSON(http.StatusOK, meeting)
}

func CreateMeeting(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var newMeeting models.MeetingCreate
	if err := c.BindJSON(&newMeeting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	newMeeting.Normalize()

	meeting := models.Meeting{
		Title:                     newMeeting.Title,
		Summary:                   newMeeting.Summary,
		Meeting_Date:              newMeeting.Meeting_Date,
		Images:                    pq.StringArray(newMeeting.Images),
		Speaker_IDs:               pq.Int64Array(newMeeting.Speaker_IDs),
		Is_Regular:                newMeeting.Is_Regular,
		Frequency:                 newMeeting.Frequency,
		Day_Of_Week:               newMeeting.Day_Of_Week,
		Time_Of_Day:               newMeeting.Time_Of_Day,
		Show_On_Homepage:          newMeeting.Show_On_Homepage,
		Show_On_Homepage_Carousel: newMeeting.Show_On_Homepage_Carousel,
		Created_By:                user.User_Profile_ID,
		Updated_By:                user.User_Profile_ID,
	}

	insert := initializers.DB.Insert("meeting").Rows(meeting).Returning("meeting_id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting"})
		return
	}

	meeting.Meeting_ID = insertedID

	if !meeting.Is_Regular {
		go services.GetAnnouncementService().Announce(
			services.TopicMeetings,
			"New meeting summary: "+meeting.Title,
			meeting.Summary,
			map[string]string{"meetingId": strconv.Itoa(meeting.Meeting_ID)},
		)
	}

	c.JSON(http.StatusCreated, meeting)
}

func UpdateMeeting(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	meetingID, err := strconv.Atoi(c.Param("meeting_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	var update models.MeetingCreate
	if err := c.BindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update.Normalize()

	updateStmt := initializers.DB.Update("meeting").
		Set(goqu.Record{
			"title":                     update.Title,
			"summary":                   update.Summary,
			"meeting_date":              update.Meeting_Date,
			"images":                    pq.StringArray(update.Images),
			"speaker_ids":               pq.Int64Array(update.Speaker_IDs),
			"is_regular":                update.Is_Regular,
			"frequency":                 update.Frequency,
			"day_of_week":               update.Day_Of_Week,
			"time_of_day":               update.Time_Of_Day,
			"show_on_homepage":          update.Show_On_Homepage,
			"show_on_homepage_carousel": update.Show_On_Homepage_Carousel,
			"updated_by":                user.User_Profile_ID,
			"datetime_update":           time.Now(),
		}).
		Where(goqu.C("meeting_id").Eq(meetingID))

	result, err := updateStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meeting"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meeting updated successfully"})
}

func DeleteMeeting(c *gin.Context) {
	meetingID, err := strconv.Atoi(c.Param("meeting_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	deleteStmt := initializers.DB.Delete("meeting").
		Where(goqu.C("meeting_id").Eq(meetingID))

	result, err := deleteStmt.Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meeting"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted successfully"})
}
