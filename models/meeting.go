package models

import (
	"time"

	"github.com/lib/pq"
)

type Meeting struct {
	Meeting_ID                int            `json:"meetingId" goqu:"skipinsert"`
	Title                     string         `json:"title"`
	Summary                   string         `json:"summary"`
	Meeting_Date              *time.Time     `json:"meetingDate"`
	Images                    pq.StringArray `json:"images"`
	Speaker_IDs               pq.Int64Array  `json:"speakerIds"`
	Is_Regular                bool           `json:"isRegular"`
	Frequency                 string         `json:"frequency"`
	Day_Of_Week               string         `json:"dayOfWeek"`
	Time_Of_Day               string         `json:"timeOfDay"`
	Show_On_Homepage          bool           `json:"showOnHomepage"`
	Show_On_Homepage_Carousel bool           `json:"showOnHomepageCarousel"`
	Created_By                int            `json:"createdBy"`
	Datetime_Create           time.Time      `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By                int            `json:"updatedBy"`
	Datetime_Update           time.Time      `json:"datetimeUpdate" goqu:"skipinsert"`
}

type MeetingCreate struct {
	Title                     string     `json:"title" binding:"required"`
	Summary                   string     `json:"summary"`
	Meeting_Date              *time.Time `json:"meetingDate"`
	Images                    []string   `json:"images"`
	Speaker_IDs               []int64    `json:"speakerIds"`
	Is_Regular                bool       `json:"isRegular"`
	Frequency                 string     `json:"frequency"`
	Day_Of_Week               string     `json:"dayOfWeek"`
	Time_Of_Day               string     `json:"timeOfDay"`
	Show_On_Homepage          bool       `json:"showOnHomepage"`
	Show_On_Homepage_Carousel bool       `json:"showOnHomepageCarousel"`
}

// Normalize enforces the schedule field exclusivity: a regular meeting has no
// dated occurrence, a one-off meeting has no recurrence fields.
func (m *MeetingCreate) Normalize() {
	if m.Is_Regular {
		m.Meeting_Date = nil
	} else {
		m.Frequency = ""
		m.Day_Of_Week = ""
		m.Time_Of_Day = ""
	}
}
