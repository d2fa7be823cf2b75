package models

import (
	"time"

	"github.com/lib/pq"
)

type Event struct {
	Event_ID                  int           `json:"eventId" goqu:"skipinsert"`
	Title                     string        `json:"title"`
	Description               string        `json:"description"`
	Event_Date                time.Time     `json:"eventDate"`
	Location                  string        `json:"location"`
	Image_URL                 string        `json:"imageUrl"`
	Speaker_IDs               pq.Int64Array `json:"speakerIds"`
	Is_Coming_Soon            bool          `json:"isComingSoon"`
	Show_On_Homepage_Carousel bool          `json:"showOnHomepageCarousel"`
	Created_By                int           `json:"createdBy"`
	Datetime_Create           time.Time     `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By                int           `json:"updatedBy"`
	Datetime_Update           time.Time     `json:"datetimeUpdate" goqu:"skipinsert"`
}

type EventCreate struct {
	Title                     string    `json:"title" binding:"required"`
	Description               string    `json:"description"`
	Event_Date                time.Time `json:"eventDate" binding:"required"`
	Location                  string    `json:"location"`
	Image_URL                 string    `json:"imageUrl"`
	Speaker_IDs               []int64   `json:"speakerIds"`
	Is_Coming_Soon            bool      `json:"isComingSoon"`
	Show_On_Homepage_Carousel bool      `json:"showOnHomepageCarousel"`
}
