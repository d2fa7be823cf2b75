package models

import (
	"time"

	"github.com/lib/pq"
)

type GalleryImage struct {
	Gallery_Image_ID int            `json:"galleryImageId" goqu:"skipinsert"`
	Title            string         `json:"title"`
	Image_URL        string         `json:"imageUrl"`
	Tags             pq.StringArray `json:"tags"`
	Event_Name       string         `json:"eventName"`
	Description      string         `json:"description"`
	Created_By       int            `json:"createdBy"`
	Datetime_Create  time.Time      `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By       int            `json:"updatedBy"`
	Datetime_Update  time.Time      `json:"datetimeUpdate" goqu:"skipinsert"`
}

type GalleryImageCreate struct {
	Title       string   `json:"title" binding:"required"`
	Image_URL   string   `json:"imageUrl" binding:"required"`
	Tags        []string `json:"tags"`
	Event_Name  string   `json:"eventName"`
	Description string   `json:"description"`
}
