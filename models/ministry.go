package models

import "time"

type Ministry struct {
	Ministry_ID     int       `json:"ministryId" goqu:"skipinsert"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Image_URL       string    `json:"imageUrl"`
	Leader_Name     string    `json:"leaderName"`
	Contact_Email   string    `json:"contactEmail"`
	Display_Order   int       `json:"displayOrder"`
	Is_Active       bool      `json:"isActive"`
	Created_By      int       `json:"createdBy"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By      int       `json:"updatedBy"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type MinistryCreate struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Image_URL     string `json:"imageUrl"`
	Leader_Name   string `json:"leaderName"`
	Contact_Email string `json:"contactEmail"`
	Display_Order int    `json:"displayOrder"`
	Is_Active     *bool  `json:"isActive"`
}
