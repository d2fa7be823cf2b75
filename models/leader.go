package models

import "time"

type Leader struct {
	Leader_ID       int       `json:"leaderId" goqu:"skipinsert"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Bio             string    `json:"bio"`
	Profile_Image   string    `json:"profileImage"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Display_Order   int       `json:"displayOrder"`
	Created_By      int       `json:"createdBy"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By      int       `json:"updatedBy"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type LeaderCreate struct {
	Name          string `json:"name" binding:"required"`
	Role          string `json:"role"`
	Bio           string `json:"bio"`
	Profile_Image string `json:"profileImage"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Display_Order int    `json:"displayOrder"`
}
