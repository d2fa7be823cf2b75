package models

import (
	"time"

	"github.com/lib/pq"
)

type Testimony struct {
	Testimony_ID       int           `json:"testimonyId" goqu:"skipinsert"`
	Title              string        `json:"title"`
	Testifier_Name     string        `json:"testifierName"`
	Story              string        `json:"story"`
	Testimony_Date     *time.Time    `json:"testimonyDate"`
	Image_URL          string        `json:"imageUrl"`
	Is_Approved        bool          `json:"isApproved"`
	Linked_Event_IDs   pq.Int64Array `json:"linkedEventIds"`
	Linked_Meeting_IDs pq.Int64Array `json:"linkedMeetingIds"`
	Linked_Speaker_IDs pq.Int64Array `json:"linkedSpeakerIds"`
	Created_By         int           `json:"createdBy"`
	Datetime_Create    time.Time     `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By         int           `json:"updatedBy"`
	Datetime_Update    time.Time     `json:"datetimeUpdate" goqu:"skipinsert"`
}

type TestimonyCreate struct {
	Title              string     `json:"title" binding:"required"`
	Testifier_Name     string     `json:"testifierName" binding:"required"`
	Story              string     `json:"story" binding:"required"`
	Testimony_Date     *time.Time `json:"testimonyDate"`
	Image_URL          string     `json:"imageUrl"`
	Is_Approved        bool       `json:"isApproved"`
	Linked_Event_IDs   []int64    `json:"linkedEventIds"`
	Linked_Meeting_IDs []int64    `json:"linkedMeetingIds"`
	Linked_Speaker_IDs []int64    `json:"linkedSpeakerIds"`
}

// TestimonySubmission is the public submission form. Submitted stories always
// land unapproved and wait for an editor.
type TestimonySubmission struct {
	Title          string     `json:"title" binding:"required"`
	Testifier_Name string     `json:"testifierName" binding:"required"`
	Story          string     `json:"story" binding:"required"`
	Testimony_Date *time.Time `json:"testimonyDate"`
}
