package models

import "time"

type CoreBelief struct {
	Core_Belief_ID      int       `json:"coreBeliefId" goqu:"skipinsert"`
	Title               string    `json:"title"`
	Scripture_Reference string    `json:"scriptureReference"`
	Statement           string    `json:"statement"`
	Display_Order       int       `json:"displayOrder"`
	Created_By          int       `json:"createdBy"`
	Datetime_Create     time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By          int       `json:"updatedBy"`
	Datetime_Update     time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type CoreBeliefCreate struct {
	Title               string `json:"title" binding:"required"`
	Scripture_Reference string `json:"scriptureReference"`
	Statement           string `json:"statement" binding:"required"`
	Display_Order       int    `json:"displayOrder"`
}
