package models

import "time"

type SupportInfo struct {
	Support_Info_ID   int       `json:"supportInfoId" goqu:"skipinsert"`
	Page_Title        string    `json:"pageTitle"`
	Intro_Text        string    `json:"introText"`
	Image_URL         string    `json:"imageUrl"`
	Donation_Title    string    `json:"donationTitle"`
	Donation_Details  string    `json:"donationDetails"`
	Volunteer_Title   string    `json:"volunteerTitle"`
	Volunteer_Details string    `json:"volunteerDetails"`
	Created_By        int       `json:"createdBy"`
	Datetime_Create   time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By        int       `json:"updatedBy"`
	Datetime_Update   time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type SupportInfoUpdate struct {
	Page_Title        string `json:"pageTitle"`
	Intro_Text        string `json:"introText"`
	Image_URL         string `json:"imageUrl"`
	Donation_Title    string `json:"donationTitle"`
	Donation_Details  string `json:"donationDetails"`
	Volunteer_Title   string `json:"volunteerTitle"`
	Volunteer_Details string `json:"volunteerDetails"`
}
