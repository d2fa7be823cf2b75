package models

import "time"

type WebsiteSettings struct {
	Website_Settings_ID int       `json:"websiteSettingsId" goqu:"skipinsert"`
	Site_Name           string    `json:"siteName"`
	Site_Tagline        string    `json:"siteTagline"`
	Logo_URL            string    `json:"logoUrl"`
	Created_By          int       `json:"createdBy"`
	Datetime_Create     time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By          int       `json:"updatedBy"`
	Datetime_Update     time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type WebsiteSettingsUpdate struct {
	Site_Name    string `json:"siteName"`
	Site_Tagline string `json:"siteTagline"`
	Logo_URL     string `json:"logoUrl"`
}
