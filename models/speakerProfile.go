package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SocialLinks is stored as a jsonb column.
type SocialLinks []SocialLink

func (s SocialLinks) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *SocialLinks) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for SocialLinks: %T", src)
	}
}

type SpeakerProfile struct {
	Speaker_Profile_ID int            `json:"speakerProfileId" goqu:"skipinsert"`
	Name               string         `json:"name"`
	Title              string         `json:"title"`
	Bio                string         `json:"bio"`
	Profile_Image      string         `json:"profileImage"`
	Gallery_Images     pq.StringArray `json:"galleryImages"`
	Website            string         `json:"website"`
	Email              string         `json:"email"`
	Social_Links       SocialLinks    `json:"socialLinks"`
	Created_By         int            `json:"createdBy"`
	Datetime_Create    time.Time      `json:"datetimeCreate" goqu:"skipinsert"`
	Updated_By         int            `json:"updatedBy"`
	Datetime_Update    time.Time      `json:"datetimeUpdate" goqu:"skipinsert"`
}

type SpeakerProfileCreate struct {
	Name           string      `json:"name" binding:"required"`
	Title          string      `json:"title"`
	Bio            string      `json:"bio"`
	Profile_Image  string      `json:"profileImage"`
	Gallery_Images []string    `json:"galleryImages"`
	Website        string      `json:"website"`
	Email          string      `json:"email"`
	Social_Links   SocialLinks `json:"socialLinks"`
}
