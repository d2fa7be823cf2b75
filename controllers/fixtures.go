package controllers

import (
	"time"

	"github.com/ShalomVision/models"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Test fixture data for use in tests

// MockMember creates a sample member user for testing
func MockMember() models.UserProfile {
	return models.UserProfile{
		User_Profile_ID: 1,
		Email:           "member@example.com",
		Full_Name:       "Mary Member",
		Role:            models.RoleMember,
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockMemberWithPassword creates a sample member with a bcrypt hashed password
// Password is "password123" - use this in tests
func MockMemberWithPassword() models.UserProfile {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := MockMember()
	user.Password = string(hashedPassword)
	return user
}

// MockEditor creates a sample editor user for testing
func MockEditor() models.UserProfile {
	return models.UserProfile{
		User_Profile_ID: 2,
		Email:           "editor@example.com",
		Full_Name:       "Eddie Editor",
		Role:            models.RoleEditor,
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockAdmin creates a sample admin user for testing
func MockAdmin() models.UserProfile {
	return models.UserProfile{
		User_Profile_ID: 3,
		Email:           "admin@example.com",
		Full_Name:       "Ada Admin",
		Role:            models.RoleAdmin,
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockSuperAdmin creates a sample super admin user for testing
func MockSuperAdmin() models.UserProfile {
	return models.UserProfile{
		User_Profile_ID: 4,
		Email:           "super@example.com",
		Full_Name:       "Sam Super",
		Role:            models.RoleSuperAdmin,
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockMinistry creates a sample active ministry for testing
func MockMinistry() models.Ministry {
	return models.Ministry{
		Ministry_ID:     1,
		Title:           "Youth Ministry",
		Description:     "Weekly youth gatherings",
		Leader_Name:     "John Doe",
		Contact_Email:   "youth@example.com",
		Display_Order:   1,
		Is_Active:       true,
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockEvent creates a sample event for testing
func MockEvent() models.Event {
	return models.Event{
		Event_ID:        1,
		Title:           "Annual Convention",
		Description:     "Three days of worship",
		Event_Date:      time.Now().Add(48 * time.Hour),
		Location:        "Main Hall",
		Speaker_IDs:     pq.Int64Array{1},
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockMeeting creates a sample one-off meeting for testing
func MockMeeting() models.Meeting {
	date := time.Now().Add(-24 * time.Hour)
	return models.Meeting{
		Meeting_ID:      1,
		Title:           "Friday Prayer Night",
		Summary:         "A night of prayer",
		Meeting_Date:    &date,
		Speaker_IDs:     pq.Int64Array{1},
		Created_By:      1,
		Updated_By:      1,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockTestimony creates a sample approved testimony for testing
func MockTestimony() models.Testimony {
	date := time.Now().Add(-72 * time.Hour)
	return models.Testimony{
		Testimony_ID:     1,
		Title:            "Healed and grateful",
		Testifier_Name:   "Grace T.",
		Story:            "I was prayed for and recovered fully.",
		Testimony_Date:   &date,
		Is_Approved:      true,
		Linked_Event_IDs: pq.Int64Array{1},
		Created_By:       1,
		Updated_By:       1,
		Datetime_Create:  time.Now(),
		Datetime_Update:  time.Now(),
	}
}

// MockSpeaker creates a sample speaker profile for testing
func MockSpeaker() models.SpeakerProfile {
	return models.SpeakerProfile{
		Speaker_Profile_ID: 1,
		Name:               "Pastor Paul",
		Title:              "Senior Pastor",
		Bio:                "Serving since 1998",
		Created_By:         1,
		Updated_By:         1,
		Datetime_Create:    time.Now(),
		Datetime_Update:    time.Now(),
	}
}
