package projections

import (
	"testing"
	"time"

	"github.com/ShalomVision/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestEventsPage(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-02-01")

	past := dated(1, "2025-01-01")
	past.Speaker_IDs = pq.Int64Array{1}
	next := dated(2, "2025-03-01")
	later := dated(3, "2025-06-01")

	speakers := []models.SpeakerProfile{{Speaker_Profile_ID: 1, Name: "Pastor Paul"}}
	testimonies := []models.Testimony{
		{Testimony_ID: 1, Is_Approved: true, Linked_Event_IDs: pq.Int64Array{1}},
		{Testimony_ID: 2, Is_Approved: false, Linked_Event_IDs: pq.Int64Array{1}},
	}

	page := EventsPage([]models.Event{past, next, later}, speakers, testimonies, now)

	assert.NotNil(t, page.NextEvent)
	assert.Equal(t, 2, page.NextEvent.Event_ID)

	// The next event is pulled out of the upcoming list, not repeated in it
	assert.Len(t, page.UpcomingEvents, 1)
	assert.Equal(t, 3, page.UpcomingEvents[0].Event_ID)

	assert.Len(t, page.PastEvents, 1)
	assert.Equal(t, 1, page.PastEvents[0].Event_ID)
	assert.Len(t, page.PastEvents[0].Speakers, 1)
	assert.Len(t, page.PastEvents[0].Testimonies, 1)
	assert.Equal(t, 1, page.PastEvents[0].Testimonies[0].Testimony_ID)
}

func TestEventsPageEmpty(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-02-01")

	page := EventsPage(nil, nil, nil, now)

	assert.Nil(t, page.NextEvent)
	assert.Empty(t, page.UpcomingEvents)
	assert.Empty(t, page.PastEvents)
}

func TestMeetingsPage(t *testing.T) {
	gathering := regularMeeting(1)
	summary := datedMeeting(2, "2025-01-01")
	summary.Speaker_IDs = pq.Int64Array{1}

	speakers := []models.SpeakerProfile{{Speaker_Profile_ID: 1, Name: "Pastor Paul"}}
	testimonies := []models.Testimony{
		{Testimony_ID: 1, Is_Approved: true, Linked_Meeting_IDs: pq.Int64Array{2}},
	}

	page := MeetingsPage([]models.Meeting{gathering, summary}, speakers, testimonies)

	assert.Len(t, page.RegularGatherings, 1)
	assert.Equal(t, 1, page.RegularGatherings[0].Meeting_ID)

	assert.Len(t, page.PastSummaries, 1)
	assert.Equal(t, 2, page.PastSummaries[0].Meeting_ID)
	assert.Len(t, page.PastSummaries[0].Speakers, 1)
	assert.Len(t, page.PastSummaries[0].Testimonies, 1)
}

func TestHomePage(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-02-01")

	featuredEvent := dated(1, "2025-03-01")
	featuredEvent.Show_On_Homepage_Carousel = true
	plainEvent := dated(2, "2025-04-01")

	featuredMeeting := datedMeeting(1, "2025-01-01")
	featuredMeeting.Show_On_Homepage_Carousel = true
	gathering := regularMeeting(2)
	gathering.Show_On_Homepage = true

	page := HomePage(
		[]models.Event{featuredEvent, plainEvent},
		[]models.Meeting{featuredMeeting, gathering},
		now)

	assert.Len(t, page.FeaturedEvents, 1)
	assert.Equal(t, 1, page.FeaturedEvents[0].Event_ID)
	assert.Len(t, page.FeaturedMeetings, 1)
	assert.Equal(t, 1, page.FeaturedMeetings[0].Meeting_ID)
	assert.Len(t, page.RegularGatherings, 1)
	assert.Equal(t, 2, page.RegularGatherings[0].Meeting_ID)
	assert.NotNil(t, page.NextEvent)
	assert.Equal(t, 1, page.NextEvent.Event_ID)
}

func TestSpeakerPage(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-06-01")

	speaker := models.SpeakerProfile{Speaker_Profile_ID: 7, Name: "Pastor Paul"}

	pastEvent := dated(1, "2025-01-01")
	pastEvent.Speaker_IDs = pq.Int64Array{7}

	testimonies := []models.Testimony{
		{Testimony_ID: 1, Is_Approved: true, Linked_Speaker_IDs: pq.Int64Array{7}},
		{Testimony_ID: 2, Is_Approved: false, Linked_Speaker_IDs: pq.Int64Array{7}},
	}

	page := SpeakerPage(speaker, []models.Event{pastEvent}, nil, testimonies, now)

	assert.Equal(t, 7, page.Speaker.Speaker_Profile_ID)
	assert.Len(t, page.Engagements, 1)
	assert.Len(t, page.Testimonies, 1)
	assert.Equal(t, 1, page.Testimonies[0].Testimony_ID)
}
