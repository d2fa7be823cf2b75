package projections

import (
	"time"

	"github.com/ShalomVision/models"
)

// EventView is an event with its speaker id list resolved and, for past
// events, the approved testimonies linked to it.
type EventView struct {
	models.Event
	Speakers    []models.SpeakerProfile `json:"speakers"`
	Testimonies []models.Testimony      `json:"testimonies,omitempty"`
}

type MeetingView struct {
	models.Meeting
	Speakers    []models.SpeakerProfile `json:"speakers"`
	Testimonies []models.Testimony      `json:"testimonies,omitempty"`
}

type EventsPageView struct {
	NextEvent      *EventView  `json:"nextEvent"`
	UpcomingEvents []EventView `json:"upcomingEvents"`
	PastEvents     []EventView `json:"pastEvents"`
}

type MeetingsPageView struct {
	RegularGatherings []MeetingView `json:"regularGatherings"`
	PastSummaries     []MeetingView `json:"pastSummaries"`
}

type HomePageView struct {
	FeaturedEvents    []models.Event   `json:"featuredEvents"`
	FeaturedMeetings  []models.Meeting `json:"featuredMeetings"`
	RegularGatherings []models.Meeting `json:"regularGatherings"`
	NextEvent         *models.Event    `json:"nextEvent"`
}

type SpeakerPageView struct {
	Speaker     models.SpeakerProfile `json:"speaker"`
	Engagements []Engagement          `json:"engagements"`
	Testimonies []models.Testimony    `json:"testimonies"`
}

func buildEventView(e models.Event, index map[int64]models.SpeakerProfile, testimonies []models.Testimony, withTestimonies bool) EventView {
	view := EventView{
		Event:    e,
		Speakers: ResolveSpeakers(e.Speaker_IDs, index),
	}
	if withTestimonies {
		view.Testimonies = LinkedTestimoniesForEvent(testimonies, int64(e.Event_ID))
	}
	return view
}

// EventsPage assembles the events page from the raw lists: the next upcoming
// event, the remaining upcoming events, and past events with their linked
// testimonies.
func EventsPage(events []models.Event, speakers []models.SpeakerProfile, testimonies []models.Testimony, now time.Time) EventsPageView {
	index := SpeakerIndex(speakers)
	upcoming, past := PartitionEvents(events, now)

	var page EventsPageView
	if len(upcoming) > 0 {
		next := buildEventView(upcoming[0], index, testimonies, false)
		page.NextEvent = &next
		for _, e := range upcoming[1:] {
			page.UpcomingEvents = append(page.UpcomingEvents, buildEventView(e, index, testimonies, false))
		}
	}
	for _, e := range past {
		page.PastEvents = append(page.PastEvents, buildEventView(e, index, testimonies, true))
	}
	return page
}

// MeetingsPage assembles the meetings page: regular gatherings and past
// summaries, each with resolved speakers and linked testimonies.
func MeetingsPage(meetings []models.Meeting, speakers []models.SpeakerProfile, testimonies []models.Testimony) MeetingsPageView {
	index := SpeakerIndex(speakers)
	regular, pastSummaries := PartitionMeetings(meetings)

	var page MeetingsPageView
	for _, m := range regular {
		page.RegularGatherings = append(page.RegularGatherings, MeetingView{
			Meeting:  m,
			Speakers: ResolveSpeakers(m.Speaker_IDs, index),
		})
	}
	for _, m := range pastSummaries {
		page.PastSummaries = append(page.PastSummaries, MeetingView{
			Meeting:     m,
			Speakers:    ResolveSpeakers(m.Speaker_IDs, index),
			Testimonies: LinkedTestimoniesForMeeting(testimonies, int64(m.Meeting_ID)),
		})
	}
	return page
}

// HomePage assembles the homepage feature sections.
func HomePage(events []models.Event, meetings []models.Meeting, now time.Time) HomePageView {
	return HomePageView{
		FeaturedEvents:    FeaturedEvents(events),
		FeaturedMeetings:  FeaturedMeetings(meetings),
		RegularGatherings: RegularGatherings(meetings),
		NextEvent:         NextEvent(events, now),
	}
}

// SpeakerPage assembles a speaker's public page: profile, engagement history,
// and linked testimonies.
func SpeakerPage(speaker models.SpeakerProfile, events []models.Event, meetings []models.Meeting, testimonies []models.Testimony, now time.Time) SpeakerPageView {
	id := int64(speaker.Speaker_Profile_ID)
	return SpeakerPageView{
		Speaker:     speaker,
		Engagements: Engagements(events, meetings, id, now),
		Testimonies: LinkedTestimoniesForSpeaker(testimonies, id),
	}
}
