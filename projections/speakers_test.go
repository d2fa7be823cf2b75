package projections

import (
	"testing"
	"time"

	"github.com/ShalomVision/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestResolveSpeakers(t *testing.T) {
	index := SpeakerIndex([]models.SpeakerProfile{
		{Speaker_Profile_ID: 1, Name: "Pastor Paul"},
		{Speaker_Profile_ID: 2, Name: "Sister Sarah"},
	})

	// Dangling id 99 is dropped silently; order follows the id list
	resolved := ResolveSpeakers([]int64{2, 99, 1}, index)

	assert.Len(t, resolved, 2)
	assert.Equal(t, "Sister Sarah", resolved[0].Name)
	assert.Equal(t, "Pastor Paul", resolved[1].Name)
}

func TestResolveSpeakersEmpty(t *testing.T) {
	index := SpeakerIndex(nil)

	assert.Empty(t, ResolveSpeakers([]int64{1, 2}, index))
	assert.Empty(t, ResolveSpeakers(nil, index))
}

func TestEngagements(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-06-01")

	pastEvent := dated(1, "2025-01-01")
	pastEvent.Speaker_IDs = pq.Int64Array{7}
	futureEvent := dated(2, "2025-12-01")
	futureEvent.Speaker_IDs = pq.Int64Array{7}
	otherSpeaker := dated(3, "2025-02-01")
	otherSpeaker.Speaker_IDs = pq.Int64Array{8}

	pastMeeting := datedMeeting(1, "2025-03-01")
	pastMeeting.Speaker_IDs = pq.Int64Array{7}
	regular := regularMeeting(2)
	regular.Speaker_IDs = pq.Int64Array{7}

	history := Engagements(
		[]models.Event{pastEvent, futureEvent, otherSpeaker},
		[]models.Meeting{pastMeeting, regular},
		7, now)

	// Only past appearances, most recent first; regular meetings never appear
	assert.Len(t, history, 2)
	assert.Equal(t, EngagementMeeting, history[0].Type)
	assert.Equal(t, 1, history[0].Meeting.Meeting_ID)
	assert.Equal(t, EngagementEvent, history[1].Type)
	assert.Equal(t, 1, history[1].Event.Event_ID)
}

func TestEngagementsNone(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-06-01")

	assert.Empty(t, Engagements(nil, nil, 7, now))
}
