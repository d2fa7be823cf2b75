package projections

import (
	"sort"
	"time"

	"github.com/ShalomVision/models"
)

// SpeakerIndex builds a by-id lookup for resolving speaker id lists. Built
// once per page load.
func SpeakerIndex(speakers []models.SpeakerProfile) map[int64]models.SpeakerProfile {
	index := make(map[int64]models.SpeakerProfile, len(speakers))
	for _, s := range speakers {
		index[int64(s.Speaker_Profile_ID)] = s
	}
	return index
}

// ResolveSpeakers maps an ordered id list to speaker profiles. Ids with no
// matching profile are dropped silently, so the result may be shorter than
// the id list.
func ResolveSpeakers(ids []int64, index map[int64]models.SpeakerProfile) []models.SpeakerProfile {
	var resolved []models.SpeakerProfile
	for _, id := range ids {
		if s, ok := index[id]; ok {
			resolved = append(resolved, s)
		}
	}
	return resolved
}

const (
	EngagementEvent   = "event"
	EngagementMeeting = "meeting"
)

// Engagement is one past appearance of a speaker, tagged with its source
// entity type for rendering.
type Engagement struct {
	Type    string          `json:"type"`
	Date    time.Time       `json:"date"`
	Event   *models.Event   `json:"event,omitempty"`
	Meeting *models.Meeting `json:"meeting,omitempty"`
}

// Engagements returns the speaker's appearance history: past events and past
// one-off meetings listing the speaker, merged and ordered most recent first.
func Engagements(events []models.Event, meetings []models.Meeting, speakerID int64, now time.Time) []Engagement {
	var history []Engagement
	for i := range events {
		e := events[i]
		if containsID(e.Speaker_IDs, speakerID) && e.Event_Date.Before(now) {
			history = append(history, Engagement{Type: EngagementEvent, Date: e.Event_Date, Event: &e})
		}
	}
	for i := range meetings {
		m := meetings[i]
		if m.Is_Regular || m.Meeting_Date == nil {
			continue
		}
		if containsID(m.Speaker_IDs, speakerID) && m.Meeting_Date.Before(now) {
			history = append(history, Engagement{Type: EngagementMeeting, Date: *m.Meeting_Date, Meeting: &m})
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})
	return history
}
