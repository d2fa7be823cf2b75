package projections

import "github.com/ShalomVision/models"

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// LinkedTestimoniesForEvent returns the approved testimonies linked to the
// given event. This view is always the public one: unapproved testimonies are
// excluded regardless of who is asking.
func LinkedTestimoniesForEvent(testimonies []models.Testimony, eventID int64) []models.Testimony {
	var linked []models.Testimony
	for _, t := range testimonies {
		if t.Is_Approved && containsID(t.Linked_Event_IDs, eventID) {
			linked = append(linked, t)
		}
	}
	return linked
}

// LinkedTestimoniesForMeeting returns the approved testimonies linked to the
// given meeting.
func LinkedTestimoniesForMeeting(testimonies []models.Testimony, meetingID int64) []models.Testimony {
	var linked []models.Testimony
	for _, t := range testimonies {
		if t.Is_Approved && containsID(t.Linked_Meeting_IDs, meetingID) {
			linked = append(linked, t)
		}
	}
	return linked
}

// LinkedTestimoniesForSpeaker returns the approved testimonies linked to the
// given speaker profile.
func LinkedTestimoniesForSpeaker(testimonies []models.Testimony, speakerID int64) []models.Testimony {
	var linked []models.Testimony
	for _, t := range testimonies {
		if t.Is_Approved && containsID(t.Linked_Speaker_IDs, speakerID) {
			linked = append(linked, t)
		}
	}
	return linked
}
