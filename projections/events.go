// Package projections derives the view structures the public pages render
// from flat entity lists: temporal partitions, cross-entity joins, and
// homepage feature selection. Everything here is pure; handlers fetch, then
// project.
package projections

import (
	"sort"
	"time"

	"github.com/ShalomVision/models"
)

// PartitionEvents splits events into upcoming and past relative to now.
// An event dated exactly at now counts as upcoming. Upcoming events come back
// soonest first (ties keep input order); past events keep their input order.
func PartitionEvents(events []models.Event, now time.Time) (upcoming, past []models.Event) {
	for _, e := range events {
		if !e.Event_Date.Before(now) {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Event_Date.Before(upcoming[j].Event_Date)
	})
	return upcoming, past
}

// NextEvent returns the nearest upcoming event, or nil when none exists.
func NextEvent(events []models.Event, now time.Time) *models.Event {
	upcoming, _ := PartitionEvents(events, now)
	if len(upcoming) == 0 {
		return nil
	}
	return &upcoming[0]
}

// FeaturedEvents selects events flagged for the homepage carousel, most
// recent first.
func FeaturedEvents(events []models.Event) []models.Event {
	var featured []models.Event
	for _, e := range events {
		if e.Show_On_Homepage_Carousel {
			featured = append(featured, e)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].Event_Date.After(featured[j].Event_Date)
	})
	return featured
}
