package projections

import (
	"testing"
	"time"

	"github.com/ShalomVision/models"
	"github.com/stretchr/testify/assert"
)

func dated(id int, date string) models.Event {
	d, _ := time.Parse("2006-01-02", date)
	return models.Event{Event_ID: id, Title: date, Event_Date: d}
}

func TestPartitionEvents(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-02-01")

	events := []models.Event{
		dated(1, "2025-01-01"),
		dated(2, "2025-06-01"),
		dated(3, "2025-03-01"),
	}

	upcoming, past := PartitionEvents(events, now)

	assert.Len(t, upcoming, 2)
	assert.Equal(t, 3, upcoming[0].Event_ID) // soonest first
	assert.Equal(t, 2, upcoming[1].Event_ID)

	assert.Len(t, past, 1)
	assert.Equal(t, 1, past[0].Event_ID)
}

func TestPartitionEventsBoundary(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-02-01")

	// An event dated exactly now counts as upcoming
	upcoming, past := PartitionEvents([]models.Event{dated(1, "2025-02-01")}, now)

	assert.Len(t, upcoming, 1)
	assert.Empty(t, past)
}

func TestPartitionEventsTiesKeepInputOrder(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-01-01")

	a := dated(1, "2025-03-01")
	b := dated(2, "2025-03-01")

	upcoming, _ := PartitionEvents([]models.Event{a, b}, now)

	assert.Equal(t, 1, upcoming[0].Event_ID)
	assert.Equal(t, 2, upcoming[1].Event_ID)

	upcoming, _ = PartitionEvents([]models.Event{b, a}, now)

	assert.Equal(t, 2, upcoming[0].Event_ID)
	assert.Equal(t, 1, upcoming[1].Event_ID)
}

func TestPartitionEventsPastKeepsInputOrder(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2026-01-01")

	events := []models.Event{
		dated(1, "2025-03-01"),
		dated(2, "2025-01-01"),
		dated(3, "2025-06-01"),
	}

	_, past := PartitionEvents(events, now)

	assert.Len(t, past, 3)
	assert.Equal(t, 1, past[0].Event_ID)
	assert.Equal(t, 2, past[1].Event_ID)
	assert.Equal(t, 3, past[2].Event_ID)
}

func TestNextEvent(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-02-01")

	events := []models.Event{
		dated(1, "2025-01-01"),
		dated(2, "2025-06-01"),
		dated(3, "2025-03-01"),
	}

	next := NextEvent(events, now)
	assert.NotNil(t, next)
	assert.Equal(t, 3, next.Event_ID)
}

func TestNextEventNoneUpcoming(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2026-01-01")

	next := NextEvent([]models.Event{dated(1, "2025-01-01")}, now)
	assert.Nil(t, next)

	next = NextEvent(nil, now)
	assert.Nil(t, next)
}

func TestFeaturedEvents(t *testing.T) {
	a := dated(1, "2025-01-01")
	b := dated(2, "2025-06-01")
	b.Show_On_Homepage_Carousel = true
	c := dated(3, "2025-03-01")
	c.Show_On_Homepage_Carousel = true

	featured := FeaturedEvents([]models.Event{a, b, c})

	assert.Len(t, featured, 2)
	assert.Equal(t, 2, featured[0].Event_ID) // most recent first
	assert.Equal(t, 3, featured[1].Event_ID)
}
