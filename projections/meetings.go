package projections

import (
	"sort"

	"github.com/ShalomVision/models"
)

// PartitionMeetings splits meetings into the regular-gatherings bucket and
// past summaries. Regular meetings keep input order; past summaries are
// ordered most recent first, with undated meetings sorting as the oldest.
func PartitionMeetings(meetings []models.Meeting) (regular, pastSummaries []models.Meeting) {
	for _, m := range meetings {
		if m.Is_Regular {
			regular = append(regular, m)
		} else {
			pastSummaries = append(pastSummaries, m)
		}
	}
	sort.SliceStable(pastSummaries, func(i, j int) bool {
		di, dj := pastSummaries[i].Meeting_Date, pastSummaries[j].Meeting_Date
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.After(*dj)
	})
	return regular, pastSummaries
}

// FeaturedMeetings selects meetings flagged for the homepage carousel,
// preserving input order.
func FeaturedMeetings(meetings []models.Meeting) []models.Meeting {
	var featured []models.Meeting
	for _, m := range meetings {
		if m.Show_On_Homepage_Carousel {
			featured = append(featured, m)
		}
	}
	return featured
}

// RegularGatherings selects regular meetings flagged for the homepage
// preview section.
func RegularGatherings(meetings []models.Meeting) []models.Meeting {
	var preview []models.Meeting
	for _, m := range meetings {
		if m.Show_On_Homepage && m.Is_Regular {
			preview = append(preview, m)
		}
	}
	return preview
}
