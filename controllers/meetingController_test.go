package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func meetingColumns() []string {
	return []string{
		"meeting_id", "title", "summary", "meeting_date", "images", "speaker_ids",
		"is_regular", "frequency", "day_of_week", "time_of_day",
		"show_on_homepage", "show_on_homepage_carousel",
		"created_by", "datetime_create", "updated_by", "datetime_update",
	}
}

// Test CreateMeeting - schedule fields are mutually exclusive: a regular
// meeting drops its date, a one-off drops its recurrence fields
func TestCreateMeetingScheduleExclusivity(t *testing.T) {
	tests := []struct {
		name            string
		body            map[string]interface{}
		expectDate      bool
		expectFrequency string
	}{
		{
			name: "regular meeting drops the date",
			body: map[string]interface{}{
				"title":       "Sunday Service",
				"isRegular":   true,
				"frequency":   "weekly",
				"dayOfWeek":   "Sunday",
				"timeOfDay":   "10:00",
				"meetingDate": "2025-03-01T10:00:00Z",
			},
			expectDate:      false,
			expectFrequency: "weekly",
		},
		{
			name: "one-off meeting drops recurrence fields",
			body: map[string]interface{}{
				"title":       "Easter Vigil",
				"isRegular":   false,
				"frequency":   "weekly",
				"dayOfWeek":   "Sunday",
				"meetingDate": "2025-04-19T20:00:00Z",
			},
			expectDate:      true,
			expectFrequency: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			mock.ExpectQuery(`INSERT INTO "meeting"`).
				WillReturnRows(sqlmock.NewRows([]string{"meeting_id"}).AddRow(3))

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockEditor())

			bodyBytes, _ := json.Marshal(tt.body)
			c.Request = httptest.NewRequest("POST", "/meetings", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			CreateMeeting(c)

			assert.Equal(t, http.StatusCreated, w.Code)

			var meeting map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &meeting)
			assert.Equal(t, float64(3), meeting["meetingId"])
			assert.Equal(t, tt.expectFrequency, meeting["frequency"])
			if tt.expectDate {
				assert.NotNil(t, meeting["meetingDate"])
			} else {
				assert.Nil(t, meeting["meetingDate"])
			}
		})
	}
}

// Test CreateMeeting - validation and failure paths
func TestCreateMeetingErrors(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		insertFails    bool
		expectedStatus int
	}{
		{
			name:           "missing title",
			body:           map[string]interface{}{"summary": "no title"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "insert failure",
			body:           map[string]interface{}{"title": "Prayer Night"},
			insertFails:    true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.insertFails {
				mock.ExpectQuery(`INSERT INTO "meeting"`).
					WillReturnError(assert.AnError)
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockEditor())

			bodyBytes, _ := json.Marshal(tt.body)
			c.Request = httptest.NewRequest("POST", "/meetings", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			CreateMeeting(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// Test GetMeetings with the regular filter
func TestGetMeetings(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedWhere string
	}{
		{
			name:          "all meetings",
			query:         "",
			expectedWhere: `SELECT \* FROM "meeting" ORDER BY`,
		},
		{
			name:          "regular only",
			query:         "?regular=true",
			expectedWhere: `"is_regular" IS TRUE`,
		},
		{
			name:          "one-off only",
			query:         "?regular=false",
			expectedWhere: `"is_regular" IS FALSE`,
		},
		{
			name:          "homepage carousel",
			query:         "?featured=true",
			expectedWhere: `"show_on_homepage_carousel" IS TRUE`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			now := time.Now()
			rows := sqlmock.NewRows(meetingColumns()).
				AddRow(1, "Friday Prayer Night", "A night of prayer", now, nil, nil,
					false, "", "", "", false, false, 1, now, 1, now)
			mock.ExpectQuery(tt.expectedWhere).WillReturnRows(rows)

			c, w := SetupTestContext()
			SetAnonymous(c)
			c.Request = httptest.NewRequest("GET", "/meetings"+tt.query, nil)

			GetMeetings(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var meetings []map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &meetings)
			assert.Len(t, meetings, 1)
		})
	}
}

// Test UpdateMeeting
func TestUpdateMeeting(t *testing.T) {
	tests := []struct {
		name           string
		meetingID      string
		rowsAffected   int64
		expectedStatus int
	}{
		{
			name:           "successful update",
			meetingID:      "1",
			rowsAffected:   1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "meeting not found",
			meetingID:      "999",
			rowsAffected:   0,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid meeting ID",
			meetingID:      "invalid",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.meetingID != "invalid" {
				mock.ExpectExec(`UPDATE "meeting"`).
					WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockEditor())
			c.Params = []gin.Param{{Key: "meeting_id", Value: tt.meetingID}}

			bodyBytes, _ := json.Marshal(map[string]interface{}{"title": "Renamed"})
			c.Request = httptest.NewRequest("PUT", "/meetings/"+tt.meetingID, bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			UpdateMeeting(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
