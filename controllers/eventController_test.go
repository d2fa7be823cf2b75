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

func eventColumns() []string {
	return []string{
		"event_id", "title", "description", "event_date", "location", "image_url",
		"speaker_ids", "is_coming_soon", "show_on_homepage_carousel",
		"created_by", "datetime_create", "updated_by", "datetime_update",
	}
}

func eventRow(rows *sqlmock.Rows, id int, title string, date time.Time) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, title, "", date, "Main Hall", "", nil, false, false, 1, now, 1, now)
}

// Test GetEvents with its filters
func TestGetEvents(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedQuery  string
		expectedStatus int
	}{
		{
			name:           "all events",
			query:          "",
			expectedQuery:  `SELECT \* FROM "event" ORDER BY`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "featured filter",
			query:          "?featured=true",
			expectedQuery:  `"show_on_homepage_carousel" IS TRUE`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "from filter",
			query:          "?from=2025-01-01T00:00:00Z",
			expectedQuery:  `"event_date" >=`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid from timestamp",
			query:          "?from=yesterday",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus == http.StatusOK {
				rows := sqlmock.NewRows(eventColumns())
				eventRow(rows, 1, "Annual Convention", time.Now())
				mock.ExpectQuery(tt.expectedQuery).WillReturnRows(rows)
			}

			c, w := SetupTestContext()
			SetAnonymous(c)
			c.Request = httptest.NewRequest("GET", "/events"+tt.query, nil)

			GetEvents(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// Test GetEvent
func TestGetEvent(t *testing.T) {
	tests := []struct {
		name           string
		eventID        string
		exists         bool
		expectedStatus int
	}{
		{
			name:           "event found",
			eventID:        "1",
			exists:         true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "event not found",
			eventID:        "999",
			exists:         false,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid event ID",
			eventID:        "invalid",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.eventID != "invalid" {
				rows := sqlmock.NewRows(eventColumns())
				if tt.exists {
					eventRow(rows, 1, "Annual Convention", time.Now())
				}
				mock.ExpectQuery("SELECT").WillReturnRows(rows)
			}

			c, w := SetupTestContext()
			SetAnonymous(c)
			c.Params = []gin.Param{{Key: "event_id", Value: tt.eventID}}
			c.Request = httptest.NewRequest("GET", "/events/"+tt.eventID, nil)

			GetEvent(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var event map[string]interface{}
				_ = json.Unmarshal(w.Body.Bytes(), &event)
				assert.Equal(t, float64(1), event["eventId"])
			}
		})
	}
}

// Test CreateEvent
func TestCreateEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		insertSucceeds bool
		expectedStatus int
	}{
		{
			name: "successful creation",
			body: map[string]interface{}{
				"title":      "Annual Convention",
				"eventDate":  "2025-08-01T10:00:00Z",
				"location":   "Main Hall",
				"speakerIds": []int64{1, 2},
			},
			insertSucceeds: true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			body:           map[string]interface{}{"eventDate": "2025-08-01T10:00:00Z"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing date",
			body:           map[string]interface{}{"title": "Undated"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.insertSucceeds {
				mock.ExpectQuery(`INSERT INTO "event"`).
					WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(9))
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockEditor())

			bodyBytes, _ := json.Marshal(tt.body)
			c.Request = httptest.NewRequest("POST", "/events", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			CreateEvent(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var event map[string]interface{}
				_ = json.Unmarshal(w.Body.Bytes(), &event)
				assert.Equal(t, float64(9), event["eventId"])
			}
		})
	}
}

// Test DeleteEvent
func TestDeleteEvent(t *testing.T) {
	tests := []struct {
		name           string
		eventID        string
		rowsAffected   int64
		expectedStatus int
	}{
		{
			name:           "successful delete",
			eventID:        "1",
			rowsAffected:   1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "event not found",
			eventID:        "999",
			rowsAffected:   0,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			mock.ExpectExec(`DELETE FROM "event"`).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockEditor())
			c.Params = []gin.Param{{Key: "event_id", Value: tt.eventID}}
			c.Request = httptest.NewRequest("DELETE", "/events/"+tt.eventID, nil)

			DeleteEvent(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
