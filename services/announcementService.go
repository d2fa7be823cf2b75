package services

import (
	"context"
	"log"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// AnnouncementService publishes FCM topic messages when new events or meeting
// summaries go live, so subscribed clients can surface them. Without Firebase
// credentials it degrades to a logged no-op.
type AnnouncementService struct {
	fcmClient *messaging.Client
}

const (
	TopicEvents   = "events"
	TopicMeetings = "meetings"
)

var announcementService *AnnouncementService

func InitAnnouncementService() {
	announcementService = &AnnouncementService{}

	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")

	var app *firebase.App
	var err error

	if serviceAccountPath != "" {
		opt := option.WithCredentialsFile(serviceAccountPath)
		app, err = firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			log.Printf("Failed to initialize Firebase app with service account: %v", err)
			return
		}
		log.Println("Firebase initialized with service account file")
	} else {
		app, err = firebase.NewApp(context.Background(), nil)
		if err != nil {
			log.Printf("Failed to initialize Firebase app with ADC: %v", err)
			return
		}
		log.Println("Firebase initialized with Application Default Credentials")
	}

	announcementService.fcmClient, err = app.Messaging(context.Background())
	if err != nil {
		log.Printf("Failed to get Firebase messaging client: %v", err)
		return
	}

	log.Println("Announcement service initialized successfully with FCM")
}

func GetAnnouncementService() *AnnouncementService {
	return announcementService
}

// Announce sends a topic notification. Callers fire this from a goroutine;
// failures are logged, never surfaced to the admin who created the content.
func (s *AnnouncementService) Announce(topic, title, body string, data map[string]string) {
	if s == nil || s.fcmClient == nil {
		log.Printf("Announcement skipped (FCM not initialized): %s", title)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := s.fcmClient.Send(ctx, msg)
	if err != nil {
		log.Printf("Failed to send announcement to topic %s: %v", topic, err)
		return
	}

	log.Printf("Announcement sent to topic %s: %s", topic, id)
}
