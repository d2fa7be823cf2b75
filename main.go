package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ShalomVision/controllers"
	"github.com/ShalomVision/initializers"
	"github.com/ShalomVision/middlewares"
	"github.com/ShalomVision/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	services.InitEmailService()
	services.InitAnnouncementService()
}

func main() {
	router := gin.Default()

	router.POST("/login", middlewares.RateLimitMiddleware(2, 2, middlewares.ClientKey), controllers.UserLogin)
	router.POST("/signup", middlewares.RateLimitMiddleware(2, 2, middlewares.ClientKey), controllers.PublicUserSignup)
	router.GET("/ping", middlewares.RateLimitMiddleware(2, 2, middlewares.ClientKey), controllers.Ping)

	router.Static("/static", "./static")

	router.POST("/contact", middlewares.RateLimitMiddleware(2, 2, middlewares.ClientKey), controllers.SubmitContactMessage)
	router.POST("/testimonies/submit", middlewares.RateLimitMiddleware(2, 2, middlewares.ClientKey), controllers.SubmitTestimony)

	// Public reads. OptionalAuth resolves the caller's role so list handlers
	// can include editor-only records (unapproved testimonies, inactive
	// ministries) when appropriate; everyone else gets the public view.
	public := router.Group("/")
	public.Use(middlewares.OptionalAuth)
	public.Use(middlewares.RateLimitMiddleware(20, 20, middlewares.ClientKey))
	{
		public.GET("/ministries", controllers.GetMinistries)
		public.GET("/ministries/:ministry_id", controllers.GetMinistry)

		public.GET("/events", controllers.GetEvents)
		public.GET("/events/:event_id", controllers.GetEvent)
		public.GET("/events/:event_id/testimonies", controllers.GetEventTestimonies)

		public.GET("/meetings", controllers.GetMeetings)
		public.GET("/meetings/:meeting_id", controllers.GetMeeting)
		public.GET("/meetings/:meeting_id/testimonies", controllers.GetMeetingTestimonies)

		public.GET("/leaders", controllers.GetLeaders)

		public.GET("/speakers", controllers.GetSpeakers)
		public.GET("/speakers/:speaker_profile_id", controllers.GetSpeaker)
		public.GET("/speakers/:speaker_profile_id/page", controllers.GetSpeakerPage)

		public.GET("/testimonies", controllers.GetTestimonies)
		public.GET("/beliefs", controllers.GetCoreBeliefs)
		public.GET("/support", controllers.GetSupportInfo)
		public.GET("/gallery", controllers.GetGalleryImages)
		public.GET("/settings", controllers.GetWebsiteSettings)

		// Derived page views
		public.GET("/pages/home", controllers.GetHomePage)
		public.GET("/pages/events", controllers.GetEventsPage)
		public.GET("/pages/meetings", controllers.GetMeetingsPage)
	}

	auth := router.Group("/")
	auth.Use(middlewares.CheckAuth)
	auth.Use(middlewares.RateLimitMiddleware(10, 10, middlewares.ClientKey))
	{
		auth.GET("/users/me", controllers.GetCurrentUser)

		// Content mutations: editors and above.
		editor := auth.Group("/")
		editor.Use(middlewares.CheckEditor)
		{
			editor.POST("/ministries", controllers.CreateMinistry)
			editor.PUT("/ministries/:ministry_id", controllers.UpdateMinistry)
			editor.DELETE("/ministries/:ministry_id", controllers.DeleteMinistry)

			editor.POST("/events", controllers.CreateEvent)
			editor.PUT("/events/:event_id", controllers.UpdateEvent)
			editor.DELETE("/events/:event_id", controllers.DeleteEvent)

			editor.POST("/meetings", controllers.CreateMeeting)
			editor.PUT("/meetings/:meeting_id", controllers.UpdateMeeting)
			editor.DELETE("/meetings/:meeting_id", controllers.DeleteMeeting)

			editor.POST("/leaders", controllers.CreateLeader)
			editor.PUT("/leaders/:leader_id", controllers.UpdateLeader)
			editor.DELETE("/leaders/:leader_id", controllers.DeleteLeader)

			editor.POST("/speakers", controllers.CreateSpeaker)
			editor.PUT("/speakers/:speaker_profile_id", controllers.UpdateSpeaker)
			editor.DELETE("/speakers/:speaker_profile_id", controllers.DeleteSpeaker)

			editor.POST("/testimonies", controllers.CreateTestimony)
			editor.PUT("/testimonies/:testimony_id", controllers.UpdateTestimony)
			editor.DELETE("/testimonies/:testimony_id", controllers.DeleteTestimony)

			editor.POST("/beliefs", controllers.CreateCoreBelief)
			editor.PUT("/beliefs/:core_belief_id", controllers.UpdateCoreBelief)
			editor.DELETE("/beliefs/:core_belief_id", controllers.DeleteCoreBelief)

			editor.PUT("/support", controllers.UpdateSupportInfo)

			editor.POST("/gallery", controllers.CreateGalleryImage)
			editor.PUT("/gallery/:gallery_image_id", controllers.UpdateGalleryImage)
			editor.DELETE("/gallery/:gallery_image_id", controllers.DeleteGalleryImage)

			editor.POST("/uploads", controllers.UploadFile)
		}

		// Admin only: user management and site settings.
		admin := auth.Group("/")
		admin.Use(middlewares.CheckAdmin)
		admin.Use(middlewares.RateLimitMiddleware(5, 5, middlewares.ClientKey))
		{
			admin.GET("/users", controllers.GetUsers)
			admin.PATCH("/users/:user_profile_id/role", controllers.UpdateUserRole)
			admin.DELETE("/users/:user_profile_id", controllers.DeleteUser)

			admin.PUT("/settings", controllers.UpdateWebsiteSettings)
		}
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
