package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/GDG-Vishnu/community-platform/docs"
	"github.com/GDG-Vishnu/community-platform/feed"
	"github.com/GDG-Vishnu/community-platform/handlers"
	"github.com/GDG-Vishnu/community-platform/middleware"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/revalidate"
	"github.com/GDG-Vishnu/community-platform/services"
	"github.com/GDG-Vishnu/community-platform/storage"
)

func RegisterRoutes(r *gin.Engine, store storage.ObjectStore) {
	repos := repositories.New()
	broker := feed.NewBroker()
	svc := services.New(repos, store, revalidate.NewFromConfig(), broker)
	h := handlers.New(svc, broker)

	r.Use(middleware.CORS())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// public marketing surface
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)
	r.GET("/public/forms/:id", h.Form.GetPublicForm)
	r.POST("/submissions", middleware.OptionalAuth(), h.Submission.SubmitForm)
	r.GET("/team", middleware.OptionalAuth(), h.Team.ListMembers)
	r.GET("/events", middleware.OptionalAuth(), h.Event.ListEvents)
	r.GET("/events/:id", middleware.OptionalAuth(), h.Event.GetEvent)
	r.GET("/gallery", h.Gallery.ListImages)
	r.POST("/contact", h.Contact.CreateMessage)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		users := auth.Group("/users")
		{
			users.GET("", h.User.ListUsers)
			users.PUT("/:id/role", h.User.UpdateUserRole)
		}

		forms := auth.Group("/forms")
		{
			forms.GET("", h.Form.GetAllForms)
			forms.POST("", h.Form.CreateForm)
			forms.GET("/:id", h.Form.GetFormByID)
			forms.PUT("/:id", h.Form.UpdateForm)
			forms.DELETE("/:id", h.Form.DeleteForm)
			forms.POST("/:id/clone", h.Form.CloneForm)
			forms.PUT("/:id/publish", h.Form.PublishForm)
			forms.GET("/:id/validate", h.Form.ValidateFormStructure)
			forms.GET("/:id/analytics", h.Form.GetFormAnalytics)
			forms.GET("/:id/submissions", h.Submission.ListSubmissions)
			forms.DELETE("/:id/submissions", h.Submission.ResetFormSubmissions)
		}

		sections := auth.Group("/sections")
		{
			sections.POST("", h.Section.CreateSection)
			sections.PUT("/reorder", h.Section.ReorderSections)
			sections.GET("/:id", h.Section.GetSection)
			sections.PUT("/:id", h.Section.UpdateSection)
			sections.DELETE("/:id", h.Section.DeleteSection)
			sections.POST("/:id/duplicate", h.Section.DuplicateSection)
			sections.GET("/:id/fields", h.Field.GetSectionFields)
		}

		fields := auth.Group("/fields")
		{
			fields.POST("", h.Field.CreateField)
			fields.PUT("/reorder", h.Field.ReorderFields)
			fields.PUT("/:id", h.Field.UpdateField)
			fields.DELETE("/:id", h.Field.DeleteField)
			fields.POST("/:id/duplicate", h.Field.DuplicateField)
			fields.PUT("/:id/move", h.Field.MoveField)
		}

		submissions := auth.Group("/submissions")
		{
			submissions.GET("/:id", h.Submission.GetSubmission)
			submissions.DELETE("/:id", h.Submission.DeleteSubmission)
		}

		team := auth.Group("/team")
		{
			team.POST("", h.Team.CreateMember)
			team.PUT("/reorder", h.Team.ReorderMembers)
			team.PUT("/:id", h.Team.UpdateMember)
			team.DELETE("/:id", h.Team.DeleteMember)
		}

		events := auth.Group("/admin/events")
		{
			events.POST("", h.Event.CreateEvent)
			events.PUT("/:id", h.Event.UpdateEvent)
			events.DELETE("/:id", h.Event.DeleteEvent)
		}

		gallery := auth.Group("/gallery")
		{
			gallery.POST("", h.Gallery.UploadImage)
			gallery.PUT("/reorder", h.Gallery.ReorderImages)
			gallery.PUT("/:id", h.Gallery.UpdateImage)
			gallery.DELETE("/:id", h.Gallery.DeleteImage)
		}

		contact := auth.Group("/admin/contact")
		{
			contact.GET("", h.Contact.ListMessages)
			contact.PUT("/:id/resolve", h.Contact.ResolveMessage)
			contact.DELETE("/:id", h.Contact.DeleteMessage)
		}
	}

	// websocket auth happens inside the handler (token query param)
	r.GET("/ws/forms/:id/submissions", h.WS.WatchSubmissions)
}
