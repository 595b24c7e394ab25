package routes

import (
	"pulse_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEngagements   = "/engagements"
	PathSolicitations = "/solicitations"
	PathTestimonials  = "/testimonials"
	PathFeedback      = "/feedback"
	PathTasks         = "/tasks"
	PathAgents        = "/agents"
	PathReports       = "/reports"
)

func addTrackerRoutes(
	rg *gin.RouterGroup,
	engagementHandler *handlers.EngagementHandler,
	solicitationHandler *handlers.SolicitationHandler,
	testimonialHandler *handlers.TestimonialHandler,
	taskHandler *handlers.TaskHandler,
	agentHandler *handlers.AgentHandler,
	reportHandler *handlers.ReportHandler,
	chatSummaryHandler *handlers.ChatSummaryHandler,
) {
	engagements := rg.Group(PathEngagements)
	{
		engagements.POST("", engagementHandler.CreateEngagement)
		engagements.GET("", engagementHandler.ListEngagements)
		engagements.GET("/:id", engagementHandler.GetEngagement)
		engagements.PATCH("/:id", engagementHandler.UpdateEngagement)
		engagements.DELETE("/:id", engagementHandler.DeleteEngagement)
		engagements.GET("/:id/chat-summary", chatSummaryHandler.GetChatSummary)
	}

	solicitations := rg.Group(PathSolicitations)
	{
		solicitations.POST("", solicitationHandler.CreateSolicitation)
		solicitations.GET("", solicitationHandler.ListSolicitations)
	}

	// Public endpoints for the token link and the form submit.
	feedback := rg.Group(PathFeedback)
	{
		feedback.GET("/:token", solicitationHandler.GetSolicitationForm)
		feedback.POST("", testimonialHandler.SubmitFeedback)
	}

	testimonials := rg.Group(PathTestimonials)
	{
		testimonials.POST("", testimonialHandler.CreateTestimonial)
		testimonials.GET("", testimonialHandler.ListTestimonials)
		testimonials.GET("/:id", testimonialHandler.GetTestimonial)
		testimonials.PATCH("/:id", testimonialHandler.UpdateTestimonial)
	}

	tasks := rg.Group(PathTasks)
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	agents := rg.Group(PathAgents)
	{
		agents.POST("", agentHandler.CreateAgent)
		agents.GET("", agentHandler.ListAgents)
		agents.GET("/:id", agentHandler.GetAgent)
		agents.PATCH("/:id", agentHandler.UpdateAgent)
		agents.DELETE("/:id", agentHandler.DeleteAgent)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/engagements", reportHandler.EngagementOverview)
		reports.GET("/testimonials", reportHandler.TestimonialInsights)
	}
}
