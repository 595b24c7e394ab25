package routes

import (
	"log"
	"os"
	"strconv"

	_ "pulse_tracker/docs" // This will be auto-generated
	"pulse_tracker/internal/adapter/http/handlers"
	repository2 "pulse_tracker/internal/adapter/persistence/repository"
	"pulse_tracker/internal/infrastructure/chat"
	"pulse_tracker/internal/infrastructure/database"
	"pulse_tracker/internal/usecase"
	"pulse_tracker/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	engagementRepo := repository2.NewEngagementDynamoRepository(ddb)
	solicitationRepo := repository2.NewSolicitationDynamoRepository(ddb)
	testimonialRepo := repository2.NewTestimonialDynamoRepository(ddb)
	taskRepo := repository2.NewTaskDynamoRepository(ddb)
	agentRepo := repository2.NewAgentDynamoRepository(ddb)
	chatSummaryRepo := repository2.NewChatSummaryDynamoRepository(ddb)

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo)
	solicitationUseCase := usecase.NewSolicitationUseCase(solicitationRepo, engagementRepo, frontendURL)
	testimonialUseCase := usecase.NewTestimonialUseCase(testimonialRepo, solicitationRepo, engagementRepo)
	taskUseCase := usecase.NewTaskUseCase(taskRepo, engagementRepo)
	agentUseCase := usecase.NewAgentUseCase(agentRepo, engagementRepo)

	var feedGateway interfaces.IChatFeedGateway
	if gw, err := chat.NewFeedGateway(); err != nil {
		log.Printf("Chat feed gateway not configured: %v", err)
	} else {
		feedGateway = gw
	}

	var summarizerGateway interfaces.ISummarizerGateway
	if gw, err := chat.NewSummarizerGateway(); err != nil {
		log.Printf("Summarizer gateway not configured: %v", err)
	} else {
		summarizerGateway = gw
	}

	chatSummaryUseCase := usecase.NewChatSummaryUseCase(engagementRepo, chatSummaryRepo, feedGateway, summarizerGateway)

	engagementHandler := handlers.NewEngagementHandler(engagementUseCase)
	solicitationHandler := handlers.NewSolicitationHandler(solicitationUseCase)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialUseCase)
	taskHandler := handlers.NewTaskHandler(taskUseCase)
	agentHandler := handlers.NewAgentHandler(agentUseCase)
	reportHandler := handlers.NewReportHandler(engagementUseCase, testimonialUseCase)
	chatSummaryHandler := handlers.NewChatSummaryHandler(chatSummaryUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTrackerRoutes(v1, engagementHandler, solicitationHandler, testimonialHandler, taskHandler, agentHandler, reportHandler, chatSummaryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
