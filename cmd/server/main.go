package main

import (
	"log"
	"strconv"

	"github.com/Raphaon/LoveLanguage/internal/config"
	"github.com/Raphaon/LoveLanguage/internal/content"
	"github.com/Raphaon/LoveLanguage/internal/database"
	"github.com/Raphaon/LoveLanguage/internal/handlers"
	"github.com/Raphaon/LoveLanguage/internal/middleware"
	"github.com/Raphaon/LoveLanguage/internal/services"
	"github.com/Raphaon/LoveLanguage/internal/storage"
	"github.com/Raphaon/LoveLanguage/internal/ws"

	_ "github.com/Raphaon/LoveLanguage/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Love Language API
// @version         1.0
// @description     API for the love language quiz, gesture suggestions and conversation prompts
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	var store storage.Store
	if cfg.StoreEngine == storage.EngineMemory {
		var err error
		store, err = storage.NewByEngine(cfg.StoreEngine, nil)
		if err != nil {
			log.Fatalf("failed to build store: %v", err)
		}
	} else {
		db := database.Connect(cfg)
		database.AutoMigrate(db)
		var err error
		store, err = storage.NewByEngine(cfg.StoreEngine, db)
		if err != nil {
			log.Fatalf("failed to build store: %v", err)
		}
	}
	storageService := storage.NewService(store)

	retryMax, _ := strconv.Atoi(cfg.ContentRetryMax)
	loader := content.NewLoader(content.Options{
		Dir:      cfg.ContentDir,
		BaseURL:  cfg.ContentBaseURL,
		RetryMax: retryMax,
	})

	hub := ws.NewHub()

	authService := services.NewAuthService(storageService, cfg.JWTSecret)
	scoringService := services.NewScoringService()
	proceduralService := services.NewProceduralQuestionService(loader)
	quizService := services.NewQuizService(loader, proceduralService, scoringService, storageService)
	gestureService := services.NewGestureService(loader, storageService)
	conversationService := services.NewConversationService(loader, storageService)

	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(storageService)
	quizHandler := handlers.NewQuizHandler(quizService, storageService, hub)
	questionsHandler := handlers.NewQuestionsHandler(loader)
	resultsHandler := handlers.NewResultsHandler(scoringService, storageService)
	gestureHandler := handlers.NewGestureHandler(gestureService)
	conversationHandler := handlers.NewConversationHandler(conversationService)
	settingsHandler := handlers.NewSettingsHandler(storageService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/quiz/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		profile := api.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.SaveProfile)
			profile.GET("/onboarding", profileHandler.GetOnboarding)
			profile.PUT("/onboarding", profileHandler.SetOnboarding)
		}
		api.GET("/relationship-types", profileHandler.RelationshipTypes)
		api.GET("/love-languages", gestureHandler.ListLoveLanguages)
		api.GET("/love-languages/:code/gestures", gestureHandler.GesturesForLanguage)
		api.GET("/questions", questionsHandler.ListQuestions)

		quiz := api.Group("/quiz")
		{
			quiz.GET("", quizHandler.GetState)
			quiz.POST("/start", quizHandler.StartQuiz)
			quiz.POST("/answer", quizHandler.SubmitAnswer)
			quiz.POST("/previous", quizHandler.Previous)
			quiz.POST("/finish", quizHandler.Finish)
			quiz.POST("/reset", quizHandler.Reset)
		}

		results := api.Group("/results")
		{
			results.GET("", resultsHandler.ListResults)
			results.GET("/latest", resultsHandler.LatestResult)
			results.GET("/compare", resultsHandler.CompareResults)
			results.GET("/export", resultsHandler.ExportResults)
			results.GET("/:id", resultsHandler.GetResult)
		}

		gestures := api.Group("/gestures")
		{
			gestures.GET("", gestureHandler.ListGestures)
			gestures.GET("/random", gestureHandler.RandomGesture)
			gestures.GET("/favorites", gestureHandler.ListFavorites)
			gestures.GET("/statistics", gestureHandler.Statistics)
			gestures.POST("/:id/favorite", gestureHandler.ToggleFavorite)
		}

		conversations := api.Group("/conversations")
		{
			conversations.GET("", conversationHandler.ListQuestions)
			conversations.GET("/random", conversationHandler.RandomQuestion)
			conversations.GET("/themes", conversationHandler.ListThemes)
			conversations.GET("/depths", conversationHandler.ListDepths)
			conversations.GET("/favorites", conversationHandler.ListFavorites)
			conversations.POST("/:id/favorite", conversationHandler.ToggleFavorite)
		}

		settings := api.Group("/settings")
		settings.Use(middleware.JWTAuth(authService))
		{
			settings.GET("", settingsHandler.GetSettings)
			settings.PUT("", settingsHandler.SaveSettings)
			settings.POST("/reset", settingsHandler.ResetApp)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
