package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"huddle/config"
	"huddle/cron"
	"huddle/database"
	timetableRepo "huddle/database/repository/timetable"
	"huddle/handlers"
	"huddle/routes"
	"huddle/services/conversation"
	ai "huddle/services/intelligence"
	"huddle/services/notification"
	"huddle/services/scheduler"
	"huddle/services/tasks"
	"huddle/services/timetable"
	"huddle/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitDedupCache()

	externalTimeout := time.Duration(config.AppConfig.ExternalTimeoutSec) * time.Second

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	ttRepo := timetableRepo.NewMongoTimetableRepo()

	// services.
	geminiClient, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
	}
	aiSvc := ai.NewDefaultAIService(geminiClient, externalTimeout)

	chatClient := notification.NewChatAPIClient(
		config.AppConfig.ChatAPIBaseURL,
		config.AppConfig.ChatBotToken,
		externalTimeout,
	)

	schedulerSvc := &scheduler.DefaultSchedulerService{
		Repo: ttRepo,
		Resolver: scheduler.NewResolver(scheduler.GridConfig{
			OpenMinute:     config.AppConfig.SlotOpenMinute,
			CloseMinute:    config.AppConfig.SlotCloseMinute,
			GranularityMin: config.AppConfig.SlotGranularityMin,
		}),
	}

	threadStore := conversation.NewRedisThreadStore(utils.GetSessionCacheClient(), 7*24*time.Hour)

	queueRedisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	deadlineScheduler := tasks.NewAsynqDeadlineScheduler(queueRedisOpts)

	convSvc := &conversation.DefaultConversationService{
		AI:        aiSvc,
		Scheduler: schedulerSvc,
		Store:     threadStore,
		Messenger: chatClient,
		Deadline:  deadlineScheduler,
	}

	importSvc := &timetable.DefaultImportService{
		AI:   aiSvc,
		Repo: ttRepo,
	}

	// handlers.
	eventsHandler := handlers.NewEventsHandler(
		convSvc,
		importSvc,
		chatClient,
		chatClient,
		handlers.NewRedisDeduper(utils.GetDedupCacheClient(), 24*time.Hour),
	)
	timetableHandler := handlers.NewTimetableHandler(importSvc)
	meetingHandler := handlers.NewMeetingHandler(schedulerSvc)

	handlerBundle := &handlers.HandlerBundle{
		EventHandler:          eventsHandler.HandleEvent,
		GetTimetableHandler:   timetableHandler.GetTimetableHandler,
		PutTimetableHandler:   timetableHandler.PutTimetableHandler,
		ResolveMeetingHandler: meetingHandler.ResolveHandler,
		HealthHandler:         handlers.HealthHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	go cron.InitDeadlineWorker(convSvc)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetDedupCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
