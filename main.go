package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskforge/backend/config"
	"taskforge/backend/handlers"
	"taskforge/backend/logging"
	"taskforge/backend/middleware"
	"taskforge/backend/services"
	"taskforge/backend/store"
)

func main() {
	seedFlag := flag.Bool("seed", false, "load demo fixtures and exit")
	flag.Parse()

	cfg := config.Load()
	logging.InitLogger(cfg)
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting TaskForge backend...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: MongoDB connection failed: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB ping failed: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Connected to MongoDB at %s", cfg.MongoURI)

	db := client.Database(cfg.MongoDBName)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		logging.Logger.Fatalf("Event ID: DB_INDEX_FAILED, Description: Failed to create indexes: %v", err)
	}

	stores := store.NewMongo(db)

	jwtService := services.NewJWTService(cfg.SecretKey, cfg.TokenExpiry)
	authService := services.NewAuthService(stores.Users)
	projectService := services.NewProjectService(stores.Projects, stores.Tasks, stores.Comments, stores.Labels, stores.TaskLabels)
	taskService := services.NewTaskService(stores.Tasks, stores.Projects, stores.Comments, stores.TaskLabels)
	commentService := services.NewCommentService(stores.Comments, taskService)
	labelService := services.NewLabelService(stores.Labels, stores.TaskLabels, projectService, taskService)

	if *seedFlag {
		if err := seed(context.Background(), stores); err != nil {
			logging.Logger.Fatalf("Event ID: SEED_FAILED, Description: Seeding failed: %v", err)
		}
		logging.Logger.Info("Event ID: SEED_DONE, Description: Demo fixtures loaded.")
		return
	}

	authMW := middleware.NewAuthMiddleware(jwtService, authService)
	router := handlers.NewRouter(
		handlers.NewAuthHandler(authService, jwtService),
		handlers.NewProjectHandler(projectService, labelService),
		handlers.NewTaskHandler(taskService),
		handlers.NewCommentHandler(commentService),
		handlers.NewLabelHandler(labelService),
		authMW,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:      middleware.CORS(cfg.CORSOrigins)(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost:%s", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed: %v", err)
	}
}
