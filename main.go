package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/NU394-s2025TTh/BugSnacks/app/repo"
	"github.com/NU394-s2025TTh/BugSnacks/config"
	"github.com/NU394-s2025TTh/BugSnacks/db"
	"github.com/NU394-s2025TTh/BugSnacks/route"
)

func main() {
	config.LoadEnv()

	logger, err := config.NewLogger(config.Env.LogLevel)
	if err != nil {
		log.Fatal("failed to initialize logger: ", err)
	}
	defer logger.Sync()

	var store repo.Store
	if config.Env.MongoURI == "" {
		logger.Warn("MONGO_URI not set, falling back to the in-memory store; data will not survive a restart")
		store = repo.NewMemoryStore()
	} else {
		mongoDB, err := db.Connect(config.Env.MongoURI, config.Env.MongoDB)
		if err != nil {
			logger.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		logger.Info("connected to MongoDB", zap.String("database", config.Env.MongoDB))
		store = repo.NewMongoStore(mongoDB)
	}

	app := config.NewApp()
	route.SetupRoutes(app, store, logger)

	logger.Info("BugSnacks API listening", zap.String("port", config.Env.AppPort))
	if err := app.Listen(":" + config.Env.AppPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
