package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	AppPort  string
	MongoURI string
	MongoDB  string
	LogLevel string
}

var Env EnvConfig

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	Env.AppPort = os.Getenv("APP_PORT")
	Env.MongoURI = os.Getenv("MONGO_URI")
	Env.MongoDB = os.Getenv("MONGO_DB_NAME")
	Env.LogLevel = os.Getenv("LOG_LEVEL")

	if Env.AppPort == "" {
		Env.AppPort = "3000"
	}
	if Env.LogLevel == "" {
		Env.LogLevel = "info"
	}
}
