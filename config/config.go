package config

import (
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"welcome-power/model"
)

// Load reads the process configuration from the environment. Missing
// credentials are fatal; everything else falls back to a default.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	appID := os.Getenv("APP_ID")
	if appID == "" {
		log.Fatal("Error: APP_ID environment variable not set")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	logChannelID := os.Getenv("LOG_CHANNEL_ID")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, channel logging will be disabled")
	}

	cfg := &model.Config{
		BotToken:     token,
		AppID:        appID,
		DataDir:      dataDir,
		LogChannelID: logChannelID,
		LogFile:      os.Getenv("LOG_FILE"),
		AutoRoles:    make(map[string]model.AutoRoleConfig),
	}

	setupLogOutput(cfg.LogFile)
	return cfg, nil
}

// setupLogOutput tees the standard logger into a size-rotated file when
// LOG_FILE is configured.
func setupLogOutput(logFile string) {
	if logFile == "" {
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}))
}
