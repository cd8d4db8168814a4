package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/neuralcash/backend/internal/auth"
	"github.com/neuralcash/backend/internal/categorizer"
	"github.com/neuralcash/backend/internal/config"
	v1 "github.com/neuralcash/backend/internal/controllers/v1"
	"github.com/neuralcash/backend/internal/models"
	"github.com/neuralcash/backend/internal/ocr"
	"github.com/neuralcash/backend/internal/router"
	"github.com/neuralcash/backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title			NeuralCash API
// @description	The backend for the NeuralCash personal finance tracker.
// @contact.name	NeuralCash
//
// @license.name	MIT
//
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
func main() {
	// A .env file is optional, variables from the environment take
	// precedence
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()

	// Create the directory the database lives in
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := models.Connect(cfg.DBPath); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// With a local JWT secret, tokens are verified in process. Otherwise
	// every request asks the auth API.
	var verifier auth.Verifier
	if cfg.AuthJWTSecret != "" {
		verifier = auth.NewLocalVerifier(cfg.AuthJWTSecret)
	} else {
		verifier = auth.NewRemoteVerifier(cfg.BackendURL, cfg.ServiceKey)
	}

	co := v1.Controller{
		OCR:      ocr.New(cfg.OCRURL),
		Storage:  storage.New(cfg.BackendURL, cfg.ServiceKey, cfg.ReceiptsBucket),
		Feedback: categorizer.LogRecorder{},
	}

	r, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(co, verifier, r.Group("/"))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
