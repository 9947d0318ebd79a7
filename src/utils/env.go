package utils

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const envFilename = ".env"

// InitEnvironmentVariables loads the local .env file unless running in
// production, where variables come from the environment directly. A missing
// file is not fatal: optional collaborators (telegram, tradier) simply stay
// disabled.
func InitEnvironmentVariables() {
	if os.Getenv("ENV") == "production" {
		log.Info("Running in production environment")
		return
	}

	if err := godotenv.Load(envFilename); err != nil {
		log.Warnf("InitEnvironmentVariables: no %s file loaded: %v", envFilename, err)
	}
}
