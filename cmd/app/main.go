package main

import (
	"siesta/config"
	"siesta/di"
	"siesta/shared/logger"
)

// @title Siesta Terminal API
// @version 1.0
// @description Offline-first booking terminal: local durable store with background synchronization to the remote booking service.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
