package handler

import (
	"net/http"

	"chrono/config"
	"chrono/di"
	"chrono/shared/logger"
)

// Handler is the serverless entry point. It boots the service per invocation
// and delegates to the regular router.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Handler().ServeHTTP(w, r)
}
