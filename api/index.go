package handler

import (
	"net/http"
	"os"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"

	_ "frontdesk/docs"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.UseOutput(cfg, os.Stdout)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
