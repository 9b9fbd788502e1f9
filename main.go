package main

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/nordlead/refunds.api.nordlead.dk/config"
	"github.com/nordlead/refunds.api.nordlead.dk/handlers"
)

func main() {
	log.Namespace = "refunds.api.nordlead.dk"

	// A missing .env file is fine, config falls back to the environment
	_ = godotenv.Load()

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return
	}

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg)

	log.Info("Starting refunds.api.nordlead.dk service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting refunds.api.nordlead.dk service")
}
