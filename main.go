package main

import (
	"log"

	"github.com/it22188236/Expense-Tracker-App/config"
	"github.com/it22188236/Expense-Tracker-App/internal/api"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	api.StartServer(cfg)
}
