package main

import (
	"context"

	"garage/config"
	"garage/di"
	"garage/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.Worker.Reminder.Enable {
		reminder := di.InitializeReminderWorker()
		go reminder.Run(context.Background())
	}

	http := di.InitializeService()
	http.Serve()
}
