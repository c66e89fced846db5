package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/bookbuddy/library-client/config"
	"github.com/bookbuddy/library-client/internal/stubapi/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, relying on environment")
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
