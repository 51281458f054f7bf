package main

import (
	"context"
	"log"
	"os"

	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/buildinfo"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/cli"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/client/config"
	"github.com/HuseinAbdullozoda/Hospital-management-system-sub001/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logger.Sync()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
