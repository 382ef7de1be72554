package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/userseed/internal/buildinfo"
	"github.com/dmitrijs2005/userseed/internal/cli"
	"github.com/dmitrijs2005/userseed/internal/config"
	"github.com/dmitrijs2005/userseed/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	logger := logging.New(os.Stderr, cfg.LogLevel)
	app := cli.NewApp(cfg, logger)

	app.Run(ctx)

}
