package main

import (
	"context"
	"log"

	"github.com/avelev/schoolguard/internal/client/cli"
	"github.com/avelev/schoolguard/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
