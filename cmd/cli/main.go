package main

import (
	"context"
	"log"
	"os"

	"github.com/ecommerce/auth-service/internal/app"
	"github.com/ecommerce/auth-service/internal/cli"
	"github.com/ecommerce/auth-service/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer a.Close()

	console := cli.New(a.Service(), os.Stdin, os.Stdout)
	if err := console.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
