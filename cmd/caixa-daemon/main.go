package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/workers/daemons"
)

func CreateWorker(id string) daemons.Worker {
	switch id {
	case "cron_job":
		return daemons.NewCronJob()
	default:
		return nil
	}
}

func main() {
	godotenv.Load()

	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	ARVG := os.Args[1:]

	for _, id := range ARVG {
		fmt.Println("Start caixa-daemon: " + id)
		worker := CreateWorker(id)

		worker.Start()
	}
}
