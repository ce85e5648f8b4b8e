package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/varejotech/caixa/config"
	"github.com/varejotech/caixa/models"
	"github.com/varejotech/caixa/routes"
)

func main() {
	godotenv.Load()

	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := models.Migrate(); err != nil {
		fmt.Println(err.Error())
		return
	}

	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "3000"
	}

	r := routes.SetupRouter()
	// running
	r.Listen(":" + port)
}
