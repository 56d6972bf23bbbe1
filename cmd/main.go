package main

import (
	"os"

	"fitbrand-backend/config"
	"fitbrand-backend/routes"
	"fitbrand-backend/utils"
)

func main() {
	config.InitLogger()
	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter(config.DB, config.Logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("server stopped: " + err.Error())
	}
}
